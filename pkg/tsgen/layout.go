package tsgen

// DefaultLayout returns the output directory of every schema type, relative
// to the generation root. Generic types are keyed by their base name.
func DefaultLayout() map[string]string {
	return map[string]string{
		// File envelope.
		"File":      "",
		"Style":     "",
		"Component": "",

		// Geometry & primitives.
		"Color":       "properties",
		"Vector":      "properties",
		"Size":        "properties",
		"Rectangle":   "properties",
		"Transform":   "properties",
		"Path":        "properties",
		"WindingRule": "properties",
		"ArcData":     "properties",
		"BlendMode":   "properties",

		"Paint":         "properties/paint",
		"PaintCommon":   "properties/paint",
		"SolidPaint":    "properties/paint",
		"GradientPaint": "properties/paint",
		"ImagePaint":    "properties/paint",
		"EmojiPaint":    "properties/paint",
		"VideoPaint":    "properties/paint",
		"ColorStop":     "properties/paint",
		"ScaleMode":     "properties/paint",
		"ImageFilters":  "properties/paint",
		"PaintOverride": "properties/paint",

		"Effect":       "properties/effect",
		"ShadowEffect": "properties/effect",
		"BlurEffect":   "properties/effect",

		"StrokeWeights": "properties/stroke",
		"StrokeCap":     "properties/stroke",
		"StrokeJoin":    "properties/stroke",
		"StrokeAlign":   "properties/stroke",

		"LayoutConstraint":     "properties/layout",
		"ConstraintVertical":   "properties/layout",
		"ConstraintHorizontal": "properties/layout",
		"LayoutAlign":          "properties/layout",
		"LayoutGrid":           "properties/layout",
		"GridPattern":          "properties/layout",
		"GridAlignment":        "properties/layout",

		"TypeStyle":           "properties/text",
		"TextCase":            "properties/text",
		"TextDecoration":      "properties/text",
		"TextAutoResize":      "properties/text",
		"TextTruncation":      "properties/text",
		"TextAlignHorizontal": "properties/text",
		"TextAlignVertical":   "properties/text",
		"LineHeightUnit":      "properties/text",
		"LineType":            "properties/text",
		"Hyperlink":           "properties/text",
		"URLHyperlink":        "properties/text",
		"NodeHyperlink":       "properties/text",

		"StyleType": "properties/style",

		"ExportSetting":  "properties/constraint",
		"Constraint":     "properties/constraint",
		"ConstraintType": "properties/constraint",
		"ImageFormat":    "properties/constraint",

		"Annotation":             "properties/annotation",
		"AnnotationProperty":     "properties/annotation",
		"AnnotationPropertyType": "properties/annotation",

		// Prototyping.
		"Interaction":           "interaction",
		"Trigger":               "interaction/trigger",
		"SimpleTrigger":         "interaction/trigger",
		"AfterTimeoutTrigger":   "interaction/trigger",
		"MouseTrigger":          "interaction/trigger",
		"KeyDownTrigger":        "interaction/trigger",
		"KeyDevice":             "interaction/trigger",
		"MediaHitTrigger":       "interaction/trigger",
		"Action":                "interaction/action",
		"SimpleAction":          "interaction/action",
		"OpenURLAction":         "interaction/action",
		"NodeAction":            "interaction/action",
		"Navigation":            "interaction/action",
		"SetVariableAction":     "interaction/action",
		"SetVariableModeAction": "interaction/action",
		"ConditionalAction":     "interaction/action",
		"ConditionalBlock":      "interaction/action",
		"Transition":            "interaction/transition",
		"SimpleTransition":      "interaction/transition",
		"DirectionalTransition": "interaction/transition",
		"TransitionDirection":   "interaction/transition",
		"Easing":                "interaction/transition",
		"EasingType":            "interaction/transition",
		"CubicBezier":           "interaction/transition",
		"Spring":                "interaction/transition",
		"FlowStartingPoint":     "interaction",

		// Variables.
		"VariableData":         "variable",
		"VariableValue":        "variable",
		"VariableResolvedType": "variable",
		"BoolValue":            "variable",
		"FloatValue":           "variable",
		"StringValue":          "variable",
		"ColorValue":           "variable",
		"VariableAlias":        "variable",
		"Expression":           "variable",
		"ExpressionFunction":   "variable",

		// Node tree.
		"Node":            "nodes",
		"NodeVariant":     "nodes",
		"DocumentNode":    "nodes",
		"CanvasNode":      "nodes",
		"Shape":           "nodes/vector",
		"ShapeAttributes": "nodes/vector",
		"MaskType":        "nodes/vector",
		"EmptyData":       "nodes/vector",
		"RectangleData":   "nodes/vector",
		"EllipseData":     "nodes/vector",
		"StarData":        "nodes/vector",
		"PolygonData":     "nodes/vector",
		"TextData":        "nodes/vector",
	}
}
