package figma

func solid(r, g, b float64) SolidPaint {
	return SolidPaint{
		PaintCommon: PaintCommon{Visible: true, Opacity: 1},
		Color:       Color{R: r, G: g, B: b, A: 1},
	}
}

func sampleAttributes(x, y, w, h float64) ShapeAttributes {
	a := Defaults[ShapeAttributes]()
	a.BlendMode = BlendPassThrough
	a.AbsoluteBoundingBox = Rectangle{X: x, Y: y, Width: w, Height: h}
	a.Fills = []Paint{solid(0.2, 0.4, 0.8)}
	return a
}

func sampleTypeStyle() TypeStyle {
	s := Defaults[TypeStyle]()
	s.FontFamily = "Inter"
	s.FontPostScriptName = "Inter-Bold"
	s.FontWeight = 700
	s.FontSize = 24
	s.TextAlignHorizontal = TextAlignLeft
	s.TextAlignVertical = TextAlignTop
	s.LetterSpacing = -0.5
	s.LineHeightPx = 32
	s.LineHeightUnit = LineHeightPixels
	s.OpentypeFlags = map[string]int{"LIGA": 0}
	return s
}

func sampleInteractions() []Interaction {
	easing := Easing{Type: EaseCustomCubicBezier, EasingFunctionCubicBezier: &CubicBezier{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}}
	return []Interaction{
		{
			Trigger: SimpleTrigger{Type: TriggerOnClick},
			Actions: []Action{
				NodeAction{
					DestinationID: "2:9",
					Navigation:    NavigateTo,
					Transition:    DirectionalTransition{Type: TransitionSlideIn, Easing: easing, Duration: 0.3, Direction: DirectionLeft, MatchLayers: true},
				},
			},
		},
		{
			Trigger: MouseTrigger{Type: TriggerMouseEnter, Delay: 0.1},
			Actions: []Action{
				NodeAction{
					DestinationID:           "2:10",
					Navigation:              OverlayOn,
					Transition:              SimpleTransition{Type: TransitionDissolve, Easing: Easing{Type: EaseGentleSpring}, Duration: 0.2},
					OverlayRelativePosition: &Vector{X: 12, Y: 8},
				},
			},
		},
		{Trigger: AfterTimeoutTrigger{Timeout: 2}, Actions: []Action{SimpleAction{Type: ActionBack}}},
		{Trigger: KeyDownTrigger{Device: DeviceKeyboard, KeyCodes: []int{16, 65}}, Actions: []Action{SimpleAction{Type: ActionClose}}},
		{Trigger: MediaHitTrigger{MediaHitTime: 3.5}, Actions: []Action{OpenURLAction{URL: "https://example.com", OpenInNewTab: true}}},
		{
			Trigger: SimpleTrigger{Type: TriggerOnMediaEnd},
			Actions: []Action{
				SetVariableModeAction{VariableCollectionID: "VariableCollectionId:1", VariableModeID: "1:0"},
				SetVariableAction{
					VariableID: "VariableID:1",
					VariableValue: &VariableData{
						ResolvedType: ResolvedFloat,
						Value: Expression{
							ExpressionFunction: FuncAddition,
							ExpressionArguments: []VariableData{
								{ResolvedType: ResolvedFloat, Value: VariableAlias{ID: "VariableID:1"}},
								{ResolvedType: ResolvedFloat, Value: FloatValue(1)},
							},
						},
					},
				},
				ConditionalAction{ConditionalBlocks: []ConditionalBlock{
					{
						Condition: &VariableData{ResolvedType: ResolvedBoolean, Value: BoolValue(true)},
						Actions:   []Action{OpenURLAction{URL: "https://example.com/a"}},
					},
					{Actions: []Action{SimpleAction{Type: ActionBack}}},
				}},
			},
		},
		{Actions: []Action{SetVariableAction{VariableID: "VariableID:2", VariableValue: &VariableData{ResolvedType: ResolvedString, Value: StringValue("hi")}}}},
		{Actions: []Action{SetVariableAction{VariableID: "VariableID:3", VariableValue: &VariableData{ResolvedType: ResolvedColor, Value: ColorValue{R: 1, A: 1}}}}},
	}
}

func sampleShapes() []Node {
	rect := RectangleNode{
		ShapeAttributes: sampleAttributes(0, 0, 320, 64),
		Data:            RectangleData{CornerRadius: 8, RectangleCornerRadii: &[4]float64{8, 8, 0, 0}, CornerSmoothing: 0.6},
	}
	rect.Locked = true
	rect.ExportSettings = []ExportSetting{
		{Format: FormatPNG, Constraint: Constraint{Type: ConstraintScale, Value: 2}},
		{Suffix: "-icon", Format: FormatSVG, Constraint: Constraint{Type: ConstraintScale, Value: 1}},
	}
	rect.Constraints = &LayoutConstraint{Vertical: VerticalTop, Horizontal: HorizontalLeftRight}
	rect.LayoutAlign = LayoutStretch
	rect.LayoutGrow = 1
	rect.AbsoluteRenderBounds = &Rectangle{X: -4, Y: -2, Width: 328, Height: 72}
	rect.Size = &Size{Width: 320, Height: 64}
	rect.RelativeTransform = &Transform{{1, 0, 16}, {0, 1, 24}}
	rect.Effects = []Effect{
		ShadowEffect{Type: EffectDropShadow, Visible: true, Radius: 4, Color: Color{A: 0.25}, BlendMode: BlendNormal, Offset: Vector{Y: 2}, Spread: 1, ShowShadowBehindNode: true},
		ShadowEffect{Type: EffectInnerShadow, Visible: true, Radius: 2, Color: Color{A: 0.1}, BlendMode: BlendMultiply, Offset: Vector{X: 1}},
		BlurEffect{Type: EffectBackgroundBlur, Visible: true, Radius: 12},
	}
	rect.Fills = []Paint{
		GradientPaint{
			Type:                    PaintGradientLinear,
			PaintCommon:             PaintCommon{Visible: true, Opacity: 0.8, BlendMode: BlendScreen},
			GradientHandlePositions: []Vector{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}, {X: 0, Y: 1}},
			GradientStops:           []ColorStop{{Position: 0, Color: Color{R: 1, A: 1}}, {Position: 1, Color: Color{B: 1, A: 1}}},
		},
		ImagePaint{
			PaintCommon:    PaintCommon{Visible: false, Opacity: 1},
			ScaleMode:      ScaleFill,
			ImageRef:       "img-hero",
			ImageTransform: &Transform{{0.5, 0, 0}, {0, 0.5, 0}},
			Rotation:       90,
			Filters:        &ImageFilters{Exposure: 0.2, Contrast: -0.1},
		},
	}
	rect.Strokes = []Paint{solid(0, 0, 0)}
	rect.StrokeWeight = 1
	rect.IndividualStrokeWeights = &StrokeWeights{Top: 1, Bottom: 2}
	rect.StrokeCap = CapRound
	rect.StrokeJoin = JoinBevel
	rect.StrokeDashes = []float64{4, 2}
	rect.StrokeAlign = AlignInside
	rect.Styles = map[StyleType]string{StyleFill: "S:fill", StyleEffect: "S:shadow"}
	rect.LayoutGrids = []LayoutGrid{{Pattern: GridColumns, SectionSize: 64, Visible: true, Color: Color{R: 1, A: 0.1}, Alignment: GridStretch, GutterSize: 16, Count: 12}}
	rect.Interactions = sampleInteractions()
	rect.Annotations = []Annotation{{Label: "Primary button", Properties: []AnnotationProperty{{Type: AnnotationFills}}}}

	vector := VectorNode{ShapeAttributes: sampleAttributes(0, 80, 24, 24)}
	vector.Fills = []Paint{
		EmojiPaint{PaintCommon: PaintCommon{Visible: true, Opacity: 1}, Emoji: "🎨"},
		VideoPaint{PaintCommon: PaintCommon{Visible: true, Opacity: 1}, VideoRef: "vid-1", ScaleMode: ScaleFit},
	}
	overrideID := 1
	vector.FillGeometry = []Path{{Path: "M0 0L24 0L24 24Z", WindingRule: WindingNonZero, OverrideID: &overrideID}}
	vector.FillOverrideTable = map[int]PaintOverride{1: {Fills: []Paint{solid(1, 0, 0)}, InheritFillStyleID: "S:fill"}}
	vector.StrokeGeometry = []Path{{Path: "M0 0L24 24", WindingRule: WindingEvenOdd}}
	vector.IsMask = true
	vector.MaskType = MaskLuminance

	text := TextNode{
		ShapeAttributes: sampleAttributes(0, 120, 200, 32),
		Data: TextData{
			Characters:              "Hello",
			Style:                   sampleTypeStyle(),
			CharacterStyleOverrides: []int{0, 0, 1, 1, 1},
			StyleOverrideTable:      map[int]TypeStyle{1: sampleTypeStyle()},
			LineTypes:               []LineType{LineNone},
			LineIndentations:        []int{0},
		},
	}
	text.Data.Style.Hyperlink = URLHyperlink{URL: "https://example.com"}
	text.Data.Style.TextDecoration = DecorationUnderline
	text.Data.Style.TextCase = CaseTitle
	text.Data.StyleOverrideTable[1] = func() TypeStyle {
		s := sampleTypeStyle()
		s.Italic = true
		s.Hyperlink = NodeHyperlink{NodeID: "2:9"}
		return s
	}()
	text.Styles = map[StyleType]string{StyleText: "S:heading"}

	return []Node{
		{ID: "3:1", Name: "Button", Visible: true, Variant: rect},
		{ID: "3:2", Name: "Icon", Visible: true, Rotation: 45, Variant: vector},
		{ID: "3:3", Name: "Title", Visible: true, Variant: text},
		{ID: "3:4", Name: "Avatar", Visible: true, Variant: EllipseNode{
			ShapeAttributes: sampleAttributes(40, 0, 32, 32),
			Data:            EllipseData{ArcData: ArcData{StartingAngle: 0, EndingAngle: 6.28, InnerRadius: 0.5}},
		}},
		{ID: "3:5", Name: "Badge", Visible: false, Variant: StarNode{
			ShapeAttributes: sampleAttributes(80, 0, 16, 16),
			Data:            StarData{PointCount: 5, InnerRadius: 0.38},
		}},
		{ID: "3:6", Name: "Hexagon", Visible: true, Variant: PolygonNode{
			ShapeAttributes: sampleAttributes(100, 0, 16, 16),
			Data:            PolygonData{PointCount: 6},
		}},
	}
}

func sampleDocument() Node {
	return Node{
		ID:      "0:0",
		Name:    "Document",
		Visible: true,
		Variant: DocumentNode{Children: []Node{
			{
				ID:      "0:1",
				Name:    "Page 1",
				Visible: true,
				Variant: CanvasNode{
					Children:             sampleShapes(),
					BackgroundColor:      Color{R: 0.96, G: 0.96, B: 0.96, A: 1},
					PrototypeStartNodeID: "3:1",
					FlowStartingPoints:   []FlowStartingPoint{{NodeID: "3:1", Name: "Flow 1"}},
					ExportSettings:       []ExportSetting{{Format: FormatPDF, Constraint: Constraint{Type: ConstraintWidth, Value: 1024}}},
				},
			},
			{
				ID:      "0:2",
				Name:    "Empty page",
				Visible: true,
				Variant: CanvasNode{Children: []Node{}, BackgroundColor: Color{A: 1}},
			},
		}},
	}
}

func sampleFile() File {
	return File{
		Name:          "Design System",
		LastModified:  "2024-05-01T12:00:00Z",
		ThumbnailURL:  "https://example.com/thumb.png",
		Version:       "42",
		Document:      sampleDocument(),
		SchemaVersion: 14,
		Styles: map[string]Style{
			"S:fill":    {Key: "k1", Name: "Brand/Blue", StyleType: StyleFill},
			"S:shadow":  {Key: "k2", Name: "Elevation/1", StyleType: StyleEffect, Description: "Cards"},
			"S:heading": {Key: "k3", Name: "Heading/H1", StyleType: StyleText, Remote: true},
		},
		Components: map[string]Component{
			"3:1": {Key: "c1", Name: "Button", Description: "Primary action", ComponentSetID: "3:0"},
		},
	}
}
