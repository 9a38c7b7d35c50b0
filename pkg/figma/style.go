package figma

// StrokeWeights overrides the uniform stroke weight per side.
type StrokeWeights struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// StrokeCap is the decoration at the open ends of a stroke.
type StrokeCap string

const (
	CapNone           StrokeCap = "NONE"
	CapRound          StrokeCap = "ROUND"
	CapSquare         StrokeCap = "SQUARE"
	CapLineArrow      StrokeCap = "LINE_ARROW"
	CapTriangleArrow  StrokeCap = "TRIANGLE_ARROW"
	CapDiamondFilled  StrokeCap = "DIAMOND_FILLED"
	CapCircleFilled   StrokeCap = "CIRCLE_FILLED"
	CapTriangleFilled StrokeCap = "TRIANGLE_FILLED"
)

// StrokeJoin is how two stroke segments meet.
type StrokeJoin string

const (
	JoinMiter StrokeJoin = "MITER"
	JoinBevel StrokeJoin = "BEVEL"
	JoinRound StrokeJoin = "ROUND"
)

// StrokeAlign is where the stroke sits relative to the node boundary.
type StrokeAlign string

const (
	AlignInside  StrokeAlign = "INSIDE"
	AlignOutside StrokeAlign = "OUTSIDE"
	AlignCenter  StrokeAlign = "CENTER"
)

// ConstraintVertical is how a node is laid out vertically when its parent resizes.
type ConstraintVertical string

const (
	VerticalTop       ConstraintVertical = "TOP"
	VerticalBottom    ConstraintVertical = "BOTTOM"
	VerticalCenter    ConstraintVertical = "CENTER"
	VerticalTopBottom ConstraintVertical = "TOP_BOTTOM"
	VerticalScale     ConstraintVertical = "SCALE"
)

// ConstraintHorizontal is how a node is laid out horizontally when its parent resizes.
type ConstraintHorizontal string

const (
	HorizontalLeft      ConstraintHorizontal = "LEFT"
	HorizontalRight     ConstraintHorizontal = "RIGHT"
	HorizontalCenter    ConstraintHorizontal = "CENTER"
	HorizontalLeftRight ConstraintHorizontal = "LEFT_RIGHT"
	HorizontalScale     ConstraintHorizontal = "SCALE"
)

// LayoutConstraint defines how a node's position and size behave when its parent is resized.
type LayoutConstraint struct {
	Vertical   ConstraintVertical   `json:"vertical"`
	Horizontal ConstraintHorizontal `json:"horizontal"`
}

// LayoutAlign is how a child of an auto-layout frame aligns in the counter axis.
type LayoutAlign string

const (
	LayoutInherit LayoutAlign = "INHERIT"
	LayoutStretch LayoutAlign = "STRETCH"
	LayoutMin     LayoutAlign = "MIN"
	LayoutCenter  LayoutAlign = "CENTER"
	LayoutMax     LayoutAlign = "MAX"
)

// GridPattern selects the orientation of a layout grid.
type GridPattern string

const (
	GridColumns GridPattern = "COLUMNS"
	GridRows    GridPattern = "ROWS"
	GridSquare  GridPattern = "GRID"
)

// GridAlignment positions column or row grids inside their container.
type GridAlignment string

const (
	GridMin     GridAlignment = "MIN"
	GridStretch GridAlignment = "STRETCH"
	GridCenter  GridAlignment = "CENTER"
)

// LayoutGrid is a guide grid drawn over a node.
type LayoutGrid struct {
	Pattern     GridPattern   `json:"pattern"`
	SectionSize float64       `json:"sectionSize"`
	Visible     bool          `json:"visible" default:"true"`
	Color       Color         `json:"color"`
	Alignment   GridAlignment `json:"alignment,omitempty"`
	GutterSize  float64       `json:"gutterSize,omitempty" default:"0"`
	Offset      float64       `json:"offset,omitempty" default:"0"`
	Count       int           `json:"count,omitempty" default:"0"`
}

// StyleType is the kind of property a shared style provides.
type StyleType string

const (
	StyleFill   StyleType = "FILL"
	StyleText   StyleType = "TEXT"
	StyleEffect StyleType = "EFFECT"
	StyleGrid   StyleType = "GRID"
)

// ImageFormat is the file type of an export.
type ImageFormat string

const (
	FormatJPG ImageFormat = "JPG"
	FormatPNG ImageFormat = "PNG"
	FormatSVG ImageFormat = "SVG"
	FormatPDF ImageFormat = "PDF"
)

// ConstraintType selects how an export constraint's value sizes the asset.
type ConstraintType string

const (
	ConstraintScale  ConstraintType = "SCALE"  // scale by value
	ConstraintWidth  ConstraintType = "WIDTH"  // scale proportionally and set width to value
	ConstraintHeight ConstraintType = "HEIGHT" // scale proportionally and set height to value
)

// Constraint is the sizing constraint of an export.
type Constraint struct {
	Type  ConstraintType `json:"type"`
	Value float64        `json:"value"`
}

// ExportSetting is a format and size to export an asset at.
type ExportSetting struct {
	Suffix     string      `json:"suffix,omitempty" default:""`
	Format     ImageFormat `json:"format"`
	Constraint Constraint  `json:"constraint"`
}

// AnnotationPropertyType names a property surfaced by a Dev Mode annotation.
type AnnotationPropertyType string

const (
	AnnotationWidth        AnnotationPropertyType = "width"
	AnnotationHeight       AnnotationPropertyType = "height"
	AnnotationFills        AnnotationPropertyType = "fills"
	AnnotationStrokes      AnnotationPropertyType = "strokes"
	AnnotationEffects      AnnotationPropertyType = "effects"
	AnnotationCornerRadius AnnotationPropertyType = "cornerRadius"
	AnnotationOpacity      AnnotationPropertyType = "opacity"
	AnnotationFontFamily   AnnotationPropertyType = "fontFamily"
	AnnotationFontSize     AnnotationPropertyType = "fontSize"
	AnnotationLineHeight   AnnotationPropertyType = "lineHeight"
)

// AnnotationProperty is one pinned property of an annotation.
type AnnotationProperty struct {
	Type AnnotationPropertyType `json:"type"`
}

// Annotation is a Dev Mode note attached to a node.
type Annotation struct {
	Label      string               `json:"label,omitempty"`
	Properties []AnnotationProperty `json:"properties,omitzero"`
}

func init() {
	registerEnum(CapNone, CapRound, CapSquare, CapLineArrow, CapTriangleArrow, CapDiamondFilled, CapCircleFilled, CapTriangleFilled)
	registerEnum(JoinMiter, JoinBevel, JoinRound)
	registerEnum(AlignInside, AlignOutside, AlignCenter)
	registerEnum(VerticalTop, VerticalBottom, VerticalCenter, VerticalTopBottom, VerticalScale)
	registerEnum(HorizontalLeft, HorizontalRight, HorizontalCenter, HorizontalLeftRight, HorizontalScale)
	registerEnum(LayoutInherit, LayoutStretch, LayoutMin, LayoutCenter, LayoutMax)
	registerEnum(GridColumns, GridRows, GridSquare)
	registerEnum(GridMin, GridStretch, GridCenter)
	registerEnum(StyleFill, StyleText, StyleEffect, StyleGrid)
	registerEnum(FormatJPG, FormatPNG, FormatSVG, FormatPDF)
	registerEnum(ConstraintScale, ConstraintWidth, ConstraintHeight)
	registerEnum(
		AnnotationWidth, AnnotationHeight, AnnotationFills, AnnotationStrokes, AnnotationEffects,
		AnnotationCornerRadius, AnnotationOpacity, AnnotationFontFamily, AnnotationFontSize, AnnotationLineHeight,
	)
}
