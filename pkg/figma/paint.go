package figma

// BlendMode describes how a layer blends with the layers below it.
type BlendMode string

const (
	// Normal blends.
	BlendPassThrough BlendMode = "PASS_THROUGH" // only applicable to nodes with children
	BlendNormal      BlendMode = "NORMAL"

	// Darken.
	BlendDarken     BlendMode = "DARKEN"
	BlendMultiply   BlendMode = "MULTIPLY"
	BlendLinearBurn BlendMode = "LINEAR_BURN" // "Plus darker"
	BlendColorBurn  BlendMode = "COLOR_BURN"

	// Lighten.
	BlendLighten     BlendMode = "LIGHTEN"
	BlendScreen      BlendMode = "SCREEN"
	BlendLinearDodge BlendMode = "LINEAR_DODGE" // "Plus lighter"
	BlendColorDodge  BlendMode = "COLOR_DODGE"

	// Contrast.
	BlendOverlay   BlendMode = "OVERLAY"
	BlendSoftLight BlendMode = "SOFT_LIGHT"
	BlendHardLight BlendMode = "HARD_LIGHT"

	// Inversion.
	BlendDifference BlendMode = "DIFFERENCE"
	BlendExclusion  BlendMode = "EXCLUSION"

	// Component.
	BlendHue        BlendMode = "HUE"
	BlendSaturation BlendMode = "SATURATION"
	BlendColor      BlendMode = "COLOR"
	BlendLuminosity BlendMode = "LUMINOSITY"
)

// PaintType is the wire discriminant of a Paint.
type PaintType string

const (
	PaintSolid           PaintType = "SOLID"
	PaintGradientLinear  PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintType = "GRADIENT_RADIAL"
	PaintGradientAngular PaintType = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintType = "GRADIENT_DIAMOND"
	PaintImage           PaintType = "IMAGE"
	PaintEmoji           PaintType = "EMOJI"
	PaintVideo           PaintType = "VIDEO"
)

// Paint is a fill or stroke applied to a node. It is one of SolidPaint,
// GradientPaint, ImagePaint, EmojiPaint or VideoPaint, discriminated on the
// wire by an inline "type" key.
type Paint interface {
	isPaint()
}

// PaintCommon holds the properties shared by every paint kind.
type PaintCommon struct {
	Visible   bool      `json:"visible" default:"true"`
	Opacity   float64   `json:"opacity" default:"1"`
	BlendMode BlendMode `json:"blendMode,omitempty"`
}

// SolidPaint is a single solid color.
type SolidPaint struct {
	PaintCommon
	Color Color `json:"color"`
}

// GradientPaint is a linear, radial, angular or diamond gradient.
type GradientPaint struct {
	Type PaintType `json:"-" figma:"tag"`
	PaintCommon
	// GradientHandlePositions holds three points in normalized object
	// space: the start, the end and the width handle.
	GradientHandlePositions []Vector    `json:"gradientHandlePositions"`
	GradientStops           []ColorStop `json:"gradientStops"`
}

// ImagePaint fills a node with an uploaded image.
type ImagePaint struct {
	PaintCommon
	ScaleMode      ScaleMode     `json:"scaleMode"`
	ImageRef       string        `json:"imageRef"`
	ImageTransform *Transform    `json:"imageTransform,omitempty"`
	ScalingFactor  *float64      `json:"scalingFactor,omitempty"`
	Rotation       float64       `json:"rotation,omitempty" default:"0"`
	Filters        *ImageFilters `json:"filters,omitempty"`
	GifRef         string        `json:"gifRef,omitempty"`
}

// EmojiPaint renders an emoji glyph as the paint.
type EmojiPaint struct {
	PaintCommon
	Emoji string `json:"emoji"`
}

// VideoPaint fills a node with a video.
type VideoPaint struct {
	PaintCommon
	VideoRef       string     `json:"videoRef"`
	ScaleMode      ScaleMode  `json:"scaleMode"`
	VideoTransform *Transform `json:"videoTransform,omitempty"`
}

func (SolidPaint) isPaint()    {}
func (GradientPaint) isPaint() {}
func (ImagePaint) isPaint()    {}
func (EmojiPaint) isPaint()    {}
func (VideoPaint) isPaint()    {}

func (p SolidPaint) MarshalJSON() ([]byte, error) {
	type plain SolidPaint
	return marshalVariant(p, plain(p))
}

func (p GradientPaint) MarshalJSON() ([]byte, error) {
	type plain GradientPaint
	return marshalVariant(p, plain(p))
}

func (p ImagePaint) MarshalJSON() ([]byte, error) {
	type plain ImagePaint
	return marshalVariant(p, plain(p))
}

func (p EmojiPaint) MarshalJSON() ([]byte, error) {
	type plain EmojiPaint
	return marshalVariant(p, plain(p))
}

func (p VideoPaint) MarshalJSON() ([]byte, error) {
	type plain VideoPaint
	return marshalVariant(p, plain(p))
}

// ColorStop is a position along a gradient with the color at that position.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// ScaleMode describes how an image or video is fitted into its node.
type ScaleMode string

const (
	ScaleFill    ScaleMode = "FILL"
	ScaleFit     ScaleMode = "FIT"
	ScaleTile    ScaleMode = "TILE"
	ScaleStretch ScaleMode = "STRETCH"
)

// ImageFilters are adjustments applied to an image paint. All values are
// from -1 to 1 and default to 0.
type ImageFilters struct {
	Exposure    float64 `json:"exposure,omitempty" default:"0"`
	Contrast    float64 `json:"contrast,omitempty" default:"0"`
	Saturation  float64 `json:"saturation,omitempty" default:"0"`
	Temperature float64 `json:"temperature,omitempty" default:"0"`
	Tint        float64 `json:"tint,omitempty" default:"0"`
	Highlights  float64 `json:"highlights,omitempty" default:"0"`
	Shadows     float64 `json:"shadows,omitempty" default:"0"`
}

// PaintOverride replaces the fills of the geometry paths pointing at it.
type PaintOverride struct {
	Fills              []Paint `json:"fills,omitzero"`
	InheritFillStyleID string  `json:"inheritFillStyleId,omitempty"`
}

func init() {
	registerEnum(
		BlendPassThrough, BlendNormal,
		BlendDarken, BlendMultiply, BlendLinearBurn, BlendColorBurn,
		BlendLighten, BlendScreen, BlendLinearDodge, BlendColorDodge,
		BlendOverlay, BlendSoftLight, BlendHardLight,
		BlendDifference, BlendExclusion,
		BlendHue, BlendSaturation, BlendColor, BlendLuminosity,
	)
	registerEnum(ScaleFill, ScaleFit, ScaleTile, ScaleStretch)
	registerEnum(
		PaintSolid,
		PaintGradientLinear, PaintGradientRadial, PaintGradientAngular, PaintGradientDiamond,
		PaintImage, PaintEmoji, PaintVideo,
	)

	registerUnion[Paint](Inline, "type", "",
		variant[SolidPaint](string(PaintSolid)),
		variant[GradientPaint](
			string(PaintGradientLinear), string(PaintGradientRadial),
			string(PaintGradientAngular), string(PaintGradientDiamond),
		),
		variant[ImagePaint](string(PaintImage)),
		variant[EmojiPaint](string(PaintEmoji)),
		variant[VideoPaint](string(PaintVideo)),
	)
}
