package figma

// TextCase is the letter casing applied to a text run.
type TextCase string

const (
	CaseUpper           TextCase = "UPPER"
	CaseLower           TextCase = "LOWER"
	CaseTitle           TextCase = "TITLE"
	CaseSmallCaps       TextCase = "SMALL_CAPS"
	CaseSmallCapsForced TextCase = "SMALL_CAPS_FORCED"
)

// TextDecoration is the line drawn over, under or through a text run.
type TextDecoration string

const (
	DecorationNone          TextDecoration = "NONE"
	DecorationStrikethrough TextDecoration = "STRIKETHROUGH"
	DecorationUnderline     TextDecoration = "UNDERLINE"
)

// TextAutoResize is how the text box adjusts to fit its characters.
type TextAutoResize string

const (
	AutoResizeNone           TextAutoResize = "NONE"
	AutoResizeHeight         TextAutoResize = "HEIGHT"
	AutoResizeWidthAndHeight TextAutoResize = "WIDTH_AND_HEIGHT"
	AutoResizeTruncate       TextAutoResize = "TRUNCATE"
)

// TextTruncation controls whether overflowing text ends in an ellipsis.
type TextTruncation string

const (
	TruncationDisabled TextTruncation = "DISABLED"
	TruncationEnding   TextTruncation = "ENDING"
)

// TextAlignHorizontal is the horizontal alignment of text within its box.
type TextAlignHorizontal string

const (
	TextAlignLeft      TextAlignHorizontal = "LEFT"
	TextAlignRight     TextAlignHorizontal = "RIGHT"
	TextAlignCenter    TextAlignHorizontal = "CENTER"
	TextAlignJustified TextAlignHorizontal = "JUSTIFIED"
)

// TextAlignVertical is the vertical alignment of text within its box.
type TextAlignVertical string

const (
	TextAlignTop    TextAlignVertical = "TOP"
	TextAlignMiddle TextAlignVertical = "CENTER"
	TextAlignBottom TextAlignVertical = "BOTTOM"
)

// LineHeightUnit is the unit the line height was specified in by the user.
type LineHeightUnit string

const (
	LineHeightPixels          LineHeightUnit = "PIXELS"
	LineHeightFontSizePercent LineHeightUnit = "FONT_SIZE_%"
	LineHeightIntrinsic       LineHeightUnit = "INTRINSIC_%"
)

// LineType is the list style of a line of text.
type LineType string

const (
	LineNone      LineType = "NONE"
	LineOrdered   LineType = "ORDERED"
	LineUnordered LineType = "UNORDERED"
)

// TypeStyle holds the typography of a text node or of a styled run inside it.
type TypeStyle struct {
	FontFamily          string              `json:"fontFamily"`
	FontPostScriptName  string              `json:"fontPostScriptName,omitempty"`
	FontWeight          float64             `json:"fontWeight"`
	FontSize            float64             `json:"fontSize"`
	Italic              bool                `json:"italic,omitempty" default:"false"`
	ParagraphSpacing    float64             `json:"paragraphSpacing,omitempty" default:"0"`
	ParagraphIndent     float64             `json:"paragraphIndent,omitempty" default:"0"`
	ListSpacing         float64             `json:"listSpacing,omitempty" default:"0"`
	TextCase            TextCase            `json:"textCase,omitempty"`
	TextDecoration      TextDecoration      `json:"textDecoration" default:"NONE"`
	TextAutoResize      TextAutoResize      `json:"textAutoResize" default:"NONE"`
	TextTruncation      TextTruncation      `json:"textTruncation" default:"DISABLED"`
	MaxLines            *int                `json:"maxLines,omitempty"`
	TextAlignHorizontal TextAlignHorizontal `json:"textAlignHorizontal"`
	TextAlignVertical   TextAlignVertical   `json:"textAlignVertical"`
	LetterSpacing       float64             `json:"letterSpacing"`
	Fills               []Paint             `json:"fills,omitzero"`
	Hyperlink           Hyperlink           `json:"hyperlink,omitempty"`
	// OpentypeFlags maps OpenType feature tags to 1 (on) or 0 (off).
	OpentypeFlags             map[string]int `json:"opentypeFlags,omitzero" default:"{}"`
	LineHeightPx              float64        `json:"lineHeightPx"`
	LineHeightPercent         float64        `json:"lineHeightPercent" default:"100"`
	LineHeightPercentFontSize *float64       `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            LineHeightUnit `json:"lineHeightUnit"`
}

// Hyperlink is a link attached to text: a URLHyperlink or a NodeHyperlink.
type Hyperlink interface {
	isHyperlink()
}

// URLHyperlink points at an external page.
type URLHyperlink struct {
	URL string `json:"url"`
}

// NodeHyperlink points at another node in the same document.
type NodeHyperlink struct {
	NodeID string `json:"nodeID"`
}

func (URLHyperlink) isHyperlink()  {}
func (NodeHyperlink) isHyperlink() {}

func (h URLHyperlink) MarshalJSON() ([]byte, error) {
	type plain URLHyperlink
	return marshalVariant(h, plain(h))
}

func (h NodeHyperlink) MarshalJSON() ([]byte, error) {
	type plain NodeHyperlink
	return marshalVariant(h, plain(h))
}

func init() {
	registerEnum(CaseUpper, CaseLower, CaseTitle, CaseSmallCaps, CaseSmallCapsForced)
	registerEnum(DecorationNone, DecorationStrikethrough, DecorationUnderline)
	registerEnum(AutoResizeNone, AutoResizeHeight, AutoResizeWidthAndHeight, AutoResizeTruncate)
	registerEnum(TruncationDisabled, TruncationEnding)
	registerEnum(TextAlignLeft, TextAlignRight, TextAlignCenter, TextAlignJustified)
	registerEnum(TextAlignTop, TextAlignMiddle, TextAlignBottom)
	registerEnum(LineHeightPixels, LineHeightFontSizePercent, LineHeightIntrinsic)
	registerEnum(LineNone, LineOrdered, LineUnordered)

	registerUnion[Hyperlink](Inline, "type", "",
		variant[URLHyperlink]("URL"),
		variant[NodeHyperlink]("NODE"),
	)
}
