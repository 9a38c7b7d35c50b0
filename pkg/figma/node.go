package figma

import "encoding/json"

// Node is a single element of the document tree. Its ID is unique within
// the enclosing document only.
type Node struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible" default:"true"`
	// Rotation is in whole degrees.
	Rotation int         `json:"rotation,omitempty" default:"0"`
	Variant  NodeVariant `json:"variant"`
}

// UnmarshalJSON decodes strictly, see Unmarshal.
func (n *Node) UnmarshalJSON(data []byte) error {
	return Unmarshal(data, n)
}

// Children returns the child nodes of n, or nil when its variant has none.
func (n Node) Children() []Node {
	switch v := n.Variant.(type) {
	case DocumentNode:
		return v.Children
	case CanvasNode:
		return v.Children
	default:
		return nil
	}
}

// Type returns the discriminant of the node's variant, e.g. "canvas".
func (n Node) Type() string {
	if n.Variant == nil {
		return ""
	}
	return Tag(n.Variant)
}

// Walk calls fn for n and then for its descendants, depth-first in child
// order. When fn returns false the children of that node are skipped.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

// Find returns the first node under root, root included, whose id is id.
func Find(root Node, id string) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	Walk(root, func(n Node, _ int) bool {
		if ok {
			return false
		}
		if n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// NodeType is the "type" discriminant of a NodeVariant.
type NodeType string

const (
	TypeDocument  NodeType = "document"
	TypeCanvas    NodeType = "canvas"
	TypeVector    NodeType = "vector"
	TypeRectangle NodeType = "rectangle"
	TypeEllipse   NodeType = "ellipse"
	TypeStar      NodeType = "star"
	TypePolygon   NodeType = "polygon"
	TypeText      NodeType = "text"
)

// NodeVariant is what a node is. On the wire it is the envelope
// {"type": "<NodeType>", "data": <payload>}.
type NodeVariant interface {
	isNodeVariant()
}

// DocumentNode is the root of a file. Its children must be canvases.
type DocumentNode struct {
	Children []Node `json:"children"`
}

// CanvasNode is a page. Its children must be shapes.
type CanvasNode struct {
	Children        []Node `json:"children"`
	BackgroundColor Color  `json:"backgroundColor"`
	// PrototypeStartNodeID is deprecated in favor of FlowStartingPoints.
	PrototypeStartNodeID string              `json:"prototypeStartNodeID,omitempty"`
	FlowStartingPoints   []FlowStartingPoint `json:"flowStartingPoints,omitzero"`
	ExportSettings       []ExportSetting     `json:"exportSettings,omitzero"`
}

func (DocumentNode) isNodeVariant() {}
func (CanvasNode) isNodeVariant()   {}
func (Shape[D]) isNodeVariant()     {}

func (d DocumentNode) MarshalJSON() ([]byte, error) {
	type plain DocumentNode
	return marshalVariant(d, plain(d))
}

func (c CanvasNode) MarshalJSON() ([]byte, error) {
	type plain CanvasNode
	return marshalVariant(c, plain(c))
}

// ShapeData is the set of auxiliary payloads a Shape can carry.
type ShapeData interface {
	EmptyData | RectangleData | EllipseData | StarData | PolygonData | TextData
}

// Shape is a vector-family node: the common attributes plus a per-kind
// payload D. Both are flattened into one wire object.
type Shape[D ShapeData] struct {
	ShapeAttributes
	Data D `figma:"flatten"`
}

// MarshalJSON writes the attributes and the payload as a single object
// inside the node envelope.
func (s Shape[D]) MarshalJSON() ([]byte, error) {
	attrs, err := json.Marshal(s.ShapeAttributes)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, err
	}
	body, err := mergeObjects(attrs, data)
	if err != nil {
		return nil, err
	}
	return marshalVariant(s, json.RawMessage(body))
}

// Attributes returns the attributes shared by every shape kind.
func (s Shape[D]) Attributes() ShapeAttributes {
	return s.ShapeAttributes
}

// ShapeNode is implemented by every Shape instantiation.
type ShapeNode interface {
	NodeVariant
	Attributes() ShapeAttributes
}

type (
	VectorNode    = Shape[EmptyData]
	RectangleNode = Shape[RectangleData]
	EllipseNode   = Shape[EllipseData]
	StarNode      = Shape[StarData]
	PolygonNode   = Shape[PolygonData]
	TextNode      = Shape[TextData]
)

// EmptyData is the payload of shapes without extra fields.
type EmptyData struct{}

// RectangleData holds corner rounding.
type RectangleData struct {
	CornerRadius float64 `json:"cornerRadius,omitempty" default:"0"`
	// RectangleCornerRadii overrides CornerRadius per corner, clockwise
	// from the top left.
	RectangleCornerRadii *[4]float64 `json:"rectangleCornerRadii,omitempty"`
	// CornerSmoothing is between 0 and 1; 0.6 matches iOS rounding.
	CornerSmoothing float64 `json:"cornerSmoothing,omitempty" default:"0"`
}

// EllipseData holds the arc of an ellipse.
type EllipseData struct {
	ArcData ArcData `json:"arcData"`
}

// StarData holds the point count and inner radius ratio of a star.
type StarData struct {
	PointCount  int     `json:"pointCount"`
	InnerRadius float64 `json:"innerRadius"`
}

// PolygonData holds the side count of a regular polygon.
type PolygonData struct {
	PointCount int `json:"pointCount"`
}

// TextData holds the characters of a text node and how they are styled.
type TextData struct {
	Characters string    `json:"characters"`
	Style      TypeStyle `json:"style"`
	// CharacterStyleOverrides maps each character to a key of
	// StyleOverrideTable; 0 means the base Style.
	CharacterStyleOverrides []int             `json:"characterStyleOverrides,omitzero"`
	StyleOverrideTable      map[int]TypeStyle `json:"styleOverrideTable,omitzero"`
	LineTypes               []LineType        `json:"lineTypes,omitzero"`
	LineIndentations        []int             `json:"lineIndentations,omitzero"`
}

// MaskType is how a mask node operates on the layers it masks.
type MaskType string

const (
	MaskAlpha     MaskType = "ALPHA"
	MaskVector    MaskType = "VECTOR"
	MaskLuminance MaskType = "LUMINANCE"
)

// ShapeAttributes are the properties shared by every shape kind.
type ShapeAttributes struct {
	Locked         bool              `json:"locked,omitempty" default:"false"`
	ExportSettings []ExportSetting   `json:"exportSettings,omitzero"`
	BlendMode      BlendMode         `json:"blendMode"`
	PreserveRatio  bool              `json:"preserveRatio,omitempty" default:"false"`
	LayoutAlign    LayoutAlign       `json:"layoutAlign,omitempty"`
	LayoutGrow     float64           `json:"layoutGrow,omitempty" default:"0"`
	Constraints    *LayoutConstraint `json:"constraints,omitempty"`
	Opacity        float64           `json:"opacity" default:"1"`
	IsMask         bool              `json:"isMask,omitempty" default:"false"`
	MaskType       MaskType          `json:"maskType,omitempty"`

	AbsoluteBoundingBox Rectangle `json:"absoluteBoundingBox"`
	// AbsoluteRenderBounds is nil when the node is invisible.
	AbsoluteRenderBounds *Rectangle `json:"absoluteRenderBounds,omitempty"`
	Size                 *Size      `json:"size,omitempty"`
	RelativeTransform    *Transform `json:"relativeTransform,omitempty"`

	Effects []Effect `json:"effects,omitzero"`
	Fills   []Paint  `json:"fills,omitzero"`
	// FillGeometry and StrokeGeometry are only populated when path-level
	// detail was requested.
	FillGeometry      []Path                `json:"fillGeometry,omitzero"`
	FillOverrideTable map[int]PaintOverride `json:"fillOverrideTable,omitzero"`

	Strokes                 []Paint        `json:"strokes,omitzero"`
	StrokeWeight            float64        `json:"strokeWeight,omitempty" default:"0"`
	IndividualStrokeWeights *StrokeWeights `json:"individualStrokeWeights,omitempty"`
	StrokeCap               StrokeCap      `json:"strokeCap" default:"NONE"`
	StrokeJoin              StrokeJoin     `json:"strokeJoin" default:"MITER"`
	StrokeDashes            []float64      `json:"strokeDashes,omitzero"`
	// StrokeMiterAngle is in degrees; below it a miter join is beveled.
	StrokeMiterAngle float64     `json:"strokeMiterAngle" default:"28.96"`
	StrokeGeometry   []Path      `json:"strokeGeometry,omitzero"`
	StrokeAlign      StrokeAlign `json:"strokeAlign,omitempty"`

	// Styles maps a style kind to the id of a style in File.Styles.
	Styles       map[StyleType]string `json:"styles,omitzero"`
	LayoutGrids  []LayoutGrid         `json:"layoutGrids,omitzero"`
	Interactions []Interaction        `json:"interactions,omitzero"`
	// Annotations holds at most one meaningful entry.
	Annotations []Annotation `json:"annotations,omitzero"`
}

func init() {
	registerEnum(TypeDocument, TypeCanvas, TypeVector, TypeRectangle, TypeEllipse, TypeStar, TypePolygon, TypeText)
	registerEnum(MaskAlpha, MaskVector, MaskLuminance)

	registerUnion[NodeVariant](Envelope, "type", "data",
		variant[DocumentNode](string(TypeDocument)),
		variant[CanvasNode](string(TypeCanvas)),
		variant[VectorNode](string(TypeVector)),
		variant[RectangleNode](string(TypeRectangle)),
		variant[EllipseNode](string(TypeEllipse)),
		variant[StarNode](string(TypeStar)),
		variant[PolygonNode](string(TypePolygon)),
		variant[TextNode](string(TypeText)),
	)
}
