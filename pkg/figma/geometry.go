package figma

import (
	"fmt"
	"math"
)

// Color represents an RGBA color with float values ranging from 0 to 1.
// The range is a convention of the design tool and is not enforced.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Hex converts the color to standard hexadecimal format (#RRGGBB), dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the width and height of a node's layout box.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height)
// in absolute canvas coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies inside r, edges included.
func (r Rectangle) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Transform is a 2x3 affine matrix holding the top two rows of a 3x3
// transform. The third row is always [0, 0, 1] and never appears on the wire.
type Transform [2][3]float64

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{{1, 0, 0}, {0, 1, 0}}
}

// Apply maps v through the transform.
func (t Transform) Apply(v Vector) Vector {
	return Vector{
		X: t[0][0]*v.X + t[0][1]*v.Y + t[0][2],
		Y: t[1][0]*v.X + t[1][1]*v.Y + t[1][2],
	}
}

// Multiply returns t·o, the transform applying o first and then t.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		{
			t[0][0]*o[0][0] + t[0][1]*o[1][0],
			t[0][0]*o[0][1] + t[0][1]*o[1][1],
			t[0][0]*o[0][2] + t[0][1]*o[1][2] + t[0][2],
		},
		{
			t[1][0]*o[0][0] + t[1][1]*o[1][0],
			t[1][0]*o[0][1] + t[1][1]*o[1][1],
			t[1][0]*o[0][2] + t[1][1]*o[1][2] + t[1][2],
		},
	}
}

// WindingRule decides which regions of a self-intersecting path are filled.
type WindingRule string

const (
	WindingNonZero WindingRule = "NONZERO"
	WindingEvenOdd WindingRule = "EVENODD"
)

// Path is a vector outline of a node's fill or stroke, expressed as SVG path data.
type Path struct {
	Path        string      `json:"path"`
	WindingRule WindingRule `json:"windingRule"`
	// OverrideID points into the node's fill override table.
	OverrideID *int `json:"overrideId,omitempty"`
}

// ArcData describes the arc of an ellipse. 0° is the x axis and angles
// increase clockwise; angles are in radians.
type ArcData struct {
	StartingAngle float64 `json:"startingAngle"`
	EndingAngle   float64 `json:"endingAngle"`
	// InnerRadius is between 0 and 1; non-zero values make a donut.
	InnerRadius float64 `json:"innerRadius"`
}

func init() {
	registerEnum(WindingNonZero, WindingEvenOdd)
}
