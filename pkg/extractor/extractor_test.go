package extractor

import (
	"reflect"
	"testing"

	"github.com/kataras/fig-types/pkg/figma"
)

func solid(r, g, b float64) figma.Paint {
	return figma.SolidPaint{
		PaintCommon: figma.PaintCommon{Visible: true, Opacity: 1},
		Color:       figma.Color{R: r, G: g, B: b, A: 1},
	}
}

func rect(id, name string, radius float64, fills ...figma.Paint) figma.Node {
	return figma.Node{ID: id, Name: name, Visible: true, Variant: figma.RectangleNode{
		ShapeAttributes: figma.ShapeAttributes{
			Opacity:             1,
			AbsoluteBoundingBox: figma.Rectangle{Width: 100, Height: 40},
			Fills:               fills,
		},
		Data: figma.RectangleData{CornerRadius: radius},
	}}
}

func text(id, name string, size, weight float64) figma.Node {
	return figma.Node{ID: id, Name: name, Visible: true, Variant: figma.TextNode{
		ShapeAttributes: figma.ShapeAttributes{
			Opacity: 1,
			Fills:   []figma.Paint{solid(0, 0, 0)},
			Styles:  map[figma.StyleType]string{figma.StyleText: "S:1"},
		},
		Data: figma.TextData{
			Characters: "Hello",
			Style: figma.TypeStyle{
				FontFamily:   "Inter",
				FontSize:     size,
				FontWeight:   weight,
				LineHeightPx: size * 1.5,
			},
		},
	}}
}

func sampleFile() *figma.File {
	header := rect("1:1", "Header", 0, solid(1, 1, 1))
	shape := header.Variant.(figma.RectangleNode)
	shape.AbsoluteBoundingBox.Height = 64
	shape.Effects = []figma.Effect{figma.ShadowEffect{
		Type:    figma.EffectDropShadow,
		Visible: true,
		Radius:  4,
		Offset:  figma.Vector{Y: 2},
		Color:   figma.Color{A: 0.25},
	}}
	shape.Interactions = []figma.Interaction{{
		Actions: []figma.Action{figma.NodeAction{DestinationID: "2:0", Navigation: figma.NavigateTo}},
	}}
	header.Variant = shape

	content := rect("1:5", "Content", 0)
	cshape := content.Variant.(figma.RectangleNode)
	cshape.LayoutGrids = []figma.LayoutGrid{{Visible: true, GutterSize: 16, Offset: 24}}
	content.Variant = cshape

	page := figma.Node{ID: "0:1", Name: "Page", Visible: true, Variant: figma.CanvasNode{
		BackgroundColor: figma.Color{R: 0.9, G: 0.9, B: 0.9, A: 1},
		Children: []figma.Node{
			header,
			rect("1:2", "Primary Button", 8, solid(0, 0, 1)),
			rect("1:3", "Primary Alt", 4, solid(0, 0, 1)),
			text("1:4", "Body Text", 16, 400),
			content,
			text("1:6", "Title", 32, 700),
		},
	}}
	other := figma.Node{ID: "0:2", Name: "Other", Visible: true, Variant: figma.CanvasNode{
		Children: []figma.Node{rect("2:0", "Error Banner", 12, solid(1, 0, 0))},
	}}

	return &figma.File{
		Name: "Sample",
		Document: figma.Node{ID: "0:0", Name: "Document", Visible: true, Variant: figma.DocumentNode{
			Children: []figma.Node{page, other},
		}},
		Styles: map[string]figma.Style{
			"S:1": {Key: "k1", Name: "Body/Regular", StyleType: figma.StyleText},
			"S:2": {Key: "k2", Name: "Unused", StyleType: figma.StyleFill},
		},
	}
}

func TestExtract(t *testing.T) {
	specs := Extract(sampleFile())

	if want := map[string]string{"Primary Alt": "#0000FF"}; !reflect.DeepEqual(specs.Colors.Primary, want) {
		t.Errorf("Extract() primary = %v, want %v", specs.Colors.Primary, want)
	}
	if got := specs.Colors.Status["Error Banner"]; got != "#FF0000" {
		t.Errorf("Extract() status = %q, want %q", got, "#FF0000")
	}
	if got := specs.Colors.Background["Page"]; got != "#E6E6E6" {
		t.Errorf("Extract() page background = %q, want %q", got, "#E6E6E6")
	}
	if got := specs.Colors.Text["Body Text"]; got != "#000000" {
		t.Errorf("Extract() text color = %q, want %q", got, "#000000")
	}

	if specs.Typography.FontFamily != "Inter" {
		t.Errorf("Extract() font family = %q, want %q", specs.Typography.FontFamily, "Inter")
	}
	if want := map[string]float64{"xs": 16, "sm": 32}; !reflect.DeepEqual(specs.Typography.FontSizes, want) {
		t.Errorf("Extract() font sizes = %v, want %v", specs.Typography.FontSizes, want)
	}
	if want := map[string]float64{"sm": 4, "md": 8, "lg": 12}; !reflect.DeepEqual(specs.Radii.Values, want) {
		t.Errorf("Extract() radii = %v, want %v", specs.Radii.Values, want)
	}
	if want := map[string]float64{"1": 16, "2": 24}; !reflect.DeepEqual(specs.Spacing.Values, want) {
		t.Errorf("Extract() spacing = %v, want %v", specs.Spacing.Values, want)
	}

	if len(specs.Shadows) != 1 || specs.Shadows[0].Blur != 4 || specs.Shadows[0].Type != "DROP_SHADOW" {
		t.Errorf("Extract() shadows = %+v", specs.Shadows)
	}

	if specs.Layout.HeaderHeight != 64 || specs.Layout.ContentPadding != 24 {
		t.Errorf("Extract() layout = %+v", specs.Layout)
	}

	want := []NamedStyle{{ID: "S:1", Name: "Body/Regular", Type: figma.StyleText, Users: 2}}
	if !reflect.DeepEqual(specs.Styles, want) {
		t.Errorf("Extract() styles = %+v, want %+v", specs.Styles, want)
	}
}

func TestBuildNodeTree(t *testing.T) {
	f := sampleFile()
	specs := Extract(f)

	if len(specs.NodeTree) != 1 {
		t.Fatalf("Extract() node tree roots = %d, want 1", len(specs.NodeTree))
	}
	root := specs.NodeTree[0]
	if root.Type != "document" || len(root.Children) != 2 {
		t.Fatalf("root = %s with %d children", root.Type, len(root.Children))
	}

	page := root.Children[0]
	header := page.Children[0]
	if header.Height != 64 || header.Interactions != 1 || !reflect.DeepEqual(header.Destinations, []string{"2:0"}) {
		t.Errorf("header = %+v", header)
	}

	title := page.Children[5]
	if title.TextContent != "Hello" || title.FontSize != 32 || title.FontWeight != 700 {
		t.Errorf("title = %+v", title)
	}
	if got := title.Styles[figma.StyleText]; got != "Body/Regular" {
		t.Errorf("title style = %q, want %q", got, "Body/Regular")
	}
}

func TestExtractNodes(t *testing.T) {
	tests := []struct {
		name        string
		ids         []string
		inherit     bool
		wantRoots   int
		wantPrimary int
		wantBg      bool
	}{
		{name: "single node", ids: []string{"1:2"}, wantRoots: 1, wantPrimary: 1},
		{name: "unknown id skipped", ids: []string{"9:9", "1:3"}, wantRoots: 1, wantPrimary: 1},
		{name: "page subtree", ids: []string{"0:2"}, wantRoots: 1, wantBg: true},
		{name: "inherit context", ids: []string{"2:0"}, inherit: true, wantRoots: 1, wantBg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := ExtractNodes(sampleFile(), tt.ids, tt.inherit)
			if len(specs.NodeTree) != tt.wantRoots {
				t.Errorf("ExtractNodes() roots = %d, want %d", len(specs.NodeTree), tt.wantRoots)
			}
			if len(specs.Colors.Primary) != tt.wantPrimary {
				t.Errorf("ExtractNodes() primary = %v, want %d entries", specs.Colors.Primary, tt.wantPrimary)
			}
			if got := len(specs.Colors.Background) > 0; got != tt.wantBg {
				t.Errorf("ExtractNodes() background = %v, want present %v", specs.Colors.Background, tt.wantBg)
			}
		})
	}
}

func TestDeduplicateColors(t *testing.T) {
	got := deduplicateColors(map[string]string{
		"b": "#111111",
		"a": "#111111",
		"c": "#222222",
	})
	want := map[string]string{"a": "#111111", "c": "#222222"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("deduplicateColors() = %v, want %v", got, want)
	}
}

func TestToScale(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]float64
		scale  []string
		want   map[string]float64
	}{
		{
			name:   "sorted and deduplicated",
			values: map[string]float64{"a": 24, "b": 12, "c": 12, "d": 0},
			scale:  radiusNames,
			want:   map[string]float64{"sm": 12, "md": 24},
		},
		{
			name:   "overflow dropped",
			values: map[string]float64{"a": 1, "b": 2, "c": 3},
			scale:  []string{"x", "y"},
			want:   map[string]float64{"x": 1, "y": 2},
		},
		{
			name:   "empty",
			values: map[string]float64{},
			scale:  fontSizeNames,
			want:   map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toScale(tt.values, tt.scale); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttachAssetsToNodeTree(t *testing.T) {
	specs := Extract(sampleFile())
	AttachAssetsToNodeTree(specs.NodeTree, []ExportedAssetInfo{
		{NodeID: "1:2", FileName: "primary-button.png"},
		{NodeID: "1:2", FileName: "primary-button@2x.png"},
		{FileName: "orphan.png"},
	})

	button := specs.NodeTree[0].Children[0].Children[1]
	if len(button.ExportedAssets) != 2 {
		t.Errorf("button assets = %v, want 2", button.ExportedAssets)
	}
}
