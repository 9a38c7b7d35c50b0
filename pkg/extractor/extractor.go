package extractor

import (
	"sort"
	"strings"

	"github.com/kataras/fig-types/pkg/figma"
)

// DesignSpecs represents the design tokens summarized from a decoded file.
// It includes color palettes, typography settings, spacing values, shadows, border radii, layout measurements,
// and optionally the planned image assets and a description of the node tree.
type DesignSpecs struct {
	Colors         ColorPalette
	Typography     Typography
	Spacing        Spacing
	Shadows        []Shadow
	Radii          BorderRadii
	Layout         LayoutSpecs
	Styles         []NamedStyle
	ExportedAssets []ExportedAssetInfo
	NodeTree       []*NodeDescription
}

// ExportedAssetInfo represents metadata about a planned image asset.
type ExportedAssetInfo struct {
	NodeID   string // node the asset is exported from
	NodeName string
	FileName string
	Format   string
	Scale    float64
}

// NamedStyle is a shared style of the file that at least one shape uses.
type NamedStyle struct {
	ID    string
	Name  string
	Type  figma.StyleType
	Users int // number of shapes referring to it
}

// NodeDescription describes a single node in the design hierarchy with its visual properties.
type NodeDescription struct {
	ID      string
	Name    string
	Type    string // document, canvas, rectangle, text, ...
	Visible bool

	// Dimensions
	Width, Height float64

	// Visual
	FillColors   []string // hex from SOLID fills
	ImageFills   []string // imageRef values from IMAGE fills
	StrokeColors []string
	StrokeWeight float64
	CornerRadius float64
	Opacity      float64

	// Text (text nodes only)
	TextContent         string
	FontFamily          string
	FontSize            float64
	FontWeight          float64
	LineHeightPx        float64
	TextAlignHorizontal string

	// Effects
	Shadows []Shadow

	// Prototyping
	Interactions int
	Destinations []string // node ids reached by NODE actions

	// Shared styles by kind, resolved to their names when the file declares them.
	Styles map[figma.StyleType]string

	// Linked exported assets (populated after asset planning)
	ExportedAssets []ExportedAssetInfo

	// Recursive children
	Children []*NodeDescription
}

// ColorPalette organizes colors into semantic categories for easier reference and usage.
// Colors are categorized as Primary, Secondary, Background, Text, Status (success/error/warning), and Border colors.
type ColorPalette struct {
	Primary    map[string]string
	Secondary  map[string]string
	Background map[string]string
	Text       map[string]string
	Status     map[string]string
	Border     map[string]string
}

// Typography holds all font-related specifications including font family, sizes, weights, and line heights.
// Font sizes are normalized to a standard scale for consistency across the design system.
type Typography struct {
	FontFamily  string
	FontSizes   map[string]float64
	FontWeights map[string]float64
	LineHeights map[string]float64
}

// Spacing defines the spacing scale used throughout the design, taken from
// the gutters and offsets of layout grids.
type Spacing struct {
	Values map[string]float64
}

// Shadow represents a visual shadow effect with its positioning, blur, spread, and color properties.
// Supports both DROP_SHADOW and INNER_SHADOW.
type Shadow struct {
	Name   string
	Type   string
	X      float64
	Y      float64
	Blur   float64
	Spread float64
	Color  string
}

// BorderRadii defines the border radius values used in the design system.
// Values are normalized to standard sizes (sm, md, lg, xl, 2xl) for consistent rounded corners.
type BorderRadii struct {
	Values map[string]float64
}

// LayoutSpecs captures common layout dimensions such as header heights, sidebar widths, and content padding.
// These measurements are detected from nodes with relevant names.
type LayoutSpecs struct {
	HeaderHeight   float64
	SidebarWidth   float64
	ContentPadding float64
}

func newSpecs() *DesignSpecs {
	return &DesignSpecs{
		Colors: ColorPalette{
			Primary:    make(map[string]string),
			Secondary:  make(map[string]string),
			Background: make(map[string]string),
			Text:       make(map[string]string),
			Status:     make(map[string]string),
			Border:     make(map[string]string),
		},
		Typography: Typography{
			FontSizes:   make(map[string]float64),
			FontWeights: make(map[string]float64),
			LineHeights: make(map[string]float64),
		},
		Spacing: Spacing{
			Values: make(map[string]float64),
		},
		Radii: BorderRadii{
			Values: make(map[string]float64),
		},
		Shadows: []Shadow{},
	}
}

// Extract analyzes a decoded file and extracts all design specifications including colors,
// typography, spacing, shadows, border radii, layout measurements and the shared styles in use.
// The extracted values are normalized and deduplicated.
func Extract(f *figma.File) *DesignSpecs {
	specs := newSpecs()

	figma.Walk(f.Document, func(n figma.Node, _ int) bool {
		extractNodeProperties(n, specs)
		return true
	})

	specs.NodeTree = []*NodeDescription{buildNodeTree(f.Document, f.Styles)}
	specs.Styles = usedStyles(f.Styles, specs.NodeTree)

	normalizeSpecs(specs)
	return specs
}

// ExtractNodes extracts the design specifications of the subtrees rooted at nodeIDs only.
// Unknown ids are skipped. When inheritFileContext is true the document root and its
// pages contribute their own properties too, without recursing into the rest of the file.
func ExtractNodes(f *figma.File, nodeIDs []string, inheritFileContext bool) *DesignSpecs {
	specs := newSpecs()

	if inheritFileContext {
		extractFileContext(f.Document, specs)
	}

	for _, id := range nodeIDs {
		n, ok := figma.Find(f.Document, id)
		if !ok {
			continue
		}
		figma.Walk(n, func(n figma.Node, _ int) bool {
			extractNodeProperties(n, specs)
			return true
		})
		specs.NodeTree = append(specs.NodeTree, buildNodeTree(n, f.Styles))
	}
	specs.Styles = usedStyles(f.Styles, specs.NodeTree)

	normalizeSpecs(specs)
	return specs
}

// extractFileContext extracts the properties of the document root and its immediate children
// (typically pages holding the design system) without recursing deeper.
func extractFileContext(root figma.Node, specs *DesignSpecs) {
	extractNodeProperties(root, specs)
	for _, child := range root.Children() {
		extractNodeProperties(child, specs)
	}
}

// extractNodeProperties extracts design properties from a single node without recursing.
func extractNodeProperties(node figma.Node, specs *DesignSpecs) {
	if canvas, ok := node.Variant.(figma.CanvasNode); ok {
		specs.Colors.Background[node.Name] = canvas.BackgroundColor.Hex()
		return
	}

	shape, ok := node.Variant.(figma.ShapeNode)
	if !ok {
		return
	}
	attrs := shape.Attributes()

	for _, hex := range solidColors(attrs.Fills) {
		categorizeColor(node.Name, hex, specs)
	}
	for _, hex := range solidColors(attrs.Strokes) {
		specs.Colors.Border[node.Name] = hex
	}

	if text, ok := shape.(figma.TextNode); ok {
		style := text.Data.Style
		if style.FontFamily != "" && specs.Typography.FontFamily == "" {
			specs.Typography.FontFamily = style.FontFamily
		}
		if style.FontSize > 0 {
			specs.Typography.FontSizes[node.Name] = style.FontSize
		}
		if style.FontWeight > 0 {
			specs.Typography.FontWeights[node.Name] = style.FontWeight
		}
		if style.LineHeightPx > 0 {
			specs.Typography.LineHeights[node.Name] = style.LineHeightPx
		}
	}

	specs.Shadows = append(specs.Shadows, shadows(node.Name, attrs.Effects)...)

	if radius := cornerRadius(shape); radius > 0 {
		specs.Radii.Values[node.Name] = radius
	}

	for _, grid := range attrs.LayoutGrids {
		if !grid.Visible {
			continue
		}
		if grid.GutterSize > 0 {
			specs.Spacing.Values[node.Name+"-gutter"] = grid.GutterSize
		}
		if grid.Offset > 0 {
			specs.Spacing.Values[node.Name+"-offset"] = grid.Offset
		}
	}

	name := strings.ToLower(node.Name)
	box := attrs.AbsoluteBoundingBox
	if strings.Contains(name, "header") {
		specs.Layout.HeaderHeight = box.Height
	}
	if strings.Contains(name, "sidebar") {
		specs.Layout.SidebarWidth = box.Width
	}
	if strings.Contains(name, "content") {
		for _, grid := range attrs.LayoutGrids {
			if grid.Offset > 0 {
				specs.Layout.ContentPadding = grid.Offset
				break
			}
		}
	}
}

// solidColors returns the hex colors of the visible solid paints.
func solidColors(paints []figma.Paint) []string {
	var out []string
	for _, p := range paints {
		if s, ok := p.(figma.SolidPaint); ok && s.Visible {
			out = append(out, s.Color.Hex())
		}
	}
	return out
}

func imageRefs(paints []figma.Paint) []string {
	var out []string
	for _, p := range paints {
		if img, ok := p.(figma.ImagePaint); ok && img.Visible && img.ImageRef != "" {
			out = append(out, img.ImageRef)
		}
	}
	return out
}

func shadows(name string, effects []figma.Effect) []Shadow {
	var out []Shadow
	for _, e := range effects {
		s, ok := e.(figma.ShadowEffect)
		if !ok || !s.Visible {
			continue
		}
		out = append(out, Shadow{
			Name:   name,
			Type:   string(s.Type),
			X:      s.Offset.X,
			Y:      s.Offset.Y,
			Blur:   s.Radius,
			Spread: s.Spread,
			Color:  s.Color.Hex(),
		})
	}
	return out
}

// cornerRadius returns the uniform radius of a rectangle, or its largest
// per-corner radius when only those are set.
func cornerRadius(shape figma.ShapeNode) float64 {
	rect, ok := shape.(figma.RectangleNode)
	if !ok {
		return 0
	}
	radius := rect.Data.CornerRadius
	if radius == 0 && rect.Data.RectangleCornerRadii != nil {
		for _, r := range rect.Data.RectangleCornerRadii {
			radius = max(radius, r)
		}
	}
	return radius
}

// categorizeColor categorizes a color into the appropriate palette category
// (Primary, Secondary, Background, Text, Status, or Border) based on keywords in the node name.
func categorizeColor(nodeName, colorHex string, specs *DesignSpecs) {
	name := strings.ToLower(nodeName)

	if strings.Contains(name, "primary") {
		specs.Colors.Primary[nodeName] = colorHex
	} else if strings.Contains(name, "secondary") {
		specs.Colors.Secondary[nodeName] = colorHex
	} else if strings.Contains(name, "background") || strings.Contains(name, "bg") {
		specs.Colors.Background[nodeName] = colorHex
	} else if strings.Contains(name, "text") {
		specs.Colors.Text[nodeName] = colorHex
	} else if strings.Contains(name, "success") || strings.Contains(name, "error") ||
		strings.Contains(name, "warning") || strings.Contains(name, "info") {
		specs.Colors.Status[nodeName] = colorHex
	} else if strings.Contains(name, "border") {
		specs.Colors.Border[nodeName] = colorHex
	}
}

// normalizeSpecs applies normalization and deduplication to all extracted specifications.
// This ensures colors are unique, font sizes follow a standard scale (xs, sm, base, lg, xl, etc.),
// spacing values use a numeric scale, and border radii use consistent naming.
func normalizeSpecs(specs *DesignSpecs) {
	specs.Colors.Primary = deduplicateColors(specs.Colors.Primary)
	specs.Colors.Secondary = deduplicateColors(specs.Colors.Secondary)
	specs.Colors.Background = deduplicateColors(specs.Colors.Background)
	specs.Colors.Text = deduplicateColors(specs.Colors.Text)
	specs.Colors.Status = deduplicateColors(specs.Colors.Status)
	specs.Colors.Border = deduplicateColors(specs.Colors.Border)

	specs.Typography.FontSizes = toScale(specs.Typography.FontSizes, fontSizeNames)
	specs.Spacing.Values = toScale(specs.Spacing.Values, spacingNames)
	specs.Radii.Values = toScale(specs.Radii.Values, radiusNames)
}

// deduplicateColors removes duplicate color values from a color map. Of the names sharing a
// color the alphabetically first one is kept, so the result does not depend on map order.
func deduplicateColors(colors map[string]string) map[string]string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]bool)
	result := make(map[string]string)
	for _, name := range names {
		color := colors[name]
		if !seen[color] {
			result[name] = color
			seen[color] = true
		}
	}

	return result
}

var (
	fontSizeNames = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}
	spacingNames  = []string{"1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "24"}
	radiusNames   = []string{"sm", "md", "lg", "xl", "2xl"}
)

// toScale maps the distinct positive values, smallest first, onto the given
// scale names. Values beyond the end of the scale are dropped.
func toScale(values map[string]float64, scale []string) map[string]float64 {
	if len(values) == 0 {
		return values
	}

	unique := make([]float64, 0, len(values))
	seen := make(map[float64]bool)
	for _, v := range values {
		if !seen[v] && v > 0 {
			unique = append(unique, v)
			seen[v] = true
		}
	}
	sort.Float64s(unique)

	result := make(map[string]float64)
	for i, v := range unique {
		if i < len(scale) {
			result[scale[i]] = v
		}
	}

	return result
}

// buildNodeTree recursively walks the node tree and builds a parallel NodeDescription tree
// containing the visual properties of each node.
func buildNodeTree(node figma.Node, styles map[string]figma.Style) *NodeDescription {
	nd := &NodeDescription{
		ID:      node.ID,
		Name:    node.Name,
		Type:    node.Type(),
		Visible: node.Visible,
	}

	if shape, ok := node.Variant.(figma.ShapeNode); ok {
		attrs := shape.Attributes()

		nd.Width = attrs.AbsoluteBoundingBox.Width
		nd.Height = attrs.AbsoluteBoundingBox.Height
		nd.Opacity = attrs.Opacity

		nd.FillColors = solidColors(attrs.Fills)
		nd.ImageFills = imageRefs(attrs.Fills)
		nd.StrokeColors = solidColors(attrs.Strokes)
		nd.StrokeWeight = attrs.StrokeWeight
		nd.CornerRadius = cornerRadius(shape)
		nd.Shadows = shadows(node.Name, attrs.Effects)

		if text, ok := shape.(figma.TextNode); ok {
			nd.TextContent = text.Data.Characters
			nd.FontFamily = text.Data.Style.FontFamily
			nd.FontSize = text.Data.Style.FontSize
			nd.FontWeight = text.Data.Style.FontWeight
			nd.LineHeightPx = text.Data.Style.LineHeightPx
			nd.TextAlignHorizontal = string(text.Data.Style.TextAlignHorizontal)
		}

		nd.Interactions = len(attrs.Interactions)
		for _, in := range attrs.Interactions {
			for _, a := range in.Actions {
				if na, ok := a.(figma.NodeAction); ok && na.DestinationID != "" {
					nd.Destinations = append(nd.Destinations, na.DestinationID)
				}
			}
		}

		if len(attrs.Styles) > 0 {
			nd.Styles = make(map[figma.StyleType]string, len(attrs.Styles))
			for kind, id := range attrs.Styles {
				name := id
				if s, ok := styles[id]; ok {
					name = s.Name
				}
				nd.Styles[kind] = name
			}
		}
	}

	for _, child := range node.Children() {
		nd.Children = append(nd.Children, buildNodeTree(child, styles))
	}

	return nd
}

// usedStyles lists the file styles referred to from the described trees,
// sorted by type and then name.
func usedStyles(styles map[string]figma.Style, roots []*NodeDescription) []NamedStyle {
	byName := make(map[string]string, len(styles))
	for id, s := range styles {
		byName[s.Name] = id
	}

	users := make(map[string]int)
	var walk func(nd *NodeDescription)
	walk = func(nd *NodeDescription) {
		for _, name := range nd.Styles {
			if id, ok := byName[name]; ok {
				users[id]++
			}
		}
		for _, child := range nd.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	out := make([]NamedStyle, 0, len(users))
	for id, n := range users {
		s := styles[id]
		out = append(out, NamedStyle{ID: id, Name: s.Name, Type: s.StyleType, Users: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AttachAssetsToNodeTree walks the NodeDescription tree and attaches planned assets
// to the nodes they are exported from, matching by NodeID.
func AttachAssetsToNodeTree(roots []*NodeDescription, assets []ExportedAssetInfo) {
	assetMap := make(map[string][]ExportedAssetInfo)
	for _, a := range assets {
		if a.NodeID != "" {
			assetMap[a.NodeID] = append(assetMap[a.NodeID], a)
		}
	}

	if len(assetMap) == 0 {
		return
	}

	var walk func(nd *NodeDescription)
	walk = func(nd *NodeDescription) {
		if matched, ok := assetMap[nd.ID]; ok {
			nd.ExportedAssets = append(nd.ExportedAssets, matched...)
		}
		for _, child := range nd.Children {
			walk(child)
		}
	}

	for _, root := range roots {
		walk(root)
	}
}
