// Package imager plans the image assets a decoded file asks to be exported.
// Rendering is left to the design tool; the plan names every file, format
// and scale so that a renderer or a report can pick it up.
package imager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/fig-types/pkg/figma"
)

// ExportConfig overrides the export settings of the collected nodes.
// A zero Format keeps each node's own settings.
type ExportConfig struct {
	Format    string    // "png", "svg", "jpg", "pdf"
	Scales    []float64 // e.g., [1, 2] for raster; ignored for svg/pdf
	OutputDir string    // local directory, default "figma-assets"
}

// ExportedAsset represents a single planned image asset.
type ExportedAsset struct {
	NodeID   string `json:"nodeId"`
	NodeName string `json:"nodeName"`
	FileName string `json:"fileName"`
	// Path is FileName inside ExportConfig.OutputDir.
	Path   string  `json:"path,omitempty"`
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	// Constraint is set when the asset is sized by width or height instead of scale.
	Constraint *figma.Constraint `json:"constraint,omitempty"`
}

// ExportPlan holds the results of planning.
type ExportPlan struct {
	Assets []ExportedAsset
	Errors []error // non-fatal per-setting problems
}

// ExportableNode is a node carrying export settings.
type ExportableNode struct {
	ID       string
	Name     string
	Settings []figma.ExportSetting
}

// ImageFillNode is a node painted with an uploaded image, gif or video.
type ImageFillNode struct {
	NodeID   string
	NodeName string
	ImageRef string
	Kind     string // "image", "gif" or "video"
	Stroke   bool
}

// ManifestName is the file WriteManifest writes into the output directory.
const ManifestName = "manifest.json"

// CollectExportableNodes walks the node tree and returns, in document order, the
// canvases and shapes that have ExportSettings defined by the designer.
func CollectExportableNodes(root figma.Node) []ExportableNode {
	var nodes []ExportableNode
	figma.Walk(root, func(n figma.Node, _ int) bool {
		var settings []figma.ExportSetting
		switch v := n.Variant.(type) {
		case figma.CanvasNode:
			settings = v.ExportSettings
		case figma.ShapeNode:
			settings = v.Attributes().ExportSettings
		}
		if len(settings) > 0 {
			nodes = append(nodes, ExportableNode{ID: n.ID, Name: n.Name, Settings: settings})
		}
		return true
	})
	return nodes
}

// CollectImageFillNodes walks the node tree and returns every visible image, gif
// and video paint of shape fills and strokes, in document order.
func CollectImageFillNodes(root figma.Node) []ImageFillNode {
	var out []ImageFillNode
	figma.Walk(root, func(n figma.Node, _ int) bool {
		shape, ok := n.Variant.(figma.ShapeNode)
		if !ok {
			return true
		}
		attrs := shape.Attributes()
		out = appendImageFills(out, n, attrs.Fills, false)
		out = appendImageFills(out, n, attrs.Strokes, true)
		return true
	})
	return out
}

func appendImageFills(out []ImageFillNode, n figma.Node, paints []figma.Paint, stroke bool) []ImageFillNode {
	add := func(ref, kind string) {
		if ref != "" {
			out = append(out, ImageFillNode{NodeID: n.ID, NodeName: n.Name, ImageRef: ref, Kind: kind, Stroke: stroke})
		}
	}
	for _, p := range paints {
		switch v := p.(type) {
		case figma.ImagePaint:
			if !v.Visible {
				continue
			}
			add(v.ImageRef, "image")
			add(v.GifRef, "gif")
		case figma.VideoPaint:
			if v.Visible {
				add(v.VideoRef, "video")
			}
		}
	}
	return out
}

// PlanExports names one asset per node export setting, or per configured scale
// when config.Format overrides the settings. Colliding file names get a numeric suffix.
func PlanExports(nodes []ExportableNode, config ExportConfig) *ExportPlan {
	plan := &ExportPlan{}
	usedNames := make(map[string]bool) // track filename collisions

	add := func(n ExportableNode, suffix, format string, scale float64, c *figma.Constraint) {
		fileName := buildFileName(n.Name, n.ID, suffix, format, scale)

		if usedNames[fileName] {
			ext := filepath.Ext(fileName)
			base := strings.TrimSuffix(fileName, ext)
			for i := 2; ; i++ {
				// A node may already be named like a generated suffix.
				if candidate := fmt.Sprintf("%s-%d%s", base, i, ext); !usedNames[candidate] {
					fileName = candidate
					break
				}
			}
		}
		usedNames[fileName] = true

		plan.Assets = append(plan.Assets, ExportedAsset{
			NodeID:     n.ID,
			NodeName:   n.Name,
			FileName:   fileName,
			Path:       filepath.Join(config.OutputDir, fileName),
			Format:     format,
			Scale:      scale,
			Constraint: c,
		})
	}

	if config.Format != "" {
		format := strings.ToLower(config.Format)

		// Determine effective scales: for SVG/PDF, always use scale 1.
		scales := config.Scales
		if len(scales) == 0 || isVector(format) {
			scales = []float64{1}
		}

		for _, scale := range scales {
			for _, n := range nodes {
				add(n, "", format, scale, nil)
			}
		}
		return plan
	}

	for _, n := range nodes {
		for _, s := range n.Settings {
			format := strings.ToLower(string(s.Format))
			if format == "" {
				plan.Errors = append(plan.Errors, fmt.Errorf("node %s (%s): export setting without format", n.ID, n.Name))
				continue
			}

			scale := 1.0
			var constraint *figma.Constraint
			switch s.Constraint.Type {
			case figma.ConstraintScale, "":
				if s.Constraint.Value > 0 {
					scale = s.Constraint.Value
				}
			default:
				c := s.Constraint
				constraint = &c
			}
			if isVector(format) {
				scale = 1
			}

			add(n, s.Suffix, format, scale, constraint)
		}
	}

	return plan
}

// WriteManifest creates the output directory and writes the planned assets to
// its manifest file, returning the manifest path.
func WriteManifest(plan *ExportPlan, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
	}

	assets := plan.Assets
	if assets == nil {
		assets = []ExportedAsset{}
	}
	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := filepath.Join(outputDir, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return path, nil
}

func isVector(format string) bool {
	return format == "svg" || format == "pdf"
}

// buildFileName creates a sanitized filename from a node name.
// Uses kebab-case, appends the export suffix, adds @2x/@3x for raster scales > 1,
// and falls back to the sanitized node ID if the name is empty.
func buildFileName(nodeName, nodeID, suffix, format string, scale float64) string {
	name := toKebabCase(nodeName + suffix)
	if name == "" {
		name = toKebabCase(nodeID)
	}
	if name == "" {
		name = "asset"
	}

	// Add scale suffix for raster formats with scale > 1.
	scaleSuffix := ""
	if scale > 1 && !isVector(format) {
		scaleSuffix = fmt.Sprintf("@%gx", scale)
	}

	return fmt.Sprintf("%s%s.%s", name, scaleSuffix, format)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// Separators such as ':' and '/' become hyphens, other symbols are dropped.
func toKebabCase(s string) string {
	s = strings.ToLower(s)

	var result strings.Builder
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			result.WriteRune(r)
		case r == ' ' || r == '_' || r == '-' || r == ':' || r == '/':
			result.WriteRune('-')
		}
	}

	return result.String()
}
