package formatter

import (
	"strings"
	"testing"

	"github.com/kataras/fig-types/pkg/extractor"
	"github.com/kataras/fig-types/pkg/figma"
)

func sampleSpecs() *extractor.DesignSpecs {
	return &extractor.DesignSpecs{
		Colors: extractor.ColorPalette{
			Primary: map[string]string{"Primary Button": "#0000FF", "Primary Alt": "#1111FF"},
			Status:  map[string]string{"Error": "#FF0000"},
		},
		Typography: extractor.Typography{
			FontFamily: "Inter",
			FontSizes:  map[string]float64{"sm": 14, "xs": 12, "base": 16},
		},
		Radii: extractor.BorderRadii{Values: map[string]float64{"md": 8, "sm": 4}},
		Shadows: []extractor.Shadow{
			{Name: "Card", Type: "DROP_SHADOW", Y: 2, Blur: 4, Color: "#000000"},
			{Type: "INNER_SHADOW", Blur: 1, Spread: -1, Color: "#111111"},
		},
		Styles: []extractor.NamedStyle{{Name: "Body/Regular", Type: figma.StyleText, Users: 3}},
		Layout: extractor.LayoutSpecs{HeaderHeight: 64},
		ExportedAssets: []extractor.ExportedAssetInfo{
			{NodeName: "Logo", FileName: "logo@2x.png", Format: "png", Scale: 2},
		},
		NodeTree: []*extractor.NodeDescription{{
			ID: "0:0", Name: "Document", Type: "document", Visible: true,
			Children: []*extractor.NodeDescription{{
				ID: "1:1", Name: "Title", Type: "text", Visible: true,
				Width: 120, Height: 24, TextContent: "Welcome", FontFamily: "Inter", FontSize: 24,
			}},
		}},
	}
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(sampleSpecs(), "Sample", Options{})

	tests := []string{
		"# Design Specifications - Sample",
		"/* Primary Colors */\n--color-primary-primary-alt: #1111FF;\n--color-primary-primary-button: #0000FF;\n",
		"--color-error: #FF0000;",
		"--font-primary: 'Inter'",
		"--text-xs: 12px;\n--text-sm: 14px;\n--text-base: 16px;\n",
		"--radius-sm: 4px;\n--radius-md: 8px;\n",
		"--shadow-card: 0px 2px 4px #000000;",
		"--shadow-shadow-2: inset 0px 0px 1px -1px #111111;",
		"| Body/Regular | TEXT | 3 |",
		"- **Header Height**: 64px",
		"| Logo | `logo@2x.png` | PNG | 2x |",
	}
	for _, want := range tests {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q\n%s", want, md)
		}
	}

	for _, section := range []string{"## Component Tree", "## Problems", "### Spacing"} {
		if strings.Contains(md, section) {
			t.Errorf("ToMarkdown() unexpectedly contains %q", section)
		}
	}

	if again := ToMarkdown(sampleSpecs(), "Sample", Options{}); again != md {
		t.Error("ToMarkdown() is not deterministic")
	}
}

func TestToMarkdownOptionalSections(t *testing.T) {
	md := ToMarkdown(sampleSpecs(), "Sample", Options{
		ComponentTree: true,
		Violations: []figma.Violation{
			{Kind: figma.DuplicateID, NodeID: "1:1", Path: "0:0/1:1", Message: "id 1:1 already used"},
		},
		Ignored: []string{"document.extra"},
	})

	tests := []string{
		"## Component Tree\n\n- **Document** `document` (0:0)\n  - **Title** `text` (1:1): 120x24; \"Welcome\" Inter 24px\n",
		"## Problems\n\n- duplicate id at 0:0/1:1: id 1:1 already used\n- ignored unknown field `document.extra`\n",
	}
	for _, want := range tests {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q\n%s", want, md)
		}
	}
}

func TestOutline(t *testing.T) {
	got := Outline([]*extractor.NodeDescription{{
		ID: "2:1", Name: "Card", Type: "rectangle", Visible: false,
		Width: 10, Height: 10, FillColors: []string{"#FFFFFF"}, CornerRadius: 4,
		Destinations: []string{"3:1"},
		ExportedAssets: []extractor.ExportedAssetInfo{{FileName: "card.svg"}},
	}})

	want := "- **Card** `rectangle` (2:1): 10x10; hidden; fill #FFFFFF; radius 4; links to 3:1; `card.svg`\n"
	if got != want {
		t.Errorf("Outline() = %q, want %q", got, want)
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Primary Button", "primary-button"},
		{"Brand/Blue_500", "brand-blue-500"},
		{"Émoji ✨ Name", "moji--name"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := toKebabCase(tt.in); got != tt.want {
				t.Errorf("toKebabCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
