package formatter

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kataras/fig-types/pkg/extractor"
	"github.com/kataras/fig-types/pkg/figma"
)

// Options controls the optional sections of the Markdown report.
type Options struct {
	// ComponentTree appends an outline of the described node trees.
	ComponentTree bool
	// Violations found by validation, listed under "Problems".
	Violations []figma.Violation
	// Ignored holds the unknown keys a lenient decode skipped.
	Ignored []string
}

// ToMarkdown transforms extracted design specifications into a well-formatted markdown document.
// The output includes CSS variable definitions for colors, typography, spacing, shadows, border radii,
// and layout specifications, ready to be integrated into a design system or CSS framework.
// Every section is sorted so that the same input always renders the same document.
func ToMarkdown(specs *extractor.DesignSpecs, fileName string, opts Options) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Design Specifications - %s\n\n", fileName)
	sb.WriteString("This document contains the design specifications extracted from the design file.\n\n")

	// Colors
	sb.WriteString("## Design System\n\n")
	sb.WriteString("### Color Palette\n\n")
	sb.WriteString("```css\n")
	writeColors(&sb, "Primary Colors", "--color-primary-", specs.Colors.Primary)
	writeColors(&sb, "Secondary Colors", "--color-secondary-", specs.Colors.Secondary)
	writeColors(&sb, "Background Colors", "--color-bg-", specs.Colors.Background)
	writeColors(&sb, "Text Colors", "--color-text-", specs.Colors.Text)
	writeColors(&sb, "Status Colors", "--color-", specs.Colors.Status)
	writeColors(&sb, "Border Colors", "--color-border-", specs.Colors.Border)
	sb.WriteString("```\n\n")

	// Typography
	sb.WriteString("### Typography\n\n")
	sb.WriteString("```css\n")

	if specs.Typography.FontFamily != "" {
		fmt.Fprintf(&sb, "/* Font Family */\n--font-primary: '%s', system-ui, -apple-system, sans-serif;\n\n", specs.Typography.FontFamily)
	}

	if len(specs.Typography.FontSizes) > 0 {
		sb.WriteString("/* Font Sizes */\n")
		for _, name := range byValue(specs.Typography.FontSizes) {
			fmt.Fprintf(&sb, "--text-%s: %.0fpx;\n", name, specs.Typography.FontSizes[name])
		}
		sb.WriteString("\n")
	}

	if len(specs.Typography.FontWeights) > 0 {
		sb.WriteString("/* Font Weights */\n")
		for _, name := range slices.Sorted(maps.Keys(specs.Typography.FontWeights)) {
			fmt.Fprintf(&sb, "--font-%s: %.0f;\n", toKebabCase(name), specs.Typography.FontWeights[name])
		}
		sb.WriteString("\n")
	}

	if len(specs.Typography.LineHeights) > 0 {
		sb.WriteString("/* Line Heights */\n")
		for _, name := range slices.Sorted(maps.Keys(specs.Typography.LineHeights)) {
			fmt.Fprintf(&sb, "--leading-%s: %.0fpx;\n", toKebabCase(name), specs.Typography.LineHeights[name])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("```\n\n")

	// Spacing
	if len(specs.Spacing.Values) > 0 {
		sb.WriteString("### Spacing\n\n")
		sb.WriteString("```css\n")
		sb.WriteString("/* Spacing Scale */\n")
		for _, name := range byValue(specs.Spacing.Values) {
			fmt.Fprintf(&sb, "--space-%s: %.0fpx;\n", name, specs.Spacing.Values[name])
		}
		sb.WriteString("```\n\n")
	}

	// Border Radii
	if len(specs.Radii.Values) > 0 {
		sb.WriteString("### Border Radius\n\n")
		sb.WriteString("```css\n")
		for _, name := range byValue(specs.Radii.Values) {
			fmt.Fprintf(&sb, "--radius-%s: %.0fpx;\n", name, specs.Radii.Values[name])
		}
		sb.WriteString("--radius-full: 9999px; /* Full radius (circles) */\n")
		sb.WriteString("```\n\n")
	}

	// Shadows
	if len(specs.Shadows) > 0 {
		sb.WriteString("### Shadows\n\n")
		sb.WriteString("```css\n")
		for i, shadow := range specs.Shadows {
			shadowName := toKebabCase(shadow.Name)
			if shadowName == "" {
				shadowName = fmt.Sprintf("shadow-%d", i+1)
			}

			shadowValue := fmt.Sprintf("%.0fpx %.0fpx %.0fpx", shadow.X, shadow.Y, shadow.Blur)
			if shadow.Spread != 0 {
				shadowValue += fmt.Sprintf(" %.0fpx", shadow.Spread)
			}
			shadowValue += " " + shadow.Color
			if shadow.Type == string(figma.EffectInnerShadow) {
				shadowValue = "inset " + shadowValue
			}

			fmt.Fprintf(&sb, "--shadow-%s: %s;\n", shadowName, shadowValue)
		}
		sb.WriteString("```\n\n")
	}

	// Shared styles
	if len(specs.Styles) > 0 {
		sb.WriteString("### Styles\n\n")
		sb.WriteString("| Style | Type | Used by |\n")
		sb.WriteString("|-------|------|---------|\n")
		for _, s := range specs.Styles {
			fmt.Fprintf(&sb, "| %s | %s | %d |\n", s.Name, s.Type, s.Users)
		}
		sb.WriteString("\n")
	}

	// Layout
	sb.WriteString("## Layout Specifications\n\n")
	sb.WriteString("### Main Layout\n\n")

	if specs.Layout.HeaderHeight > 0 {
		fmt.Fprintf(&sb, "- **Header Height**: %.0fpx\n", specs.Layout.HeaderHeight)
	}

	if specs.Layout.SidebarWidth > 0 {
		fmt.Fprintf(&sb, "- **Sidebar Width**: %.0fpx\n", specs.Layout.SidebarWidth)
	}

	if specs.Layout.ContentPadding > 0 {
		fmt.Fprintf(&sb, "- **Content Padding**: %.0fpx\n", specs.Layout.ContentPadding)
	}

	sb.WriteString("\n")

	// Exported Assets
	if len(specs.ExportedAssets) > 0 {
		sb.WriteString("## Exported Assets\n\n")
		sb.WriteString("| Asset | File | Format | Scale |\n")
		sb.WriteString("|-------|------|--------|-------|\n")
		for _, asset := range specs.ExportedAssets {
			name := asset.NodeName
			if name == "" {
				name = asset.FileName
			}
			fmt.Fprintf(&sb, "| %s | `%s` | %s | %gx |\n", name, asset.FileName, strings.ToUpper(asset.Format), asset.Scale)
		}
		sb.WriteString("\n")
	}

	if opts.ComponentTree && len(specs.NodeTree) > 0 {
		sb.WriteString("## Component Tree\n\n")
		sb.WriteString(Outline(specs.NodeTree))
		sb.WriteString("\n")
	}

	if len(opts.Violations) > 0 || len(opts.Ignored) > 0 {
		sb.WriteString("## Problems\n\n")
		for _, v := range opts.Violations {
			fmt.Fprintf(&sb, "- %s\n", v)
		}
		for _, key := range opts.Ignored {
			fmt.Fprintf(&sb, "- ignored unknown field `%s`\n", key)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeColors(sb *strings.Builder, title, prefix string, colors map[string]string) {
	if len(colors) == 0 {
		return
	}
	fmt.Fprintf(sb, "/* %s */\n", title)
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		fmt.Fprintf(sb, "%s%s: %s;\n", prefix, toKebabCase(name), colors[name])
	}
	sb.WriteString("\n")
}

// byValue returns the keys of a scale ordered by ascending value.
func byValue(values map[string]float64) []string {
	return slices.SortedFunc(maps.Keys(values), func(a, b string) int {
		if values[a] != values[b] {
			if values[a] < values[b] {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
}

// Outline renders the described node trees as a nested Markdown list, one
// node per line with its type, id and the properties worth a glance.
func Outline(roots []*extractor.NodeDescription) string {
	var sb strings.Builder
	for _, root := range roots {
		writeOutline(&sb, root, 0)
	}
	return sb.String()
}

func writeOutline(sb *strings.Builder, nd *extractor.NodeDescription, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "- **%s** `%s` (%s)", nd.Name, nd.Type, nd.ID)

	var details []string
	if nd.Width > 0 || nd.Height > 0 {
		details = append(details, fmt.Sprintf("%gx%g", nd.Width, nd.Height))
	}
	if !nd.Visible {
		details = append(details, "hidden")
	}
	if len(nd.FillColors) > 0 {
		details = append(details, "fill "+strings.Join(nd.FillColors, ", "))
	}
	if len(nd.ImageFills) > 0 {
		details = append(details, fmt.Sprintf("%d image fill(s)", len(nd.ImageFills)))
	}
	if nd.CornerRadius > 0 {
		details = append(details, fmt.Sprintf("radius %g", nd.CornerRadius))
	}
	if nd.TextContent != "" {
		details = append(details, fmt.Sprintf("%q %s %gpx", truncate(nd.TextContent, 40), nd.FontFamily, nd.FontSize))
	}
	if len(nd.Destinations) > 0 {
		details = append(details, "links to "+strings.Join(nd.Destinations, ", "))
	}
	for _, a := range nd.ExportedAssets {
		details = append(details, "`"+a.FileName+"`")
	}
	if len(details) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(details, "; "))
	}
	sb.WriteString("\n")

	for _, child := range nd.Children {
		writeOutline(sb, child, depth+1)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// This is used for generating CSS variable names from node names.
// Special characters are removed, and spaces/underscores/slashes are replaced with hyphens.
func toKebabCase(s string) string {
	s = strings.ToLower(s)

	var result strings.Builder
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			result.WriteRune(r)
		case r == ' ' || r == '_' || r == '/':
			result.WriteRune('-')
		}
	}

	return result.String()
}
