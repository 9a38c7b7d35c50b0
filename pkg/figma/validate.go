package figma

import (
	"fmt"
	"strings"
)

// ViolationKind classifies a rule a structurally valid tree can still break.
type ViolationKind int

const (
	// Containment means a child is not allowed under its parent's variant.
	Containment ViolationKind = iota + 1
	// DuplicateID means a node id repeats within one document.
	DuplicateID
	// MissingVariant means a node has no variant.
	MissingVariant
	// UnknownStyle means a shape refers to a style the file does not declare.
	UnknownStyle
	// ExtraAnnotations means a shape carries more than one annotation.
	ExtraAnnotations
)

func (k ViolationKind) String() string {
	switch k {
	case Containment:
		return "containment"
	case DuplicateID:
		return "duplicate id"
	case MissingVariant:
		return "missing variant"
	case UnknownStyle:
		return "unknown style"
	case ExtraAnnotations:
		return "extra annotations"
	default:
		return "violation"
	}
}

// Violation is one broken tree rule.
type Violation struct {
	Kind   ViolationKind
	NodeID string
	// Path lists the ids from the root down to the offending node, joined by "/".
	Path    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Kind, v.Path, v.Message)
}

// ValidationError aggregates the violations of a tree for callers that
// treat any violation as fatal.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "figma: invalid tree: " + e.Violations[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "figma: invalid tree: %d violations", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Err returns a *ValidationError holding vs, or nil when vs is empty.
func Err(vs []Violation) error {
	if len(vs) == 0 {
		return nil
	}
	return &ValidationError{Violations: vs}
}

// Validate walks the tree under root depth-first and reports every
// containment violation and every repeated node id. A document may only
// contain canvases and a canvas may only contain shapes.
func Validate(root Node) []Violation {
	w := &walker{seen: make(map[string]string)}
	w.walk(root, nil, "")
	return w.out
}

// ValidateFile validates f.Document like Validate and additionally reports
// style references missing from f.Styles and shapes with more than one
// annotation.
func ValidateFile(f File) []Violation {
	w := &walker{seen: make(map[string]string), styles: f.Styles, checkShapes: true}
	w.walk(f.Document, nil, "")
	return w.out
}

type walker struct {
	seen        map[string]string // id -> path of first occurrence
	styles      map[string]Style
	checkShapes bool
	out         []Violation
}

func (w *walker) report(kind ViolationKind, n Node, path, format string, args ...any) {
	w.out = append(w.out, Violation{Kind: kind, NodeID: n.ID, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (w *walker) walk(n Node, parent NodeVariant, parentPath string) {
	path := n.ID
	if parentPath != "" {
		path = parentPath + "/" + n.ID
	}

	if first, ok := w.seen[n.ID]; ok {
		w.report(DuplicateID, n, path, "id %q already used at %s", n.ID, first)
	} else {
		w.seen[n.ID] = path
	}

	if n.Variant == nil {
		w.report(MissingVariant, n, path, "node %q has no variant", n.Name)
		return
	}

	switch parent.(type) {
	case DocumentNode:
		if _, ok := n.Variant.(CanvasNode); !ok {
			w.report(Containment, n, path, "document child must be a canvas, got %s", Tag(n.Variant))
		}
	case CanvasNode:
		if _, ok := n.Variant.(ShapeNode); !ok {
			w.report(Containment, n, path, "canvas child must be a shape, got %s", Tag(n.Variant))
		}
	}

	if s, ok := n.Variant.(ShapeNode); ok && w.checkShapes {
		w.checkShape(n, s.Attributes(), path)
	}

	for _, c := range n.Children() {
		w.walk(c, n.Variant, path)
	}
}

func (w *walker) checkShape(n Node, attrs ShapeAttributes, path string) {
	for _, kind := range []StyleType{StyleFill, StyleText, StyleEffect, StyleGrid} {
		id, ok := attrs.Styles[kind]
		if !ok {
			continue
		}
		if _, ok := w.styles[id]; !ok {
			w.report(UnknownStyle, n, path, "%s style %q is not declared", kind, id)
		}
	}
	if len(attrs.Annotations) > 1 {
		w.report(ExtraAnnotations, n, path, "%d annotations, at most one is meaningful", len(attrs.Annotations))
	}
}
