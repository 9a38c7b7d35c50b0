package figma

import (
	"errors"
	"strings"
	"testing"
)

func canvas(id string, children ...Node) Node {
	return Node{ID: id, Name: "Page " + id, Visible: true, Variant: CanvasNode{Children: children, BackgroundColor: Color{A: 1}}}
}

func document(id string, children ...Node) Node {
	return Node{ID: id, Name: "Doc " + id, Visible: true, Variant: DocumentNode{Children: children}}
}

func vector(id string) Node {
	return Node{ID: id, Name: "Vector " + id, Visible: true, Variant: VectorNode{ShapeAttributes: sampleAttributes(0, 0, 1, 1)}}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		root      Node
		wantKinds []ViolationKind
		wantPaths []string
	}{
		{
			name: "valid tree",
			root: document("0", canvas("1", vector("2"), vector("3")), canvas("4")),
		},
		{
			name:      "shape under document",
			root:      document("0", canvas("1"), vector("2")),
			wantKinds: []ViolationKind{Containment},
			wantPaths: []string{"0/2"},
		},
		{
			name: "every violation is reported",
			root: document("0",
				vector("1"),
				canvas("2", vector("3"), document("4"), canvas("5")),
				document("6"),
			),
			wantKinds: []ViolationKind{Containment, Containment, Containment, Containment},
			wantPaths: []string{"0/1", "0/2/4", "0/2/5", "0/6"},
		},
		{
			name: "canvas nested in canvas still checks its children",
			root: document("0", canvas("1", canvas("2", document("3")))),
			wantKinds: []ViolationKind{Containment, Containment},
			wantPaths: []string{"0/1/2", "0/1/2/3"},
		},
		{
			name:      "duplicate ids",
			root:      document("0", canvas("1", vector("2"), vector("2")), canvas("1")),
			wantKinds: []ViolationKind{DuplicateID, DuplicateID},
			wantPaths: []string{"0/1/2", "0/1"},
		},
		{
			name:      "missing variant",
			root:      document("0", canvas("1", Node{ID: "2", Name: "Broken"})),
			wantKinds: []ViolationKind{MissingVariant},
			wantPaths: []string{"0/1/2"},
		},
		{
			name:      "shape root has no parent rule",
			root:      vector("9"),
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.root)
			if len(got) != len(tt.wantKinds) {
				t.Fatalf("Validate() returned %d violations, want %d: %v", len(got), len(tt.wantKinds), got)
			}
			for i, v := range got {
				if v.Kind != tt.wantKinds[i] {
					t.Errorf("violation %d kind = %v, want %v", i, v.Kind, tt.wantKinds[i])
				}
				if v.Path != tt.wantPaths[i] {
					t.Errorf("violation %d path = %q, want %q", i, v.Path, tt.wantPaths[i])
				}
				if !strings.HasSuffix(v.Path, v.NodeID) {
					t.Errorf("violation %d node id %q does not end its path %q", i, v.NodeID, v.Path)
				}
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	f := sampleFile()
	if got := ValidateFile(f); len(got) != 0 {
		t.Fatalf("ValidateFile(sample) = %v, want no violations", got)
	}

	delete(f.Styles, "S:shadow")
	page := f.Document.Children()[0]
	button := page.Children()[0]
	rect := button.Variant.(RectangleNode)
	rect.Annotations = append(rect.Annotations, Annotation{Label: "second"})
	button.Variant = rect
	page.Variant.(CanvasNode).Children[0] = button

	got := ValidateFile(f)
	if len(got) != 2 {
		t.Fatalf("ValidateFile() = %v, want 2 violations", got)
	}
	if got[0].Kind != UnknownStyle || got[0].NodeID != "3:1" || !strings.Contains(got[0].Message, "S:shadow") {
		t.Errorf("first violation = %v, want unknown style S:shadow on 3:1", got[0])
	}
	if got[1].Kind != ExtraAnnotations || got[1].Path != "0:0/0:1/3:1" {
		t.Errorf("second violation = %v, want extra annotations at 0:0/0:1/3:1", got[1])
	}

	if vs := Validate(f.Document); len(vs) != 0 {
		t.Errorf("Validate() reports file-level rules: %v", vs)
	}
}

func TestErr(t *testing.T) {
	if err := Err(nil); err != nil {
		t.Errorf("Err(nil) = %v, want nil", err)
	}

	err := Err(Validate(document("0", vector("1"), vector("2"))))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Err() = %T, want *ValidationError", err)
	}
	if len(verr.Violations) != 2 {
		t.Errorf("got %d violations, want 2", len(verr.Violations))
	}
	if !strings.Contains(err.Error(), "2 violations") {
		t.Errorf("Error() = %q", err.Error())
	}
}
