package figma

import (
	"reflect"
	"testing"
)

func TestWalk(t *testing.T) {
	var (
		ids    []string
		depths []int
	)
	Walk(sampleDocument(), func(n Node, depth int) bool {
		ids = append(ids, n.ID)
		depths = append(depths, depth)
		return n.ID != "0:1"
	})

	if want := []string{"0:0", "0:1", "0:2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Walk() visited %v, want %v", ids, want)
	}
	if want := []int{0, 1, 1}; !reflect.DeepEqual(depths, want) {
		t.Errorf("Walk() depths = %v, want %v", depths, want)
	}
}

func TestFind(t *testing.T) {
	root := sampleDocument()

	tests := []struct {
		id       string
		wantName string
		wantType string
	}{
		{id: "0:0", wantName: "Document", wantType: "document"},
		{id: "0:2", wantName: "Empty page", wantType: "canvas"},
		{id: "3:3", wantName: "Title", wantType: "text"},
		{id: "3:6", wantName: "Hexagon", wantType: "polygon"},
		{id: "9:9"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			n, ok := Find(root, tt.id)
			if ok != (tt.wantName != "") {
				t.Fatalf("Find(%q) ok = %v", tt.id, ok)
			}
			if n.Name != tt.wantName || n.Type() != tt.wantType {
				t.Errorf("Find(%q) = %s (%s), want %s (%s)", tt.id, n.Name, n.Type(), tt.wantName, tt.wantType)
			}
		})
	}
}
