package plain

import (
	"reflect"
	"strings"
	"testing"

	"github.com/figgrid/figgrid/pkg/errors"
	"github.com/figgrid/figgrid/pkg/layout"
)

// fullCode exercises every grammar construct: a section with sub-panels, a
// grid inset, an absolute inset, and a spanning panel.
const fullCode = "[top:a[i,ii]b]c<xy/zw>/d{0.2,0.2,0.3,0.3}d"

func TestRoundTrip(t *testing.T) {
	tree, err := layout.Parse(fullCode)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	back, err := ToTree(FromTree(tree))
	if err != nil {
		t.Fatalf("ToTree() error: %v", err)
	}
	if !reflect.DeepEqual(tree, back) {
		t.Errorf("round trip diverged:\n got %#v\nwant %#v", back, tree)
	}
}

func TestRoundTripJSON(t *testing.T) {
	tree, err := layout.Parse(fullCode)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(tree, back) {
		t.Errorf("JSON round trip diverged:\n got %#v\nwant %#v", back, tree)
	}
}

func TestRoundTripWarnings(t *testing.T) {
	tree, err := layout.Parse("a{0.8,0.8,0.5,0.5}")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(tree.Warnings) == 0 {
		t.Fatal("expected a validation warning to carry through")
	}

	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(tree.Warnings, back.Warnings) {
		t.Errorf("warnings = %v, want %v", back.Warnings, tree.Warnings)
	}
}

func TestRoundTripExplicit(t *testing.T) {
	tree, err := layout.FromExplicit(2, 2, []layout.PanelSpec{
		{Name: "a", Row: 0, Col: 0, ColSpan: 2},
		{Name: "b", Row: 1, Col: 0},
		{Name: "c", Row: 1, Col: 1},
	})
	if err != nil {
		t.Fatalf("FromExplicit() error: %v", err)
	}

	back, err := ToTree(FromTree(tree))
	if err != nil {
		t.Fatalf("ToTree() error: %v", err)
	}
	if !reflect.DeepEqual(tree, back) {
		t.Errorf("round trip diverged:\n got %#v\nwant %#v", back, tree)
	}
}

func TestMarshalWireFormat(t *testing.T) {
	tree, err := layout.Parse(fullCode)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	for _, key := range []string{
		`"node_type"`,
		`"sub_panel_grid"`,
		`"grid_code"`,
		`"bounds"`,
		`"row_ratios"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshal() output missing %s", key)
		}
	}
}

func TestFromTreeDoesNotShareState(t *testing.T) {
	tree, err := layout.Parse("ab")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	pt := FromTree(tree)
	pt.ColRatios[0] = 99

	if tree.ColRatios[0] == 99 {
		t.Error("FromTree() should copy ratio slices, not alias them")
	}
}

func TestToTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		pt   *Tree
	}{
		{"nil root", &Tree{Version: "1.0"}},
		{"non-root root", &Tree{Root: &Node{Type: "panel", ID: "a"}}},
		{"unknown type", &Tree{Root: &Node{Type: "root", ID: "root",
			Children: []*Node{{Type: "mystery", ID: "m"}}}}},
		{"bad bounds", &Tree{Root: &Node{Type: "root", ID: "root",
			Children: []*Node{{Type: "panel", ID: "a",
				Children: []*Node{{Type: "inset", ID: "a_inset_0", Parent: "a",
					Metadata: map[string]any{"type": "absolute", "bounds": []any{0.1, 0.2}}}}}}}}},
		{"panel child kind", &Tree{Root: &Node{Type: "root", ID: "root",
			Children: []*Node{{Type: "panel", ID: "a",
				Children: []*Node{{Type: "panel", ID: "b"}}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToTree(tt.pt)
			if err == nil {
				t.Fatal("ToTree() should fail")
			}
			if got := errors.GetCode(err); got != errors.ErrCodeInvalidPlain {
				t.Errorf("error code = %v, want %v", got, errors.ErrCodeInvalidPlain)
			}
		})
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	if err == nil {
		t.Fatal("Unmarshal() should reject malformed JSON")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidPlain {
		t.Errorf("error code = %v, want %v", got, errors.ErrCodeInvalidPlain)
	}
}
