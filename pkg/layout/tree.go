package layout

import (
	"github.com/figgrid/figgrid/pkg/errors"
)

// TreeVersion is the serialization format tag stamped on every tree this
// version of the parser produces.
const TreeVersion = "1.0"

// Tree is a complete parsed layout: the root node plus the top-level grid
// extent, relative row/column sizing weights, and the original layout code.
//
// Trees are finished values. The parser never mutates a tree after validation
// has run, and the validator never mutates its input, so sharing a tree
// between goroutines requires no synchronization.
type Tree struct {
	Root  *Root
	NRows int
	NCols int

	// RowRatios and ColRatios are relative sizing weights, one positive
	// float per row/column. The parser emits uniform 1.0 weights; a
	// downstream renderer scales physical placement by them.
	RowRatios []float64
	ColRatios []float64

	// RawCode is the original input, retained for diagnostics only.
	RawCode string

	// Version is the serialization format tag.
	Version string

	// Warnings holds validation diagnostics in lenient mode. It is empty
	// for a tree that validated cleanly or was parsed with validation
	// disabled.
	Warnings []string
}

// Find returns the node with the given id anywhere in the tree, or nil.
func (t *Tree) Find(id string) Node {
	if t.Root == nil {
		return nil
	}
	return Find(t.Root, id)
}

// Panel returns the panel with the given id anywhere in the tree, or nil if
// no such node exists or the id names a different kind.
func (t *Tree) Panel(id string) *Panel {
	p, _ := t.Find(id).(*Panel)
	return p
}

// PanelIDs returns the ids of every panel and sub-panel in the tree,
// in depth-first document order. This is the id set a renderer fills
// with content.
func (t *Tree) PanelIDs() []string {
	var ids []string
	if t.Root == nil {
		return ids
	}
	Walk(t.Root, func(n Node) {
		switch KindOf(n) {
		case KindPanel, KindSubPanel:
			ids = append(ids, NodeID(n))
		}
	})
	return ids
}

// PanelSpec describes one panel for FromExplicit: a name, an optional
// display label, and a rectangle in the top-level grid. Zero spans default
// to 1.
type PanelSpec struct {
	Name    string
	Label   string
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// FromExplicit builds a tree from explicit panel rectangles instead of a
// layout code. This is the programmatic entry point for callers that already
// know their grid geometry. The resulting tree carries uniform row/column
// ratios and an empty RawCode; run Validate over it for the same invariant
// checks parsed trees get.
func FromExplicit(nrows, ncols int, specs []PanelSpec) (*Tree, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "grid extent must be positive, got %dx%d", nrows, ncols)
	}

	root := &Root{}
	for _, s := range specs {
		if s.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidSpec, "panel spec has no name")
		}
		if s.Row < 0 || s.Col < 0 {
			return nil, errors.New(errors.ErrCodeInvalidSpec, "panel %q has a negative origin (%d,%d)", s.Name, s.Row, s.Col)
		}
		cell := Cell{Row: s.Row, Col: s.Col, RowSpan: s.RowSpan, ColSpan: s.ColSpan}
		if cell.RowSpan == 0 {
			cell.RowSpan = 1
		}
		if cell.ColSpan == 0 {
			cell.ColSpan = 1
		}
		if cell.RowSpan < 0 || cell.ColSpan < 0 {
			return nil, errors.New(errors.ErrCodeInvalidSpec, "panel %q has a negative span", s.Name)
		}
		label := s.Label
		if label == "" {
			label = defaultPanelLabel(s.Name)
		}
		root.Items = append(root.Items, &Panel{Name: s.Name, Label: label, Cell: cell})
	}

	return &Tree{
		Root:      root,
		NRows:     nrows,
		NCols:     ncols,
		RowRatios: uniformRatios(nrows),
		ColRatios: uniformRatios(ncols),
		Version:   TreeVersion,
	}, nil
}

// uniformRatios returns n relative weights of 1.0.
func uniformRatios(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 1.0
	}
	return r
}
