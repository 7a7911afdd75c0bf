package plain

import (
	"encoding/json"

	"github.com/figgrid/figgrid/pkg/errors"
	"github.com/figgrid/figgrid/pkg/layout"
)

// FromTree converts a layout tree into its plain form. The input is never
// mutated; the result shares no pointers with it.
func FromTree(t *layout.Tree) *Tree {
	out := &Tree{
		Version:   t.Version,
		Code:      t.RawCode,
		NRows:     t.NRows,
		NCols:     t.NCols,
		RowRatios: copyFloats(t.RowRatios),
		ColRatios: copyFloats(t.ColRatios),
		Warnings:  copyStrings(t.Warnings),
	}
	if t.Root != nil {
		out.Root = fromNode(t.Root)
	}
	return out
}

// Marshal serializes a layout tree to indented JSON.
func Marshal(t *layout.Tree) ([]byte, error) {
	return json.MarshalIndent(FromTree(t), "", "  ")
}

// Unmarshal parses JSON produced by Marshal back into a layout tree.
func Unmarshal(data []byte) (*layout.Tree, error) {
	var pt Tree
	if err := json.Unmarshal(data, &pt); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlain, err, "malformed layout JSON")
	}
	return ToTree(&pt)
}

// ToTree reconstructs a layout tree from its plain form. It is the inverse
// of FromTree: for any tree t, ToTree(FromTree(t)) rebuilds t exactly.
func ToTree(pt *Tree) (*layout.Tree, error) {
	if pt.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidPlain, "plain tree has no root")
	}
	rootNode, err := toNode(pt.Root)
	if err != nil {
		return nil, err
	}
	root, ok := rootNode.(*layout.Root)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPlain, "plain tree root has node_type %q, want root", pt.Root.Type)
	}
	return &layout.Tree{
		Root:      root,
		NRows:     pt.NRows,
		NCols:     pt.NCols,
		RowRatios: copyFloats(pt.RowRatios),
		ColRatios: copyFloats(pt.ColRatios),
		RawCode:   pt.Code,
		Version:   pt.Version,
		Warnings:  copyStrings(pt.Warnings),
	}, nil
}

func fromNode(n layout.Node) *Node {
	switch v := n.(type) {
	case *layout.Root:
		return &Node{
			Type:     string(layout.KindRoot),
			ID:       "root",
			Children: fromItems(v.Items),
		}

	case *layout.Section:
		return &Node{
			Type:    string(layout.KindSection),
			ID:      v.Name,
			Label:   v.Label,
			Row:     intPtr(v.Cell.Row),
			Col:     intPtr(v.Cell.Col),
			RowSpan: v.Cell.RowSpan,
			ColSpan: v.Cell.ColSpan,
			Metadata: map[string]any{
				"nrows":      v.Rows,
				"ncols":      v.Cols,
				"row_ratios": copyFloats(v.RowRatios),
				"col_ratios": copyFloats(v.ColRatios),
			},
			Children: fromItems(v.Items),
		}

	case *layout.Panel:
		node := &Node{
			Type:    string(layout.KindPanel),
			ID:      v.Name,
			Label:   v.Label,
			Row:     intPtr(v.Cell.Row),
			Col:     intPtr(v.Cell.Col),
			RowSpan: v.Cell.RowSpan,
			ColSpan: v.Cell.ColSpan,
		}
		if v.SubGrid != nil {
			node.Metadata = map[string]any{
				"sub_panel_grid": map[string]any{
					"nrows": v.SubGrid.Rows,
					"ncols": v.SubGrid.Cols,
				},
			}
		}
		for _, sp := range v.Subs {
			node.Children = append(node.Children, fromNode(sp))
		}
		for _, in := range v.Insets {
			node.Children = append(node.Children, fromNode(in))
		}
		return node

	case *layout.SubPanel:
		return &Node{
			Type:   string(layout.KindSubPanel),
			ID:     v.ID,
			Label:  v.Label,
			Row:    intPtr(v.Row),
			Col:    intPtr(v.Col),
			Parent: v.Parent,
		}

	case *layout.Inset:
		node := &Node{
			Type:   string(layout.KindInset),
			ID:     v.ID,
			Label:  v.Label,
			Parent: v.Parent,
		}
		switch v.Kind {
		case layout.InsetAbsolute:
			node.Metadata = map[string]any{
				"type":   string(layout.InsetAbsolute),
				"bounds": []float64{v.Bounds.X, v.Bounds.Y, v.Bounds.W, v.Bounds.H},
			}
		case layout.InsetGrid:
			node.Metadata = map[string]any{
				"type":      string(layout.InsetGrid),
				"nrows":     v.Rows,
				"ncols":     v.Cols,
				"grid_code": v.Code,
			}
			node.Children = fromItems(v.Items)
		}
		return node
	}
	return nil
}

func fromItems(items []layout.Node) []*Node {
	var out []*Node
	for _, item := range items {
		out = append(out, fromNode(item))
	}
	return out
}

func toNode(pn *Node) (layout.Node, error) {
	switch layout.Kind(pn.Type) {
	case layout.KindRoot:
		items, err := toItems(pn.Children)
		if err != nil {
			return nil, err
		}
		return &layout.Root{Items: items}, nil

	case layout.KindSection:
		items, err := toItems(pn.Children)
		if err != nil {
			return nil, err
		}
		sec := &layout.Section{
			Name:      pn.ID,
			Label:     pn.Label,
			Cell:      toCell(pn),
			Rows:      metaInt(pn.Metadata, "nrows"),
			Cols:      metaInt(pn.Metadata, "ncols"),
			RowRatios: metaFloats(pn.Metadata, "row_ratios"),
			ColRatios: metaFloats(pn.Metadata, "col_ratios"),
			Items:     items,
		}
		return sec, nil

	case layout.KindPanel:
		p := &layout.Panel{
			Name:  pn.ID,
			Label: pn.Label,
			Cell:  toCell(pn),
		}
		if grid, ok := pn.Metadata["sub_panel_grid"]; ok {
			m, ok := grid.(map[string]any)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidPlain, "panel %q has a malformed sub_panel_grid", pn.ID)
			}
			p.SubGrid = &layout.GridShape{
				Rows: metaInt(m, "nrows"),
				Cols: metaInt(m, "ncols"),
			}
		}
		for _, child := range pn.Children {
			n, err := toNode(child)
			if err != nil {
				return nil, err
			}
			switch c := n.(type) {
			case *layout.SubPanel:
				p.Subs = append(p.Subs, c)
			case *layout.Inset:
				p.Insets = append(p.Insets, c)
			default:
				return nil, errors.New(errors.ErrCodeInvalidPlain,
					"panel %q has a %q child, want sub_panel or inset", pn.ID, child.Type)
			}
		}
		return p, nil

	case layout.KindSubPanel:
		return &layout.SubPanel{
			ID:     pn.ID,
			Label:  pn.Label,
			Row:    intVal(pn.Row),
			Col:    intVal(pn.Col),
			Parent: pn.Parent,
		}, nil

	case layout.KindInset:
		in := &layout.Inset{
			ID:     pn.ID,
			Label:  pn.Label,
			Parent: pn.Parent,
		}
		switch layout.InsetKind(metaString(pn.Metadata, "type")) {
		case layout.InsetAbsolute:
			in.Kind = layout.InsetAbsolute
			b := metaFloats(pn.Metadata, "bounds")
			if len(b) != 4 {
				return nil, errors.New(errors.ErrCodeInvalidPlain, "inset %q has %d bounds, want 4", pn.ID, len(b))
			}
			in.Bounds = layout.Bounds{X: b[0], Y: b[1], W: b[2], H: b[3]}
		case layout.InsetGrid:
			in.Kind = layout.InsetGrid
			in.Rows = metaInt(pn.Metadata, "nrows")
			in.Cols = metaInt(pn.Metadata, "ncols")
			in.Code = metaString(pn.Metadata, "grid_code")
			items, err := toItems(pn.Children)
			if err != nil {
				return nil, err
			}
			in.Items = items
		default:
			return nil, errors.New(errors.ErrCodeInvalidPlain, "inset %q has unknown type %q",
				pn.ID, metaString(pn.Metadata, "type"))
		}
		return in, nil
	}

	return nil, errors.New(errors.ErrCodeInvalidPlain, "unknown node_type %q", pn.Type)
}

func toItems(children []*Node) ([]layout.Node, error) {
	var items []layout.Node
	for _, child := range children {
		n, err := toNode(child)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, nil
}

func toCell(pn *Node) layout.Cell {
	c := layout.Cell{
		Row:     intVal(pn.Row),
		Col:     intVal(pn.Col),
		RowSpan: pn.RowSpan,
		ColSpan: pn.ColSpan,
	}
	// Omitted spans mean a single cell.
	if c.RowSpan == 0 {
		c.RowSpan = 1
	}
	if c.ColSpan == 0 {
		c.ColSpan = 1
	}
	return c
}

func intPtr(v int) *int { return &v }

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func copyFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// metaInt reads an integer metadata value, tolerating the float64 numbers
// encoding/json produces.
func metaInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func metaString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// metaFloats reads a float-slice metadata value, tolerating the []any form
// encoding/json produces.
func metaFloats(m map[string]any, key string) []float64 {
	switch v := m[key].(type) {
	case []float64:
		return copyFloats(v)
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			f, ok := item.(float64)
			if !ok {
				return nil
			}
			out = append(out, f)
		}
		return out
	}
	return nil
}
