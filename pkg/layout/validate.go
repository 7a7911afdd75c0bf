package layout

import (
	"fmt"
	"strings"
)

// Policy selects which invariants Validate checks. The zero value checks
// nothing; use DefaultPolicy for the standard set.
type Policy struct {
	// CheckOverlaps reports sibling panels whose rectangles share grid
	// cells. On by default.
	CheckOverlaps bool

	// CheckGaps reports grid cells not covered by any panel or section.
	// Off by default: sparse layouts with intentional whitespace are
	// common, so gap detection is an opt-in caller policy.
	CheckGaps bool

	// CheckSubPanels reports sub-panel grids that overflow their declared
	// shape or stack two sub-panels on one cell. On by default.
	CheckSubPanels bool

	// CheckInsets reports absolute insets whose bounds leave the unit
	// square. On by default.
	CheckInsets bool
}

// DefaultPolicy returns the standard validation policy: overlap, sub-panel,
// and inset checks on, gap checking off.
func DefaultPolicy() Policy {
	return Policy{
		CheckOverlaps:  true,
		CheckSubPanels: true,
		CheckInsets:    true,
	}
}

// Validate checks tree-wide invariants and returns every violation found as
// a human-readable diagnostic, in check order. It never mutates the tree and
// never stops early, so one pass reports every issue at once; validating the
// same tree repeatedly, or from multiple goroutines, always yields the same
// result.
//
// The caller decides severity: treat a non-empty result as fatal (strict
// mode) or attach it to the tree as warnings (lenient mode, the parser's
// default).
func Validate(t *Tree, pol Policy) []string {
	var diags []string

	hasPanel := false
	if t.Root != nil {
		Walk(t.Root, func(n Node) {
			if _, ok := n.(*Panel); ok {
				hasPanel = true
			}
		})
	}
	if !hasPanel {
		diags = append(diags, "layout has no panels")
	}
	if t.NRows <= 0 || t.NCols <= 0 {
		diags = append(diags, fmt.Sprintf("invalid grid dimensions: %dx%d", t.NRows, t.NCols))
	}
	if t.Root == nil {
		return diags
	}

	diags = append(diags, checkDuplicateIDs(t.Root)...)

	if pol.CheckOverlaps {
		diags = append(diags, checkOverlaps(t.Root.Items)...)
	}
	if pol.CheckGaps {
		diags = append(diags, checkGaps(t.Root.Items, t.NRows, t.NCols)...)
	}
	if pol.CheckSubPanels {
		diags = append(diags, checkSubPanels(t.Root)...)
	}
	if pol.CheckInsets {
		diags = append(diags, checkInsets(t.Root)...)
	}

	return diags
}

// checkDuplicateIDs reports every id used by more than one node. Sections,
// panels, sub-panels, and insets share a single id namespace across the
// whole tree.
func checkDuplicateIDs(root *Root) []string {
	var diags []string
	seen := make(map[string]bool)
	Walk(root, func(n Node) {
		if _, ok := n.(*Root); ok {
			return
		}
		id := NodeID(n)
		if seen[id] {
			diags = append(diags, fmt.Sprintf("duplicate node id %q", id))
		}
		seen[id] = true
	})
	return diags
}

// spanning is a rectangle-bearing sibling: a panel or section in some grid.
type spanning struct {
	id   string
	cell Cell
}

// levelRects collects the rectangles of one sibling group.
func levelRects(items []Node) []spanning {
	var rects []spanning
	for _, item := range items {
		switch v := item.(type) {
		case *Panel:
			rects = append(rects, spanning{id: v.Name, cell: v.Cell})
		case *Section:
			rects = append(rects, spanning{id: v.Name, cell: v.Cell})
		}
	}
	return rects
}

// checkOverlaps reports every pair of siblings whose rectangles intersect,
// then recurses into each section's own grid. Sections count as rectangles
// in their enclosing grid: a section overlapping a panel is just as wrong as
// two panels colliding.
func checkOverlaps(items []Node) []string {
	var diags []string
	rects := levelRects(items)
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].cell.Overlaps(rects[j].cell) {
				diags = append(diags, fmt.Sprintf("panels %q and %q overlap in the grid", rects[i].id, rects[j].id))
			}
		}
	}
	for _, item := range items {
		if sec, ok := item.(*Section); ok {
			diags = append(diags, checkOverlaps(sec.Items)...)
		}
	}
	return diags
}

// checkGaps marks an occupancy grid from every sibling rectangle and reports
// unassigned cells, recursing into each section's own grid. Out-of-range
// rectangles are clipped; the overlap and bounds checks own those problems.
func checkGaps(items []Node, nrows, ncols int) []string {
	var diags []string
	if nrows <= 0 || ncols <= 0 {
		return diags
	}

	occupied := make([][]bool, nrows)
	for i := range occupied {
		occupied[i] = make([]bool, ncols)
	}
	for _, s := range levelRects(items) {
		for r := s.cell.Row; r < s.cell.Row+s.cell.RowSpan; r++ {
			for c := s.cell.Col; c < s.cell.Col+s.cell.ColSpan; c++ {
				if r >= 0 && r < nrows && c >= 0 && c < ncols {
					occupied[r][c] = true
				}
			}
		}
	}

	var gaps []string
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			if !occupied[r][c] {
				gaps = append(gaps, fmt.Sprintf("(%d,%d)", r, c))
			}
		}
	}
	if len(gaps) > 0 {
		// Cap the listing so a mostly-empty grid stays readable.
		shown := gaps
		if len(shown) > 5 {
			shown = shown[:5]
		}
		diags = append(diags, fmt.Sprintf("unassigned grid cells: %s", strings.Join(shown, ", ")))
	}

	for _, item := range items {
		if sec, ok := item.(*Section); ok {
			diags = append(diags, checkGaps(sec.Items, sec.Rows, sec.Cols)...)
		}
	}
	return diags
}

// checkSubPanels verifies, for every panel that owns sub-panels, that the
// declared grid shape can hold them, that each sub-panel lies inside that
// shape, and that no two sub-panels share a cell.
func checkSubPanels(root *Root) []string {
	var diags []string
	Walk(root, func(n Node) {
		p, ok := n.(*Panel)
		if !ok || len(p.Subs) == 0 {
			return
		}

		shape := GridShape{Rows: 1, Cols: len(p.Subs)}
		if p.SubGrid != nil {
			shape = *p.SubGrid
		}
		if capacity := shape.Rows * shape.Cols; len(p.Subs) > capacity {
			diags = append(diags, fmt.Sprintf("panel %q has %d sub-panels but its %dx%d grid only fits %d",
				p.Name, len(p.Subs), shape.Rows, shape.Cols, capacity))
		}

		taken := make(map[cellPos]bool)
		for _, sp := range p.Subs {
			if sp.Row < 0 || sp.Row >= shape.Rows || sp.Col < 0 || sp.Col >= shape.Cols {
				diags = append(diags, fmt.Sprintf("sub-panel %q lies outside panel %q's %dx%d grid",
					sp.ID, p.Name, shape.Rows, shape.Cols))
			}
			pos := cellPos{row: sp.Row, col: sp.Col}
			if taken[pos] {
				diags = append(diags, fmt.Sprintf("panel %q has overlapping sub-panels at (%d,%d)", p.Name, sp.Row, sp.Col))
			}
			taken[pos] = true
		}
	})
	return diags
}

// checkInsets verifies absolute inset bounds: position at or above zero,
// size inside (0, 1], and the whole rectangle within the unit square. Each
// violated rule yields one diagnostic, so an inset with x+w > 1 and y+h > 1
// still reports a single out-of-bounds diagnostic.
func checkInsets(root *Root) []string {
	var diags []string
	Walk(root, func(n Node) {
		p, ok := n.(*Panel)
		if !ok {
			return
		}
		for _, in := range p.Insets {
			if in.Kind != InsetAbsolute {
				continue
			}
			b := in.Bounds
			if b.X < 0 || b.Y < 0 {
				diags = append(diags, fmt.Sprintf("inset %q in panel %q has a negative position (%g, %g)",
					in.ID, p.Name, b.X, b.Y))
			}
			if b.W <= 0 || b.W > 1 || b.H <= 0 || b.H > 1 {
				diags = append(diags, fmt.Sprintf("inset %q in panel %q has an invalid size (%g, %g)",
					in.ID, p.Name, b.W, b.H))
			}
			if b.X+b.W > 1 || b.Y+b.H > 1 {
				diags = append(diags, fmt.Sprintf("inset %q in panel %q extends outside its panel", in.ID, p.Name))
			}
		}
	})
	return diags
}
