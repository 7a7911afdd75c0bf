package layout

import (
	"slices"

	"github.com/figgrid/figgrid/pkg/errors"
)

// gridLevel is the transient Grid-kind value used while assembling one
// nesting level: the grid extent plus one Panel per distinct label, in
// sorted label order. Placeholder panels are swapped for Section subtrees by
// the tree builder; a gridLevel never appears in a finished tree.
type gridLevel struct {
	rows      int
	cols      int
	rowRatios []float64
	colRatios []float64
	items     []Node
}

type cellPos struct {
	row int
	col int
}

// parseGrid scans the fully cleaned character grid, discovers each distinct
// label's occupied cells, and turns each label into a Panel at its bounding
// rectangle. A label whose occupied-cell count differs from its rectangle's
// area does not form a filled rectangle and is a syntax error naming the
// label, the actual count, and the expected size.
func parseGrid(code string, ctx *parseContext) (*gridLevel, error) {
	grid, err := normalize(code)
	if err != nil {
		return nil, err
	}
	nrows := len(grid)
	ncols := len(grid[0])

	positions := make(map[rune][]cellPos)
	for r, row := range grid {
		for c, ch := range row {
			if isEmptyCell(ch) {
				continue
			}
			positions[ch] = append(positions[ch], cellPos{row: r, col: c})
		}
	}

	lv := &gridLevel{
		rows:      nrows,
		cols:      ncols,
		rowRatios: uniformRatios(nrows),
		colRatios: uniformRatios(ncols),
	}

	// Sorted label order keeps output deterministic.
	labels := make([]rune, 0, len(positions))
	for label := range positions {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	for _, label := range labels {
		cells := positions[label]
		minR, maxR := cells[0].row, cells[0].row
		minC, maxC := cells[0].col, cells[0].col
		for _, p := range cells[1:] {
			minR = min(minR, p.row)
			maxR = max(maxR, p.row)
			minC = min(minC, p.col)
			maxC = max(maxC, p.col)
		}

		cell := Cell{
			Row:     minR,
			Col:     minC,
			RowSpan: maxR - minR + 1,
			ColSpan: maxC - minC + 1,
		}
		if expected := cell.RowSpan * cell.ColSpan; len(cells) != expected {
			return nil, errors.New(errors.ErrCodeSyntaxNotRectangular,
				"panel %q does not form a filled rectangle: found %d cells but expected %d for rows [%d:%d] cols [%d:%d]",
				ctx.displayName(label), len(cells), expected, minR, maxR+1, minC, maxC+1)
		}

		name := string(label)
		lv.items = append(lv.items, &Panel{
			Name:  name,
			Label: defaultPanelLabel(name),
			Cell:  cell,
		})
	}

	return lv, nil
}
