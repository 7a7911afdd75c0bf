package layout

import (
	"strings"

	"github.com/figgrid/figgrid/pkg/errors"
)

// normalize cleans a residual layout string (annotations already extracted)
// into an equal-width character grid.
//
// The steps, in order:
//  1. Treat '/' and newline as equivalent row separators.
//  2. Strip each row of surrounding whitespace and drop fully blank rows.
//  3. Replace every character that is not a label, an empty-cell marker, or
//     a section placeholder with a space. This removes decorative border
//     glyphs ('+', '|', box drawing) without disturbing cell alignment
//     inside a row.
//  4. Pad every row on the right with spaces to the widest observed row.
func normalize(code string) ([][]rune, error) {
	code = strings.ReplaceAll(code, "/", "\n")

	var rows [][]rune
	width := 0
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := []rune(line)
		content := false
		for i, r := range cells {
			if !isLabel(r) && !isEmptyCell(r) && !isPlaceholder(r) {
				cells[i] = ' '
			}
			if cells[i] != ' ' {
				content = true
			}
		}
		// A row that was pure border decoration carries no cells. Rows of
		// explicit '.' markers still count as intentional empty rows.
		if !content {
			continue
		}
		rows = append(rows, cells)
		if len(cells) > width {
			width = len(cells)
		}
	}

	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeSyntaxEmpty, "layout grid is empty after cleaning")
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}
	return rows, nil
}
