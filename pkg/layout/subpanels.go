package layout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/figgrid/figgrid/pkg/errors"
)

// subGridShapeRe matches the grid form of a sub-panel annotation, e.g. "2x3".
var subGridShapeRe = regexp.MustCompile(`^([0-9]+)x([0-9]+)$`)

// extractSubPanels removes every letter[items] annotation from code, leaving
// the bare label in place for the grid parser, and records one sub-panel
// spec per annotated label in ctx. Section constructs have already been
// replaced by placeholders at this point, so any remaining label-adjacent
// bracket is a sub-panel annotation.
func extractSubPanels(code string, ctx *parseContext) (string, error) {
	runes := []rune(code)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); {
		r := runes[i]
		if !isLabel(r) || i+1 >= len(runes) || runes[i+1] != '[' {
			out = append(out, r)
			i++
			continue
		}

		j := i + 2
		for j < len(runes) && runes[j] != ']' {
			j++
		}
		if j == len(runes) {
			return "", errors.New(errors.ErrCodeSyntaxUnterminated,
				"sub-panel annotation on %q has no matching ']'", string(r))
		}

		spec, err := parseSubPanelItems(r, string(runes[i+2:j]))
		if err != nil {
			return "", err
		}
		ctx.subPanels[r] = spec

		out = append(out, r)
		i = j + 1
	}

	return string(out), nil
}

// parseSubPanelItems interprets the bracket content of a sub-panel
// annotation: either a RxC grid shape or a non-empty comma-separated list of
// item names. Anything else is a syntax error.
func parseSubPanelItems(label rune, items string) (subPanelSpec, error) {
	if m := subGridShapeRe.FindStringSubmatch(items); m != nil {
		rows, _ := strconv.Atoi(m[1])
		cols, _ := strconv.Atoi(m[2])
		if rows < 1 || cols < 1 {
			return subPanelSpec{}, errors.New(errors.ErrCodeSyntaxInvalidSubGrid,
				"sub-panel grid for %q must have positive extent, got %dx%d", string(label), rows, cols)
		}
		return subPanelSpec{grid: true, rows: rows, cols: cols}, nil
	}

	if strings.TrimSpace(items) == "" {
		return subPanelSpec{}, errors.New(errors.ErrCodeSyntaxInvalidSubGrid,
			"sub-panel annotation on %q is empty", string(label))
	}

	parts := strings.Split(items, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return subPanelSpec{}, errors.New(errors.ErrCodeSyntaxInvalidSubGrid,
				"sub-panel list for %q has an empty item", string(label))
		}
		names[i] = p
	}
	return subPanelSpec{items: names, rows: 1, cols: len(names)}, nil
}
