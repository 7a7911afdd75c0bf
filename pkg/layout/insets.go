package layout

import (
	"strconv"
	"strings"

	"github.com/figgrid/figgrid/pkg/errors"
)

// extractInsets removes inset annotations from code and records them in ctx,
// preserving declaration order (first declared = index 0). A label may carry
// one or more consecutive {x,y,w,h} quadruples, or a single <nested-code>
// grid inset. The bare label stays in place for the grid parser.
//
// Runs after sub-panel extraction, so "a[i,ii]{0.6,0.6,0.3,0.3}" has already
// been reduced to "a{0.6,0.6,0.3,0.3}" by the time this stage sees it.
func extractInsets(code string, ctx *parseContext) (string, error) {
	runes := []rune(code)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); {
		r := runes[i]
		if !isLabel(r) || i+1 >= len(runes) || (runes[i+1] != '{' && runes[i+1] != '<') {
			out = append(out, r)
			i++
			continue
		}
		out = append(out, r)
		i++

		if runes[i] == '<' {
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j == len(runes) {
				return "", errors.New(errors.ErrCodeSyntaxUnterminated,
					"grid inset on %q has no matching '>'", string(r))
			}
			ctx.insets[r] = append(ctx.insets[r], insetSpec{
				kind: InsetGrid,
				code: string(runes[i+1 : j]),
			})
			i = j + 1
			continue
		}

		// One or more consecutive {x,y,w,h} groups.
		for i < len(runes) && runes[i] == '{' {
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j == len(runes) {
				return "", errors.New(errors.ErrCodeSyntaxUnterminated,
					"inset on %q has no matching '}'", string(r))
			}
			b, err := parseInsetBounds(r, string(runes[i+1:j]))
			if err != nil {
				return "", err
			}
			ctx.insets[r] = append(ctx.insets[r], insetSpec{kind: InsetAbsolute, bounds: b})
			i = j + 1
		}
	}

	return string(out), nil
}

// parseInsetBounds parses the "x,y,w,h" body of an absolute inset.
func parseInsetBounds(label rune, body string) (Bounds, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return Bounds{}, errors.New(errors.ErrCodeSyntaxInvalidInset,
			"inset on %q needs four comma-separated bounds, got %d", string(label), len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, errors.Wrap(errors.ErrCodeSyntaxInvalidInset, err,
				"inset bound %q on %q is not a number", strings.TrimSpace(p), string(label))
		}
		vals[i] = v
	}
	return Bounds{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}
