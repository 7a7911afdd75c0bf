package layout

import (
	"unicode"

	"github.com/figgrid/figgrid/pkg/errors"
)

// extractSections replaces every well-formed [name:content] construct in
// code with a single placeholder rune and records the deferred section in
// ctx. The matching closing bracket is found with an explicit depth counter,
// so sections nest to arbitrary depth; nested constructs stay inside the
// recorded content and are handled when the section is parsed recursively.
//
// A '[' that does not open a section (no colon before a nested bracket, or a
// name that does not start with a letter) is left untouched; the sub-panel
// extractor or the normalizer deals with it later. A valid opener with no
// matching ']' is a syntax error naming the position.
func extractSections(code string, ctx *parseContext) (string, error) {
	runes := []rune(code)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); {
		if runes[i] != '[' {
			out = append(out, runes[i])
			i++
			continue
		}

		name, contentStart, ok := sectionOpener(runes, i)
		if !ok {
			out = append(out, runes[i])
			i++
			continue
		}

		depth := 1
		j := contentStart
		for j < len(runes) && depth > 0 {
			switch runes[j] {
			case '[':
				depth++
			case ']':
				depth--
			}
			j++
		}
		if depth != 0 {
			return "", errors.New(errors.ErrCodeSyntaxUnterminated,
				"section %q opened at position %d has no matching ']'", name, i)
		}

		ph := ctx.placeholder()
		ctx.sections[ph] = sectionDef{name: name, content: string(runes[contentStart : j-1])}
		out = append(out, ph)
		i = j
	}

	return string(out), nil
}

// sectionOpener checks whether the '[' at position i opens a section. That
// requires a ':' before any nested '[' or ']', preceded by a name that
// starts with a letter and contains only letters, digits, and underscores.
// On success it returns the name and the index just past the colon.
func sectionOpener(runes []rune, i int) (name string, contentStart int, ok bool) {
	j := i + 1
	for j < len(runes) {
		r := runes[j]
		if r == ':' {
			break
		}
		if r == '[' || r == ']' {
			return "", 0, false
		}
		j++
	}
	if j >= len(runes) || j == i+1 {
		return "", 0, false
	}

	candidate := runes[i+1 : j]
	if !unicode.IsLetter(candidate[0]) {
		return "", 0, false
	}
	for _, r := range candidate {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", 0, false
		}
	}
	return string(candidate), j + 1, true
}
