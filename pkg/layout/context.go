package layout

import (
	"strings"
	"unicode"
)

// Section placeholders are drawn from the Unicode Private Use Area starting
// at U+E000. Labels are restricted to ASCII alphanumerics, so a user-chosen
// label can never collide with a placeholder.
const (
	placeholderBase  rune = 0xE000
	placeholderLimit rune = 0xF8FF
)

// parseContext holds the intermediate extractor results for one nesting
// level. A fresh context is created per level and threaded explicitly
// through the pipeline stages, so concurrent Parse calls never share
// mutable state.
type parseContext struct {
	sections  map[rune]sectionDef
	subPanels map[rune]subPanelSpec
	insets    map[rune][]insetSpec
	next      rune // next free placeholder
}

// sectionDef is a deferred section: its name and the raw content between the
// colon and the matching closing bracket, parsed later through the full
// pipeline.
type sectionDef struct {
	name    string
	content string
}

// subPanelSpec records one letter[...] annotation. Grid form declares a
// rows×cols sub-grid; list form declares named items laid out in one row.
type subPanelSpec struct {
	grid  bool
	rows  int
	cols  int
	items []string // list form only, original order
}

// insetSpec records one {x,y,w,h} or <nested-code> annotation.
type insetSpec struct {
	kind   InsetKind
	bounds Bounds // absolute only
	code   string // grid only
}

func newParseContext() *parseContext {
	return &parseContext{
		sections:  make(map[rune]sectionDef),
		subPanels: make(map[rune]subPanelSpec),
		insets:    make(map[rune][]insetSpec),
		next:      placeholderBase,
	}
}

// placeholder allocates the next free placeholder rune for a section.
func (ctx *parseContext) placeholder() rune {
	ph := ctx.next
	ctx.next++
	return ph
}

// displayName resolves a grid label to something a user can recognize in a
// diagnostic: the section name for placeholders, the literal character
// otherwise.
func (ctx *parseContext) displayName(label rune) string {
	if def, ok := ctx.sections[label]; ok {
		return def.name
	}
	return string(label)
}

// isLabel reports whether r is a legal panel label: a single ASCII
// alphanumeric character.
func isLabel(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isPlaceholder reports whether r is a reserved section placeholder.
func isPlaceholder(r rune) bool {
	return r >= placeholderBase && r <= placeholderLimit
}

// isEmptyCell reports whether r marks an unassigned grid cell.
func isEmptyCell(r rune) bool {
	return r == ' ' || r == '.'
}

// defaultPanelLabel derives a panel's display label from its id.
func defaultPanelLabel(name string) string {
	return strings.ToUpper(name)
}

// sectionLabel derives a section's display label from its name:
// underscores become spaces and each word is capitalized, so
// "tumor_panels" reads "Tumor Panels".
func sectionLabel(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
