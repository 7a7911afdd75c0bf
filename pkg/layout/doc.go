// Package layout parses textual layout codes into a validated tree of
// figure panels.
//
// # Overview
//
// A layout code describes a rectangular grid of panels with single
// alphanumeric characters, one row per line (newlines and '/' are
// interchangeable):
//
//	aab
//	aac
//	ddd
//
// Here panel "a" spans a 2x2 block, "b" and "c" sit in the last column,
// and "d" fills the bottom row. Every panel must cover a solid rectangle;
// anything else is a syntax error. A '.' or space leaves a cell empty.
//
// On top of the grid, bracketed annotations attach structure to panels:
//
//	[name:...]    a named section whose body is a nested layout code
//	a[i,ii,iii]   sub-panels inside panel "a" (list or RxC grid form)
//	a{x,y,w,h}    an absolute inset positioned in panel-relative coordinates
//	a<.../...>    a grid inset whose body is a nested layout code
//
// # Basic Usage
//
// [Parse] runs the full pipeline and returns a [Tree]:
//
//	tree, err := layout.Parse("aab/aac/ddd")
//	if err != nil {
//		// syntax errors: non-rectangular panels, unbalanced brackets, ...
//	}
//	for _, id := range tree.PanelIDs() {
//		fmt.Println(id)
//	}
//
// Syntax errors are always fatal. Validation findings (overlaps, bad inset
// bounds, duplicate ids) are attached to [Tree.Warnings] by default; pass
// [Strict] to turn them into errors instead. [WithPolicy] selects which
// checks run and [WithLogger] routes pipeline tracing to a caller-supplied
// logger.
//
// Trees can also be built without a code via [FromExplicit], from a list of
// panel specs with explicit grid coordinates.
package layout
