// Package pkg provides the core libraries for figgrid layout parsing.
//
// # Overview
//
// Figgrid turns compact textual layout codes such as "aab/aac/ddd" into a
// validated tree of figure panels. The pkg directory is organized into four
// areas:
//
//  1. [layout] - The parser, tree model, and validator
//  2. [plain] - JSON serialization of layout trees
//  3. [config] - TOML parser profiles for shared policies
//  4. [errors] - Structured error codes shared by all packages
//
// # Architecture
//
// The typical data flow through figgrid:
//
//	Layout code ("aab/aac/ddd")
//	         ↓
//	    [layout] package (extract annotations, parse grid, validate)
//	         ↓
//	    layout.Tree (panels, sections, sub-panels, insets)
//	         ↓
//	    [plain] package (JSON interchange form)
//
// # Quick Start
//
// Parse a code and serialize the result:
//
//	import (
//	    "github.com/figgrid/figgrid/pkg/layout"
//	    "github.com/figgrid/figgrid/pkg/plain"
//	)
//
//	// 1. Parse the layout code
//	tree, err := layout.Parse("aab/aac/ddd")
//	if err != nil {
//	    // syntax errors are always fatal
//	}
//
//	// 2. Inspect warnings (strict mode turns these into errors)
//	for _, w := range tree.Warnings {
//	    fmt.Println("warning:", w)
//	}
//
//	// 3. Serialize for another tool
//	data, err := plain.Marshal(tree)
package pkg
