// Package plain converts layout trees to and from a flat JSON form.
//
// The plain form is the interchange format: every node becomes a generic
// {type, id, label, position, children, metadata} object, so consumers in
// other languages can walk the tree without knowing the Go variant types.
// Conversion is lossless: ToTree(FromTree(t)) reconstructs t exactly,
// including validation warnings.
package plain

// Tree is the serializable top-level form of a layout tree.
type Tree struct {
	Version   string    `json:"version"`
	Code      string    `json:"raw_code,omitempty"`
	NRows     int       `json:"nrows"`
	NCols     int       `json:"ncols"`
	RowRatios []float64 `json:"row_ratios,omitempty"`
	ColRatios []float64 `json:"col_ratios,omitempty"`
	Root      *Node     `json:"root"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// Node is the serializable form of any layout node. Fields that do not
// apply to a node's type are omitted; variant-specific data (grid extents,
// inset bounds, sub-panel grid shapes) lives in Metadata.
type Node struct {
	Type     string         `json:"node_type"`
	ID       string         `json:"id"`
	Label    string         `json:"label,omitempty"`
	Row      *int           `json:"row,omitempty"`
	Col      *int           `json:"col,omitempty"`
	RowSpan  int            `json:"rowspan,omitempty"`
	ColSpan  int            `json:"colspan,omitempty"`
	Parent   string         `json:"parent,omitempty"`
	Children []*Node        `json:"children,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
