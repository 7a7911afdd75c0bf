package layout

// Kind identifies the variant of a layout node. The set of kinds is closed:
// every node in a finished tree is one of Root, Section, Panel, SubPanel, or
// Inset. KindGrid exists only for the transient assembly value used while a
// single nesting level is being parsed and never appears in a returned tree.
type Kind string

const (
	KindRoot     Kind = "root"
	KindSection  Kind = "section"
	KindPanel    Kind = "panel"
	KindSubPanel Kind = "sub_panel"
	KindInset    Kind = "inset"
	KindGrid     Kind = "grid"
)

// InsetKind distinguishes the two ways an inset can be positioned over its
// panel: absolute fractional bounds, or a nested grid layout.
type InsetKind string

const (
	// InsetAbsolute positions the inset by fractional (x, y, w, h) bounds
	// relative to the panel, all within the unit square.
	InsetAbsolute InsetKind = "absolute"
	// InsetGrid fills the inset with its own nested grid layout, parsed
	// from a layout code through the regular pipeline.
	InsetGrid InsetKind = "grid"
)

// Cell is the rectangle a node occupies in its local grid: the top-level grid
// for panels and sections, a panel's sub-panel grid for sub-panels. Row and
// Col are the zero-based top-left origin; RowSpan and ColSpan are at least 1
// for every cell produced by the parser.
type Cell struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Overlaps reports whether the two rectangles share at least one grid cell.
// Two cells overlap when their half-open row intervals [Row, Row+RowSpan)
// intersect and their column intervals intersect.
func (c Cell) Overlaps(o Cell) bool {
	rowHit := c.Row < o.Row+o.RowSpan && o.Row < c.Row+c.RowSpan
	colHit := c.Col < o.Col+o.ColSpan && o.Col < c.Col+c.ColSpan
	return rowHit && colHit
}

// Bounds are fractional inset bounds relative to the owning panel's region.
// X and Y locate the lower-left corner, W and H the size; a valid inset keeps
// the whole rectangle inside the unit square.
type Bounds struct {
	X float64
	Y float64
	W float64
	H float64
}

// GridShape is the declared row/column shape of a panel's sub-panel grid.
type GridShape struct {
	Rows int
	Cols int
}

// Node is the sealed interface implemented by every layout tree variant.
// Each variant carries only the fields that make sense for its kind, so
// invalid combinations (a sub-panel owning a sub-panel grid, an inset with a
// colspan) are unrepresentable. Use the package-level helpers NodeID, KindOf,
// ChildrenOf, Walk, and Find for generic traversal.
type Node interface {
	node()
}

// Root is the top of every layout tree. Its items are the panels and
// sections of the top-level grid, in sorted label order.
type Root struct {
	Items []Node // *Panel or *Section
}

// Section is a named, independently parsed sub-layout occupying one
// macro-cell of the enclosing grid. Its Cell is expressed in the enclosing
// grid; Rows, Cols, and the ratio slices describe its own internal grid.
type Section struct {
	Name      string
	Label     string // display label derived from Name ("tumor_panels" → "Tumor Panels")
	Cell      Cell
	Rows      int
	Cols      int
	RowRatios []float64
	ColRatios []float64
	Items     []Node // *Panel or *Section
}

// Panel is a rectangular region of its local grid, identified by a single
// label character, the atomic unit a renderer fills with content. A panel
// that declared sub-panels carries the declared grid shape in SubGrid.
type Panel struct {
	Name    string
	Label   string // display label, defaults to the upper-cased name
	Cell    Cell
	SubGrid *GridShape  // nil unless the panel declared sub-panels
	Subs    []*SubPanel // declaration order
	Insets  []*Inset    // declaration order
}

// SubPanel is a child region inside its parent panel's own sub-panel grid.
// Its Row and Col are local to that grid, not the top-level grid, and its
// span is always a single cell.
type SubPanel struct {
	ID     string // dotted id such as "a.ii" or "a.3"
	Label  string
	Row    int
	Col    int
	Parent string // owning panel id, a weak back-reference for lookup only
}

// Inset is a smaller region floating over its panel's content. Absolute
// insets carry Bounds; grid insets carry their own grid extent, the raw
// nested layout code, and the parsed items of that nested grid.
type Inset struct {
	ID     string // generated id such as "a_inset_0"
	Label  string
	Parent string // owning panel id, a weak back-reference for lookup only
	Kind   InsetKind

	// Absolute insets only.
	Bounds Bounds

	// Grid insets only.
	Rows  int
	Cols  int
	Code  string // raw nested layout code, retained for serialization
	Items []Node
}

func (*Root) node()     {}
func (*Section) node()  {}
func (*Panel) node()    {}
func (*SubPanel) node() {}
func (*Inset) node()    {}

// NodeID returns the unique identifier of a node: "root" for the root,
// the name for sections and panels, and the generated id for sub-panels
// and insets.
func NodeID(n Node) string {
	switch v := n.(type) {
	case *Root:
		return "root"
	case *Section:
		return v.Name
	case *Panel:
		return v.Name
	case *SubPanel:
		return v.ID
	case *Inset:
		return v.ID
	}
	return ""
}

// KindOf returns the Kind tag of a node.
func KindOf(n Node) Kind {
	switch n.(type) {
	case *Root:
		return KindRoot
	case *Section:
		return KindSection
	case *Panel:
		return KindPanel
	case *SubPanel:
		return KindSubPanel
	case *Inset:
		return KindInset
	}
	return ""
}

// ChildrenOf returns a node's ordered children. For panels the order is
// sub-panels first, then insets, each in declaration order; this is also the
// order the serializer emits.
func ChildrenOf(n Node) []Node {
	switch v := n.(type) {
	case *Root:
		return v.Items
	case *Section:
		return v.Items
	case *Panel:
		kids := make([]Node, 0, len(v.Subs)+len(v.Insets))
		for _, s := range v.Subs {
			kids = append(kids, s)
		}
		for _, in := range v.Insets {
			kids = append(kids, in)
		}
		return kids
	case *Inset:
		return v.Items
	}
	return nil
}

// Walk visits n and every descendant in depth-first pre-order.
func Walk(n Node, visit func(Node)) {
	visit(n)
	for _, c := range ChildrenOf(n) {
		Walk(c, visit)
	}
}

// Find returns the first node in n's subtree whose id equals id, searching
// depth-first, or nil if no such node exists. Expected tree sizes are tens of
// panels, so no index is kept.
func Find(n Node, id string) Node {
	if NodeID(n) == id {
		return n
	}
	for _, c := range ChildrenOf(n) {
		if hit := Find(c, id); hit != nil {
			return hit
		}
	}
	return nil
}
