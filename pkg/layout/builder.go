package layout

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/figgrid/figgrid/pkg/errors"
)

// buildLevel finishes one parsed nesting level in place: every placeholder
// panel is replaced by its fully parsed Section subtree (position copied
// from the placeholder), then sub-panel and inset descriptors are attached
// to their owning panels wherever those live in the level.
func buildLevel(lv *gridLevel, ctx *parseContext, o *options) error {
	for idx, item := range lv.items {
		p, ok := item.(*Panel)
		if !ok {
			continue
		}
		label := []rune(p.Name)[0]
		def, isSection := ctx.sections[label]
		if !isSection {
			continue
		}
		sec, err := buildSection(def, p.Cell, o)
		if err != nil {
			return err
		}
		lv.items[idx] = sec
	}

	// Attachment in sorted label order keeps output deterministic.
	for _, label := range slices.Sorted(maps.Keys(ctx.subPanels)) {
		p := findPanel(lv.items, string(label))
		if p == nil {
			if o.strict {
				return errors.New(errors.ErrCodeUnknownOwner,
					"sub-panel annotation names unknown panel %q", string(label))
			}
			o.logger.Warnf("dropping sub-panel annotation for unknown panel %q", string(label))
			continue
		}
		attachSubPanels(p, ctx.subPanels[label])
	}

	for _, label := range slices.Sorted(maps.Keys(ctx.insets)) {
		p := findPanel(lv.items, string(label))
		if p == nil {
			if o.strict {
				return errors.New(errors.ErrCodeUnknownOwner,
					"inset annotation names unknown panel %q", string(label))
			}
			o.logger.Warnf("dropping inset annotation for unknown panel %q", string(label))
			continue
		}
		if err := attachInsets(p, ctx.insets[label], o); err != nil {
			return err
		}
	}

	return nil
}

// buildSection recursively parses a deferred section's content through the
// whole pipeline and lifts the result into a Section node at the
// placeholder's position in the enclosing grid.
func buildSection(def sectionDef, cell Cell, o *options) (*Section, error) {
	sub, err := parseLevel(def.content, o)
	if err != nil {
		return nil, err
	}
	return &Section{
		Name:      def.name,
		Label:     sectionLabel(def.name),
		Cell:      cell,
		Rows:      sub.rows,
		Cols:      sub.cols,
		RowRatios: sub.rowRatios,
		ColRatios: sub.colRatios,
		Items:     sub.items,
	}, nil
}

// findPanel locates the panel with the given name anywhere in the level,
// including inside sections built moments ago. Depth-first by declaration
// order; tree sizes are tens of panels, so no index is kept.
func findPanel(items []Node, name string) *Panel {
	var hit *Panel
	for _, item := range items {
		Walk(item, func(n Node) {
			if hit != nil {
				return
			}
			if p, ok := n.(*Panel); ok && p.Name == name {
				hit = p
			}
		})
		if hit != nil {
			return hit
		}
	}
	return nil
}

// attachSubPanels appends the declared sub-panels to p and records the
// declared grid shape. Grid form synthesizes rows*cols children in row-major
// order; list form lays the named items out in a single row.
func attachSubPanels(p *Panel, spec subPanelSpec) {
	if spec.grid {
		for idx := 0; idx < spec.rows*spec.cols; idx++ {
			p.Subs = append(p.Subs, &SubPanel{
				ID:     fmt.Sprintf("%s.%d", p.Name, idx),
				Label:  strconv.Itoa(idx),
				Row:    idx / spec.cols,
				Col:    idx % spec.cols,
				Parent: p.Name,
			})
		}
	} else {
		for i, item := range spec.items {
			p.Subs = append(p.Subs, &SubPanel{
				ID:     p.Name + "." + item,
				Label:  item,
				Row:    0,
				Col:    i,
				Parent: p.Name,
			})
		}
	}
	p.SubGrid = &GridShape{Rows: spec.rows, Cols: spec.cols}
}

// attachInsets appends one Inset per recorded spec, in declaration order.
// Grid insets parse their nested code through the regular pipeline and adopt
// the resulting level's items as children.
func attachInsets(p *Panel, specs []insetSpec, o *options) error {
	for i, spec := range specs {
		inset := &Inset{
			ID:     fmt.Sprintf("%s_inset_%d", p.Name, i),
			Label:  fmt.Sprintf("Inset %d", i+1),
			Parent: p.Name,
			Kind:   spec.kind,
		}
		switch spec.kind {
		case InsetAbsolute:
			inset.Bounds = spec.bounds
		case InsetGrid:
			sub, err := parseLevel(spec.code, o)
			if err != nil {
				return err
			}
			inset.Rows = sub.rows
			inset.Cols = sub.cols
			inset.Code = spec.code
			inset.Items = sub.items
		}
		p.Insets = append(p.Insets, inset)
	}
	return nil
}
