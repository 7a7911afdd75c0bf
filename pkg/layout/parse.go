package layout

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/figgrid/figgrid/pkg/errors"
)

// options holds per-call parse configuration. A fresh value is built for
// every Parse call, so options never leak between calls.
type options struct {
	logger   *log.Logger
	validate bool
	strict   bool
	policy   Policy
}

// Option configures a single Parse call.
type Option func(*options)

// WithLogger attaches a logger for stage-level debug traces and warnings
// about dropped annotations. The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPolicy overrides the validation policy applied after parsing.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// Strict escalates every post-parse diagnostic to an error: a non-empty
// validation result aborts the parse, and a sub-panel or inset annotation
// naming a panel that does not exist anywhere in the tree is an error
// instead of being dropped.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithoutValidation skips the validator entirely. The returned tree carries
// no warnings; callers can still run Validate themselves.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		validate: true,
		policy:   DefaultPolicy(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Parse converts a layout code into a validated Tree.
//
// The grammar, informally: '/' or newline separates rows; each row is a
// sequence of single alphanumeric label characters, spaces, or '.' for empty
// cells. A label may carry a sub-panel annotation ("a[i,ii,iii]", "a[2x3]"),
// one or more absolute inset annotations ("a{0.6,0.6,0.35,0.35}"), or a
// nested-grid inset ("a<xy/zw>"). A bracketed section "[name:content]" may
// stand anywhere a label could, nested to arbitrary depth.
//
// Syntax errors (empty input, unterminated brackets, non-rectangular labels,
// malformed annotations) abort immediately with no tree. Validation
// diagnostics are attached to the tree as warnings by default; the Strict
// option escalates them to an error instead.
//
// Parse is a pure function of its input: every call builds an independent
// tree and shares no state with other calls, so concurrent use needs no
// synchronization.
func Parse(code string, opts ...Option) (*Tree, error) {
	o := newOptions(opts)

	raw := strings.TrimSpace(code)
	if raw == "" {
		return nil, errors.New(errors.ErrCodeSyntaxEmpty, "layout code is empty")
	}

	lv, err := parseLevel(raw, o)
	if err != nil {
		return nil, err
	}

	tree := &Tree{
		Root:      &Root{Items: lv.items},
		NRows:     lv.rows,
		NCols:     lv.cols,
		RowRatios: lv.rowRatios,
		ColRatios: lv.colRatios,
		RawCode:   raw,
		Version:   TreeVersion,
	}
	o.logger.Debugf("parsed %dx%d grid with %d top-level items", tree.NRows, tree.NCols, len(tree.Root.Items))

	if o.validate {
		if diags := Validate(tree, o.policy); len(diags) > 0 {
			if o.strict {
				return nil, errors.New(errors.ErrCodeValidationFailed,
					"layout validation failed: %s", strings.Join(diags, "; "))
			}
			tree.Warnings = diags
			o.logger.Warnf("layout has %d validation warning(s)", len(diags))
		}
	}

	return tree, nil
}

// parseLevel runs the full pipeline for one nesting level: extract sections,
// sub-panels, and insets from the raw string (in that order — section
// content must not be disturbed by annotation scanning of the outer grid),
// parse the residual character grid, then resolve placeholders and attach
// annotations. Section content and grid-inset code recurse through this same
// function.
func parseLevel(code string, o *options) (*gridLevel, error) {
	ctx := newParseContext()

	rest, err := extractSections(code, ctx)
	if err != nil {
		return nil, err
	}
	rest, err = extractSubPanels(rest, ctx)
	if err != nil {
		return nil, err
	}
	rest, err = extractInsets(rest, ctx)
	if err != nil {
		return nil, err
	}

	lv, err := parseGrid(rest, ctx)
	if err != nil {
		return nil, err
	}

	if err := buildLevel(lv, ctx, o); err != nil {
		return nil, err
	}
	return lv, nil
}
