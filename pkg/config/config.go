// Package config loads parser settings from TOML files. It exists for
// tools that parse many layout codes with a shared, checked-in policy
// instead of wiring options at every call site.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/figgrid/figgrid/pkg/errors"
	"github.com/figgrid/figgrid/pkg/layout"
)

// Config mirrors the layout.toml file format. Boolean fields are pointers so
// an absent key keeps its default instead of reading as false.
type Config struct {
	// Strict escalates validation warnings to errors. Default false.
	Strict bool `toml:"strict"`

	// Validate runs the validator after parsing. Default true.
	Validate *bool `toml:"validate"`

	Checks Checks `toml:"checks"`
}

// Checks selects the validator's individual checks.
type Checks struct {
	Overlaps  *bool `toml:"overlaps"`   // default true
	Gaps      *bool `toml:"gaps"`       // default false
	SubPanels *bool `toml:"sub_panels"` // default true
	Insets    *bool `toml:"insets"`     // default true
}

// Default returns the configuration equivalent to calling layout.Parse with
// no options.
func Default() Config {
	return Config{}
}

// Load reads a TOML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}
	return cfg, nil
}

// Policy converts the check selection into a validation policy.
func (c Config) Policy() layout.Policy {
	def := layout.DefaultPolicy()
	return layout.Policy{
		CheckOverlaps:  boolOr(c.Checks.Overlaps, def.CheckOverlaps),
		CheckGaps:      boolOr(c.Checks.Gaps, def.CheckGaps),
		CheckSubPanels: boolOr(c.Checks.SubPanels, def.CheckSubPanels),
		CheckInsets:    boolOr(c.Checks.Insets, def.CheckInsets),
	}
}

// Options converts the configuration into layout.Parse options.
func (c Config) Options() []layout.Option {
	opts := []layout.Option{layout.WithPolicy(c.Policy())}
	if c.Strict {
		opts = append(opts, layout.Strict())
	}
	if !boolOr(c.Validate, true) {
		opts = append(opts, layout.WithoutValidation())
	}
	return opts
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
