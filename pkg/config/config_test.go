package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/figgrid/figgrid/pkg/errors"
	"github.com/figgrid/figgrid/pkg/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
strict = true

[checks]
overlaps = false
gaps = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Strict {
		t.Error("Load() should read strict = true")
	}

	pol := cfg.Policy()
	if pol.CheckOverlaps {
		t.Error("Policy() should honor overlaps = false")
	}
	if !pol.CheckGaps {
		t.Error("Policy() should honor gaps = true")
	}
	// Unset keys keep their defaults.
	if !pol.CheckSubPanels || !pol.CheckInsets {
		t.Errorf("Policy() = %+v, want unset checks defaulted on", pol)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %v, want %v", got, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "strict = [broken")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for malformed TOML")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %v, want %v", got, errors.ErrCodeInvalidConfig)
	}
}

func TestDefaultMatchesParserDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Policy() != layout.DefaultPolicy() {
		t.Errorf("Default().Policy() = %+v, want %+v", cfg.Policy(), layout.DefaultPolicy())
	}
	if len(cfg.Options()) != 1 {
		t.Errorf("Default().Options() = %d options, want only the policy", len(cfg.Options()))
	}
}

func TestOptionsApply(t *testing.T) {
	path := writeConfig(t, "strict = true")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Strict config escalates the out-of-bounds inset to an error.
	_, err = layout.Parse("a{0.8,0.8,0.5,0.5}", cfg.Options()...)
	if err == nil {
		t.Fatal("strict config should reject an invalid layout")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeValidationFailed {
		t.Errorf("error code = %v, want %v", got, errors.ErrCodeValidationFailed)
	}
}

func TestOptionsWithoutValidation(t *testing.T) {
	path := writeConfig(t, "validate = false")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tree, err := layout.Parse("a{0.8,0.8,0.5,0.5}", cfg.Options()...)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(tree.Warnings) != 0 {
		t.Errorf("validate = false should suppress warnings, got %v", tree.Warnings)
	}
}
