package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Output.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Degrees {
		t.Error("expected degrees to be false by default")
	}
	if cfg.Validate.MinArea != 1e-12 {
		t.Errorf("expected min area 1e-12, got %g", cfg.Validate.MinArea)
	}
	if cfg.Watch.Debounce != 200*time.Millisecond {
		t.Errorf("expected debounce 200ms, got %v", cfg.Watch.Debounce)
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
output:
  degrees: true
watch:
  debounce: 1s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if !cfg.Output.Degrees {
		t.Error("expected degrees from file")
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	// untouched values keep their defaults
	if cfg.Output.Precision != 6 {
		t.Errorf("expected default precision 6, got %d", cfg.Output.Precision)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "output: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for explicit missing file")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\noutput:\n  precision: 3\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse([]string{"--config", path, "--log-level", "warn", "--format", "yaml"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := FromFlags(fs)
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("flag should override file level, got %s", cfg.Logging.Level)
	}
	if cfg.Output.Precision != 3 {
		t.Errorf("unset flag must not override file precision, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected format yaml, got %s", cfg.Output.Format)
	}
}

func TestCheckRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"level":     func(c *Config) { c.Logging.Level = "loud" },
		"precision": func(c *Config) { c.Output.Precision = -1 },
		"format":    func(c *Config) { c.Output.Format = "xml" },
		"min area":  func(c *Config) { c.Validate.MinArea = -1 },
		"debounce":  func(c *Config) { c.Watch.Debounce = -time.Second },
	}

	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Check(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
