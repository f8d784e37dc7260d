// Package config handles gpcunfold configuration loading.
package config

import (
	"fmt"
	"time"

	"github.com/philipparndt/gpcunfold/pkg/analysis"
)

// Config holds all settings.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
	Validate ValidateConfig `yaml:"validate"`
	Watch    WatchConfig    `yaml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig controls how results are printed. The kernel always works in radians.
type OutputConfig struct {
	Precision int    `yaml:"precision"`
	Degrees   bool   `yaml:"degrees"`
	Format    string `yaml:"format"` // text or yaml
}

// ValidateConfig holds input checks applied before each update.
type ValidateConfig struct {
	MinArea float64 `yaml:"min_area"`
}

// WatchConfig holds file watching settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Precision: 6,
			Format:    "text",
		},
		Validate: ValidateConfig{
			MinArea: analysis.DefaultMinArea,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Check reports the first invalid setting.
func (c *Config) Check() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision: %d not in [0, 17]", c.Output.Precision)
	}
	if c.Output.Format != "text" && c.Output.Format != "yaml" {
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Validate.MinArea < 0 {
		return fmt.Errorf("validate.min_area: must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative")
	}
	return nil
}
