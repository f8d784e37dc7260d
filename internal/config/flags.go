package config

import "github.com/spf13/pflag"

// Flag names shared by every command.
const (
	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
	FlagPrecision = "precision"
	FlagDegrees   = "degrees"
	FlagFormat    = "format"
	FlagMinArea   = "min-area"
)

// BindFlags registers the configuration flags on fs with default values.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "Path to config file")
	fs.String(FlagLogLevel, d.Logging.Level, "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, d.Logging.LogFile, "Write logs to this file as well")
	fs.Int(FlagPrecision, d.Output.Precision, "Digits after the decimal point")
	fs.Bool(FlagDegrees, d.Output.Degrees, "Print angles in degrees")
	fs.String(FlagFormat, d.Output.Format, "Output format (text, yaml)")
	fs.Float64(FlagMinArea, d.Validate.MinArea, "Reject triangles with area at or below this value")
}

// FromFlags loads the file named by --config (or the standard locations),
// then applies every flag the user set explicitly.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, cfg.Check()
}

// applyFlags overrides config values with flags that were set on the command line.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set(FlagLogLevel, func() (e error) { cfg.Logging.Level, e = fs.GetString(FlagLogLevel); return })
	set(FlagLogFile, func() (e error) { cfg.Logging.LogFile, e = fs.GetString(FlagLogFile); return })
	set(FlagPrecision, func() (e error) { cfg.Output.Precision, e = fs.GetInt(FlagPrecision); return })
	set(FlagDegrees, func() (e error) { cfg.Output.Degrees, e = fs.GetBool(FlagDegrees); return })
	set(FlagFormat, func() (e error) { cfg.Output.Format, e = fs.GetString(FlagFormat); return })
	set(FlagMinArea, func() (e error) { cfg.Validate.MinArea, e = fs.GetFloat64(FlagMinArea); return })

	return err
}
