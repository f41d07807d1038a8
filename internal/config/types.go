package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Backend names accepted by the backend key.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
	BackendTea   = "tea"
)

// Color modes accepted by the color key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Interval bounds. The interval is the input-poll timeout, so it is also
// the redraw cadence.
const (
	DefaultInterval = 200 * time.Millisecond
	MinInterval     = 50 * time.Millisecond
	MaxInterval     = 10 * time.Second
)

// Config represents the complete .sysmon.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval between redraws while no key is pressed.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Backend selects the console: "ansi", "tcell", or "tea".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig controls the diagnostic log. The dashboard owns the terminal,
// so logs only go to a file.
type LogConfig struct {
	// File is the log path. Empty disables logging.
	// Supports ~ and ${HOME}, ${USER}, ${HOSTNAME}.
	File string `yaml:"file" mapstructure:"file"`

	// Level is "debug", "info", "warn", or "error".
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Interval: DefaultInterval,
		Backend:  BackendANSI,
		Color:    ColorAuto,
		Log: LogConfig{
			Level: "info",
		},
	}
}
