package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
)

// GlobalFlags holds the flags every command accepts. Empty values mean
// "use the config file or its default".
type GlobalFlags struct {
	ConfigFile string
	Interval   string
	Backend    string
	NoColor    bool
	LogFile    string
	LogLevel   string
}

// AddGlobalFlags registers the global flags as persistent flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "config file (default ./.sysmon.yaml or ~/.config/sysmon/config.yaml)")
	pf.StringVar(&flags.Interval, "interval", "", "refresh interval (e.g., 200ms, 1s)")
	pf.StringVar(&flags.Backend, "backend", "", "terminal backend: "+strings.Join(config.ValidBackends, ", "))
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.StringVar(&flags.LogFile, "log-file", "", "write diagnostic logs to this file")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level: "+strings.Join(config.ValidLogLevels, ", "))
}

// ParseInterval parses an interval flag into a duration.
// Returns zero duration if the flag is empty.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 200ms, 1s, or 2s.")
	}
	return duration, nil
}

// ApplyFlags overrides config values with any flags that were set.
func ApplyFlags(cfg *config.Config, flags GlobalFlags) error {
	interval, err := ParseInterval(flags.Interval)
	if err != nil {
		return err
	}
	if interval != 0 {
		cfg.Interval = interval
	}
	if flags.Backend != "" {
		cfg.Backend = strings.ToLower(flags.Backend)
	}
	if flags.NoColor {
		cfg.Color = config.ColorNever
	}
	if flags.LogFile != "" {
		cfg.Log.File = config.ExpandPath(flags.LogFile)
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(flags.LogLevel)
	}
	return nil
}

// resolveConfig loads the config, applies flag overrides, and validates the
// result.
func resolveConfig(flags GlobalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := ApplyFlags(cfg, flags); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
