package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// ValidBackends lists the accepted backend names in help order.
var ValidBackends = []string{BackendANSI, BackendTcell, BackendTea}

// ValidColors lists the accepted color modes.
var ValidColors = []string{ColorAuto, ColorAlways, ColorNever}

// ValidLogLevels lists the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sysmon or lower the 'version' key.")
	}

	if err := ValidateInterval(cfg.Interval); err != nil {
		return err
	}

	if !contains(ValidBackends, cfg.Backend) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown backend '%s'", cfg.Backend),
			"Use one of: "+strings.Join(ValidBackends, ", "))
	}

	if !contains(ValidColors, cfg.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Color),
			"Use one of: "+strings.Join(ValidColors, ", "))
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'log' section in your .sysmon.yaml.")
	}

	return nil
}

// ValidateInterval reports an interval outside MinInterval..MaxInterval.
func ValidateInterval(d time.Duration) error {
	if d >= MinInterval && d <= MaxInterval {
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Interval %s is out of range", d),
		fmt.Sprintf("Pick an interval between %s and %s, like 200ms or 1s.", MinInterval, MaxInterval))
}

func validateLog(l LogConfig) error {
	if !contains(ValidLogLevels, l.Level) {
		return fmt.Errorf("unknown log level '%s' (use %s)", l.Level, strings.Join(ValidLogLevels, ", "))
	}
	if l.File != "" && strings.HasSuffix(l.File, "/") {
		return fmt.Errorf("log file '%s' is a directory", l.File)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
