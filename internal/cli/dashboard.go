package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/sysinfo"
	"github.com/rileyhilliard/sysmon/internal/terminal"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// dashboardCommand starts the live dashboard.
func dashboardCommand(cmd *cobra.Command) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ui.ApplyColorMode(cfg.Color)

	source := sysinfo.NewHostSource(logger.With(log, "sysinfo"))
	return runDashboard(cmd.Context(), cfg, source, log)
}

// runDashboard drives the configured backend until the user quits, a fatal
// error occurs, or ctx is cancelled.
func runDashboard(ctx context.Context, cfg *config.Config, source sysinfo.Source, log logger.Logger) error {
	log.Info("starting dashboard (backend %s, interval %s)", cfg.Backend, cfg.Interval)

	if cfg.Backend == config.BackendTea {
		return monitor.RunProgram(ctx, source, cfg.Interval, logger.With(log, "tea"))
	}

	console, err := newConsole(cfg.Backend, log)
	if err != nil {
		return err
	}

	loop := monitor.NewLoop(console, source,
		monitor.WithCadence(cfg.Interval),
		monitor.WithLogger(logger.With(log, "loop")),
	)
	return loop.Run(ctx)
}

// newConsole builds the console for a loop-driven backend.
func newConsole(backend string, log logger.Logger) (monitor.Console, error) {
	switch backend {
	case config.BackendANSI, "":
		return terminal.NewANSI(os.Stdin, os.Stdout, logger.With(log, "ansi")), nil
	case config.BackendTcell:
		return terminal.NewTcell(nil, logger.With(log, "tcell")), nil
	default:
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown backend '%s'", backend),
			"Use one of: "+strings.Join(config.ValidBackends, ", "))
	}
}

// openLogger opens the configured log file. With no log file, logging is
// discarded since the dashboard owns the terminal.
func openLogger(cfg *config.Config) (logger.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logger.Noop(), func() {}, nil
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid log level",
			"Use one of: "+strings.Join(config.ValidLogLevels, ", "))
	}

	log, closer, err := logger.OpenFile(cfg.Log.File, level)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open log file "+cfg.Log.File,
			"Check the directory is writable, or pick another path with --log-file.")
	}
	return log, func() { _ = closer.Close() }, nil
}
