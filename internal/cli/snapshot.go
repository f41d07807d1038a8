package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/sysinfo"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// Snapshot output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// snapshotCommand samples the local host once and prints it.
func snapshotCommand(cmd *cobra.Command, format string) error {
	format = strings.ToLower(format)
	if format == FormatJSON {
		machineMode = true
	}

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
	return writeSnapshot(cmd.Context(), cmd.OutOrStdout(), source, format)
}

// writeSnapshot takes one sample from source and writes it to w.
func writeSnapshot(ctx context.Context, w io.Writer, source sysinfo.Source, format string) error {
	if format != FormatTable && format != FormatJSON && format != FormatYAML {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown format '%s'", format),
			"Use one of: table, json, yaml")
	}

	p, err := source.Open(ctx)
	if err != nil {
		if errors.CodeOf(err) != "" {
			return err
		}
		return errors.WrapWithCode(err, errors.ErrProvider, "Couldn't read system metrics", "")
	}
	snap := monitor.Build(p)

	switch format {
	case FormatJSON:
		return WriteJSONSuccess(w, snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Couldn't encode the snapshot as YAML", "")
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, renderSnapshotTable(snap))
		return err
	}
}

// renderSnapshotTable renders the dashboard rows as a plain table.
func renderSnapshotTable(s monitor.Snapshot) string {
	rows := monitor.Rows(s)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Label, r.Value}
	}
	columns := ui.FitColumns([]string{"KEY", "VALUE"}, cells)
	return ui.RenderSimpleTable(columns, cells)
}
