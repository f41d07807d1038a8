// Package cli implements the sysmon command-line interface.
//
// # Command Structure
//
// The root command runs the live dashboard. Subcommands:
//
//	sysmon watch            - Live dashboard (same as the root command)
//	sysmon snapshot         - Print one sample as table, json, or yaml
//	sysmon version          - Print build information
//	sysmon completion SHELL - Generate shell completion
//
// # Flag Handling
//
// Global flags (--config, --interval, --backend, --no-color, --log-file,
// --log-level) are persistent flags on the root command. Each command loads
// the config file and environment first, then ApplyFlags overrides whatever
// flags were set, and config.Validate checks the result.
//
// # Backends
//
//	ansi  - x/term raw mode with ANSI escape painting (default)
//	tcell - cell-based painting on a tcell screen
//	tea   - Bubble Tea program with its own renderer
//
// The ansi and tcell backends are monitor.Console implementations driven by
// monitor.Loop; tea runs monitor.Model.
//
// # Errors and Exit Codes
//
// Commands return structured errors. Execute prints them to stderr after the
// dashboard has restored the terminal, or as a JSON envelope on stdout in
// machine mode, and exits 1. A clean quit exits 0.
package cli
