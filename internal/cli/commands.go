package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Command-specific flags
var (
	snapshotFormatFlag string
)

// watchCmd is an explicit name for the default dashboard action.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the live dashboard (same as running sysmon with no command)",
	Long: `Show a live table of memory, CPU count, OS and kernel identity, host name,
and disks. The table refreshes every --interval and right after any key press.

Keyboard shortcuts:
  q, Esc, Ctrl+C  Quit

Examples:
  sysmon watch
  sysmon watch --interval 1s
  sysmon watch --backend tea`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd)
	},
}

// snapshotCmd prints one sample without taking over the terminal.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one sample of host metrics and exit",
	Long: `Sample host metrics once and print them. Unlike the dashboard this never
switches the terminal to raw mode, so it works in scripts and pipes.

Formats:
  table  Same rows as the dashboard (default)
  json   Raw values in a {"success": ..., "data": ...} envelope
  yaml   Raw values as YAML

Examples:
  sysmon snapshot
  sysmon snapshot --format json | jq .data.cpu_count`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd, snapshotFormatFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for sysmon.

Examples:
  # Bash
  sysmon completion bash > /etc/bash_completion.d/sysmon

  # Zsh
  sysmon completion zsh > "${fpath[1]}/_sysmon"

  # Fish
  sysmon completion fish > ~/.config/fish/completions/sysmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// snapshot command flags
	snapshotCmd.Flags().StringVarP(&snapshotFormatFlag, "format", "f", FormatTable, "output format: table, json, yaml")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(completionCmd)
}
