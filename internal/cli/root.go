package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// Global flags shared by every command.
var flags GlobalFlags

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Live terminal dashboard for host memory, CPU, OS, and disks",
	Long: `sysmon shows a live table of this machine's memory, CPU count, OS and kernel
identity, host name, and disks. The table refreshes on a short interval and
immediately after any key press.

Press q or Esc to quit.

Examples:
  sysmon
  sysmon --interval 1s
  sysmon --backend tcell
  sysmon snapshot --format json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd)
	},
}

func init() {
	AddGlobalFlags(rootCmd, &flags)
}

// Execute runs the root command and exits non-zero on failure. Signals that
// ask the process to stop cancel the command's context, so the dashboard
// restores the terminal before the error is printed.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(handleError(err))
}

// handleError prints err the way the current output mode expects and
// returns the process exit code.
func handleError(err error) int {
	if err == nil {
		return 0
	}

	if MachineMode() {
		_ = WriteJSONFromError(os.Stdout, err)
		return 1
	}

	fmt.Fprintln(os.Stderr, formatError(err))
	if isUnknownCommandError(err) {
		fmt.Fprintln(os.Stderr, "Run 'sysmon --help' to see available commands.")
	}
	return 1
}

// formatError renders structured errors as-is and plain errors with the
// same leading marker.
func formatError(err error) string {
	if errors.CodeOf(err) != "" {
		return strings.TrimRight(err.Error(), "\n")
	}
	return ui.SymbolFail + " " + err.Error()
}

// isUnknownCommandError checks whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
