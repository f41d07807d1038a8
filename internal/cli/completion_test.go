package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a bare root command so generated scripts don't
// depend on what init registered.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sysmon",
		Short: "Live terminal dashboard for host memory, CPU, OS, and disks",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "# bash completion for sysmon")
	assert.Contains(t, output, "__sysmon_debug")
	assert.Contains(t, output, "complete -o default -F __start_sysmon sysmon")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenZshCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "#compdef sysmon")
	assert.Contains(t, output, "_sysmon()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenFishCompletion(&buf, true))
	output := buf.String()

	assert.Contains(t, output, "fish completion for sysmon")
	assert.Contains(t, output, "complete -c sysmon")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenPowerShellCompletion(&buf))
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	// Cobra completes dynamically through __completeNoDesc; commands with
	// local flags also get static functions.
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_sysmon")
	assert.Contains(t, output, "_sysmon_root_command")
	assert.Contains(t, output, "_sysmon_snapshot()")
	assert.Contains(t, output, "_sysmon_version()")
	assert.Contains(t, output, "_sysmon_completion()")
}

func TestCompletionBashSyntaxValid(t *testing.T) {
	cmd := resetRootCmd()
	cmd.AddCommand(&cobra.Command{Use: "watch", Short: "Live dashboard"})
	cmd.AddCommand(&cobra.Command{Use: "snapshot", Short: "One sample"})

	var buf bytes.Buffer
	require.NoError(t, cmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Equal(t, strings.Count(output, "{"), strings.Count(output, "}"), "braces should be balanced")
	assert.Contains(t, output, "__start_sysmon()")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	assert.Error(t, err)

	err = completionCmd.Args(completionCmd, []string{})
	assert.Error(t, err)

	assert.NoError(t, completionCmd.Args(completionCmd, []string{"zsh"}))
}
