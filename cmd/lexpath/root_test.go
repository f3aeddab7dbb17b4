package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRoot builds an isolated command tree so tests never touch the
// package-level rootCmd.
func newTestRoot() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newBatchCmd())

	return cmd
}

// runCommand executes args against a fresh tree and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newTestRoot()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := newTestRoot()

	names := make([]string, 0, 2)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "solve")
	assert.Contains(t, names, "batch")
}

func TestRootCmd_Metadata(t *testing.T) {
	cmd := newRootCmd()
	require.Equal(t, "lexpath", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
}
