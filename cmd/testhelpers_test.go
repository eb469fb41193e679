package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRootCmd builds a fresh root command with persistent flags and the
// given subcommands, writing output to the returned buffer.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	configureRootFlags(cmd)

	for _, sub := range subcommands {
		cmd.AddCommand(sub)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

// testLogArgs keeps log output out of the package directory.
func testLogArgs(t *testing.T) []string {
	t.Helper()
	return []string{"--log-file", filepath.Join(t.TempDir(), "apiprep.log")}
}
