package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"apiprep.dev/pkg/apiprep/internal/domain"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Preview the import rewrites a build would make",
		Long:  "Walk every mapping and print a unified diff for each file whose shared imports would be rewritten. Nothing is written.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}

			return workflow.Diff(context.Background(), domain.DiffArgs{Root: root})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
