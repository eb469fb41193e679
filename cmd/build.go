package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"apiprep.dev/pkg/apiprep/internal/domain"
)

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Copy the API and its supporting directories into the deployment layout",
		Long:  buildLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}

			return workflow.Build(context.Background(), domain.BuildArgs{Root: root})
		},
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
