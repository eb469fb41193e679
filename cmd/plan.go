package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apiprep.dev/pkg/apiprep/internal/controller"
	"apiprep.dev/pkg/apiprep/internal/domain"
)

var planFormatFlag string

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the resolved mappings and whether their sources exist",
		Long:  "Print the mapping table resolved against the project root without touching the filesystem.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := resolveRoot()
			if err != nil {
				return err
			}

			format, err := controller.ParsePlanFormat(viper.GetString(planFormatKey))
			if err != nil {
				return err
			}

			return workflow.Plan(context.Background(), domain.PlanArgs{Root: root, Format: format})
		},
	}

	configurePlanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func configurePlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&planFormatFlag, formatFlagName, "f", viper.GetString(planFormatKey), "output format: table or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), planFormatKey)
}
