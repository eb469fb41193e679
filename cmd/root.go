// Package cmd provides the root command and CLI setup for apiprep.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"apiprep.dev/pkg/apiprep/internal/adapter"
	"apiprep.dev/pkg/apiprep/internal/controller"
	"apiprep.dev/pkg/apiprep/internal/domain"
	m "apiprep.dev/pkg/apiprep/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var materializer domain.Materializer
var workflow domain.Workflow
var ui controller.UI

// rootFlag is the project root every mapping is resolved against.
var rootFlag string

var verboseFlag bool

var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	materializer = domain.NewMaterializer(fsAdapter, ui)
	workflow = domain.NewWorkflow(fsAdapter, ui, materializer)
}

const layoutHelp = `Mappings (relative to the project root):
  apps/api/api       -> api
  apps/api/lib       -> lib       (if present)
  apps/api/services  -> services  (if present)
  apps/api/utils     -> utils     (if present)
  packages/shared/src               (checked only)`

const rootLongDescription = `apiprep copies the API functions of a monorepo into the flat layout
expected by the serverless hosting platform, rewriting shared package
imports in .ts, .tsx, .js and .jsx files.

` + layoutHelp

const buildLongDescription = `Remove stale destination directories, copy every mapping and verify the
shared package.

` + layoutHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apiprep",
		Short: "Prepare a monorepo API for serverless deployment",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := readConfig(); err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&rootFlag, rootFlagName, "r",
			viper.GetString(rootFlagName),
			"project root containing apps/ and packages/",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveRoot returns the configured project root as an absolute path.
func resolveRoot() (m.Path, error) {
	root := viper.GetString(rootFlagName)
	if root == "" {
		root = defaultRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root %q: %w", root, err)
	}

	return m.Path(abs), nil
}
