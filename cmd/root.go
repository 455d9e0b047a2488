// Package cmd provides the root command and CLI setup for linetally.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/adapter"
	"github.com/mouse-blink/linetally/internal/config"
	"github.com/mouse-blink/linetally/internal/controller"
	"github.com/mouse-blink/linetally/internal/domain"
	"github.com/mouse-blink/linetally/internal/logging"
	m "github.com/mouse-blink/linetally/internal/model"
)

// workflow is built lazily in setup so that flags can shape it; tests
// replace it with a mock before executing a command.
var workflow domain.Workflow

// envErr is why the environment was ignored, if it was.
var defaults, envErr = loadDefaults()

var projectFlag string
var logLevelFlag string
var logFormatFlag string
var localeFlag string
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func init() {
	addCommands(rootCmd)
}

func addCommands(root *cobra.Command) {
	root.AddCommand(
		newInitCmd(),
		newScanCmd(),
		newExportCmd(),
		newShowCmd(),
		newAnnotateCmd(),
		newExcludeCmd(),
		newWatchCmd(),
	)
}

func loadDefaults() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return &config.Config{
			ProjectFile: adapter.DefaultProjectFile,
			LogLevel:    "warn",
			LogFormat:   "console",
			Locale:      "en",
			Debounce:    adapter.DefaultDebounce,
		}, err
	}

	return cfg, nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linetally",
		Short: "Track line counts of a source tree over time",
		Long: `Linetally keeps a persistent, annotated tree of the folders and files under
a root directory together with their line counts.

Rescanning merges what is on disk into the saved tree, so colors,
descriptions and exclusions survive across scans. The tree can be exported
as a tab-separated report with cumulative totals per folder.

  linetally init ./src --exclude .json --exclude .lock
  linetally scan
  linetally annotate internal/legacy --color red --description "to delete"
  linetally export -o report.tsv`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVarP(&projectFlag, "project", "P", defaults.ProjectFile, "path of the project file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", defaults.LogFormat, "log format (console, json)")
	cmd.PersistentFlags().StringVar(&localeFlag, "locale", defaults.Locale, "locale used to group numbers in reports")
	cmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "disable the interactive terminal UI")

	return cmd
}

// setup initializes logging and, unless one is already set, the workflow.
func setup(cmd *cobra.Command, _ []string) error {
	if err := logging.Init(logging.Config{Level: logLevelFlag, Format: logFormatFlag}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if envErr != nil {
		logging.S().Warnw("ignoring environment", "error", envErr)
	}

	if workflow != nil {
		return nil
	}

	tag, err := config.ParseLocale(localeFlag)
	if err != nil {
		return err
	}

	fsAdapter := adapter.NewLocalTreeFSAdapter()
	ui := controller.NewUI(cmd, plainFlag)

	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewProjectStore(),
		adapter.NewFSNotifyWatcher(),
		ui,
		domain.NewRunner(fsAdapter),
		domain.NewExporter(tag),
		logging.L(),
	)

	return nil
}

func projectPath() m.Path {
	return m.Path(projectFlag)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	_ = logging.Sync()

	if err != nil {
		os.Exit(1)
	}
}
