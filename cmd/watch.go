package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
)

var watchKeepGoingFlag bool
var watchDebounceFlag time.Duration

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rescan whenever files under the root change",
		Long: `Scan once, then keep watching the root directory and rescan after
changes settle for the debounce interval. Each round is saved to the project
file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				Project:   projectPath(),
				KeepGoing: watchKeepGoingFlag,
				Debounce:  watchDebounceFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&watchKeepGoingFlag, "keep-going", "k", false, "skip unreadable folders and files instead of aborting")
	cmd.Flags().DurationVar(&watchDebounceFlag, "debounce", defaults.Debounce, "quiet period before a rescan starts")

	return cmd
}
