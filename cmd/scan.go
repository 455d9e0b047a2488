package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
)

var scanKeepGoingFlag bool

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Rescan the root and update line counts",
		Long: `Walk the project root and merge what is on disk into the saved tree.
Annotations are kept, excluded folders are emptied and entries that no longer
exist on disk stay in the tree with their last known counts.

Interrupting a scan stops it at the next folder or file and saves the
partially updated tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Project:   projectPath(),
				KeepGoing: scanKeepGoingFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&scanKeepGoingFlag, "keep-going", "k", false, "skip unreadable folders and files instead of aborting")

	return cmd
}
