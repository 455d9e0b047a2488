package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
)

var exportOutputFlag string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tab-separated line count report",
		Long: `Write every file with its line count, followed by one summary line per
folder holding cumulative file and line totals. Folders are listed after
their contents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var out io.Writer = cmd.OutOrStdout()

			if exportOutputFlag != "" && exportOutputFlag != "-" {
				// #nosec G304 - output path is chosen by the user
				f, createErr := os.Create(exportOutputFlag)
				if createErr != nil {
					return fmt.Errorf("failed to create report file: %w", createErr)
				}

				defer func() {
					if closeErr := f.Close(); err == nil && closeErr != nil {
						err = fmt.Errorf("failed to close report file: %w", closeErr)
					}
				}()

				out = f
			}

			return workflow.Export(domain.ExportArgs{
				Project: projectPath(),
				Output:  out,
			})
		},
	}
	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "report file, stdout when empty or -")

	return cmd
}
