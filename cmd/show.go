package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show folders with their annotations and totals",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Show(domain.ShowArgs{Project: projectPath()})
		},
	}
}
