package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
)

func newExcludeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Manage excluded file extensions",
		Long: `Files whose extension is excluded are left out of the tree. Existing
entries with such an extension are removed on the next scan.`,
	}

	cmd.AddCommand(
		newExcludeActionCmd(domain.ExcludeAdd, "add <ext>...", "Exclude file extensions", cobra.MinimumNArgs(1)),
		newExcludeActionCmd(domain.ExcludeRemove, "remove <ext>...", "Count file extensions again", cobra.MinimumNArgs(1)),
		newExcludeActionCmd(domain.ExcludeList, "list", "List excluded file extensions", cobra.NoArgs),
	)

	return cmd
}

func newExcludeActionCmd(action domain.ExcludeAction, use, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Exclude(domain.ExcludeArgs{
				Project:    projectPath(),
				Action:     action,
				Extensions: args,
			})
		},
	}
}
