package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
	m "github.com/mouse-blink/linetally/internal/model"
)

var initExcludeFlag []string
var initForceFlag bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <root>",
		Short: "Create a project for a root directory",
		Long: `Create a project file describing an empty tree for the given root.
Run "linetally scan" afterwards to fill it in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := workflow.Init(domain.InitArgs{
				Project: projectPath(),
				Root:    m.Path(args[0]),
				Exclude: initExcludeFlag,
				Force:   initForceFlag,
			}); err != nil {
				return err
			}

			cmd.Printf("Created %s\n", projectFlag)

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&initExcludeFlag, "exclude", "x", nil, "file extension to leave out of the tree, repeatable (e.g. .json)")
	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite an existing project file")

	return cmd
}
