package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/domain"
	m "github.com/mouse-blink/linetally/internal/model"
)

var annotateColorFlag string
var annotateDescriptionFlag string
var annotateExcludeFlag bool
var annotateIncludeFlag bool
var annotateFileFlag bool

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate <path>",
		Short: "Set color, description or exclusion on a folder or file",
		Long: `Annotate the folder at <path>, relative to the project root ("." is the
root itself). With --file the path names a file, which only accepts
--exclude and --include.

Excluded folders are emptied on the next scan; excluded files count as zero
lines right away.`,
		Example: `  linetally annotate vendor --exclude
  linetally annotate internal/core --color green --description "stable"
  linetally annotate --file assets/big.sql --exclude`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotateArgs, err := buildAnnotateArgs(cmd, args[0])
			if err != nil {
				return err
			}

			return workflow.Annotate(annotateArgs)
		},
	}
	cmd.Flags().StringVarP(&annotateColorFlag, "color", "c", "",
		fmt.Sprintf("color tag (%s)", strings.Join(colorNames(), ", ")))
	cmd.Flags().StringVarP(&annotateDescriptionFlag, "description", "d", "", "free-form description, empty to clear")
	cmd.Flags().BoolVar(&annotateExcludeFlag, "exclude", false, "exclude the target from counting")
	cmd.Flags().BoolVar(&annotateIncludeFlag, "include", false, "count the target again")
	cmd.Flags().BoolVar(&annotateFileFlag, "file", false, "the path names a file instead of a folder")
	cmd.MarkFlagsMutuallyExclusive("exclude", "include")

	return cmd
}

// buildAnnotateArgs turns the flags that were actually given into changes.
func buildAnnotateArgs(cmd *cobra.Command, target string) (domain.AnnotateArgs, error) {
	args := domain.AnnotateArgs{
		Project: projectPath(),
		Target:  target,
		File:    annotateFileFlag,
	}

	flags := cmd.Flags()

	if flags.Changed("color") {
		color, err := m.ParseColor(annotateColorFlag)
		if err != nil {
			return args, err
		}

		args.Color = &color
	}

	if flags.Changed("description") {
		description := annotateDescriptionFlag
		args.Description = &description
	}

	switch {
	case flags.Changed("exclude"):
		excluded := annotateExcludeFlag
		args.Excluded = &excluded
	case flags.Changed("include"):
		excluded := !annotateIncludeFlag
		args.Excluded = &excluded
	}

	return args, nil
}

func colorNames() []string {
	names := make([]string, 0, len(m.Colors()))
	for _, c := range m.Colors() {
		names = append(names, strings.ToLower(string(c)))
	}

	return names
}
