package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI returns the interactive TUI when cmd writes to a capable terminal and
// plain output was not requested, and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, plain bool) UI {
	interactive := !plain && IsTTY(cmd.OutOrStdout()) && os.Getenv("TERM") != "dumb"

	return chooseUI(cmd, interactive)
}

func chooseUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal. Pipes, regular files and in-memory
// writers are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
