// Package controller provides the output side of linetally: scan progress and
// tree summaries, as plain text or as an interactive terminal view.
package controller

import (
	m "github.com/mouse-blink/linetally/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeScan ends the UI once the scan completes.
	ModeScan StartMode = iota
	// ModeWatch keeps the UI alive across repeated scans until Close.
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	interrupt func()
}

// WithScanMode sets the UI to single scan mode.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithWatchMode sets the UI to watch mode.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// WithInterrupt registers the function called when the user asks to stop from
// inside an interactive UI, where Ctrl-C does not raise a signal.
func WithInterrupt(interrupt func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = interrupt
	}
}

// UI displays scan progress and tree summaries.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (scan done or user quits)
	DisplayScanStarted(root m.Path)
	DisplayScanProgress(folder m.Path)
	DisplayScanCompleted(result m.ScanResult, err error)
	DisplaySummary(rows []m.FolderSummary, format CountFormatter) error
	DisplayExtensions(exts m.ExtensionSet)
}

// CountFormatter renders a count for display, e.g. with digit grouping.
type CountFormatter func(n int) string
