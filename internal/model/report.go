package model

import "time"

// Totals is the cumulative file and line count of a subtree.
type Totals struct {
	Files int
	Lines int
}

// Add sums two totals.
func (t Totals) Add(other Totals) Totals {
	return Totals{Files: t.Files + other.Files, Lines: t.Lines + other.Lines}
}

// ScanResult describes how a scan ended.
type ScanResult struct {
	Root      Path
	Cancelled bool
	Folders   int // folders entered
	Files     int // files counted
	Skipped   int // branches skipped after an I/O failure
	Duration  time.Duration
}

// FolderSummary is one row of the per-folder overview.
type FolderSummary struct {
	Path        string
	Color       Color
	Excluded    bool
	Description string
	Totals      Totals
}
