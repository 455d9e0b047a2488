package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	m "github.com/mouse-blink/linetally/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output has nothing to wait for.
func (s *SimpleUI) Wait() {}

// DisplayScanStarted announces the scan target.
func (s *SimpleUI) DisplayScanStarted(root m.Path) {
	s.printf("Scanning %s\n", root)
}

// DisplayScanProgress is silent; per-folder progress goes to the debug log.
func (s *SimpleUI) DisplayScanProgress(_ m.Path) {}

// DisplayScanCompleted prints how the scan ended.
func (s *SimpleUI) DisplayScanCompleted(result m.ScanResult, err error) {
	s.printf("%s\n", describeScan(result, err))
}

// DisplaySummary prints one table row per folder with cumulative totals.
func (s *SimpleUI) DisplaySummary(rows []m.FolderSummary, format CountFormatter) error {
	if len(rows) == 0 {
		s.printf("No folders recorded\n")
		return nil
	}

	s.printf("\n%s", renderSummary(rows, format, nil))

	return nil
}

// DisplayExtensions prints the excluded extensions, one per line.
func (s *SimpleUI) DisplayExtensions(exts m.ExtensionSet) {
	if len(exts) == 0 {
		s.printf("No excluded extensions\n")
		return
	}

	for _, ext := range exts {
		s.printf("%s\n", ext)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderSummary lays rows out with tablewriter. paint, when set, decorates the
// path cell of each row.
func renderSummary(rows []m.FolderSummary, format CountFormatter, paint func(row m.FolderSummary, text string) string) string {
	if format == nil {
		format = func(n int) string { return fmt.Sprintf("%d", n) }
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Color", "Excluded", "Files", "Lines", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, row := range rows {
		path := row.Path
		if paint != nil {
			path = paint(row, path)
		}

		excluded := ""
		if row.Excluded {
			excluded = "yes"
		}

		table.Append([]string{
			path,
			string(row.Color),
			excluded,
			format(row.Totals.Files),
			format(row.Totals.Lines),
			singleLine(row.Description),
		})
	}

	root := rows[0].Totals
	table.SetFooter([]string{
		fmt.Sprintf("Total Folders %d", len(rows)),
		"",
		"",
		format(root.Files),
		format(root.Lines),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func describeScan(result m.ScanResult, err error) string {
	elapsed := result.Duration.Round(time.Millisecond)

	var b strings.Builder

	switch {
	case err != nil:
		fmt.Fprintf(&b, "Scan failed after %s: %v", elapsed, err)
	case result.Cancelled:
		fmt.Fprintf(&b, "Scan cancelled after %d folders, %d files (%s)", result.Folders, result.Files, elapsed)
	default:
		fmt.Fprintf(&b, "Scanned %d folders, %d files in %s", result.Folders, result.Files, elapsed)
	}

	if result.Skipped > 0 {
		fmt.Fprintf(&b, "; skipped %d unreadable entries", result.Skipped)
	}

	return b.String()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
