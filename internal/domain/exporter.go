package domain

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	m "github.com/mouse-blink/linetally/internal/model"
)

const (
	// ReportHeader is the first line of every report.
	ReportHeader = "Path\tFiles (cumulative)\tLines (cumulative)"
	// ReportRoot is the display path of the root folder.
	ReportRoot = "$"
)

// Exporter aggregates a folder tree into a tab separated report.
type Exporter interface {
	// ExportProject writes the header and the whole tree.
	ExportProject(project *m.Project, w io.Writer) (m.Totals, error)
	// ExportFolder writes folder post-order: child folders, then own files,
	// then its own summary line. It returns the cumulative totals.
	ExportFolder(folder *m.Folder, prefix string, w io.Writer) (m.Totals, error)
	// Summarize returns one row per folder in tree order with cumulative totals.
	Summarize(project *m.Project) []m.FolderSummary
	// FormatCount renders n with the locale's digit grouping.
	FormatCount(n int) string
}

type exporter struct {
	printer *message.Printer
}

// NewExporter returns an Exporter grouping digits the way tag does.
func NewExporter(tag language.Tag) Exporter {
	return &exporter{printer: message.NewPrinter(tag)}
}

func (e *exporter) ExportProject(project *m.Project, w io.Writer) (m.Totals, error) {
	if _, err := io.WriteString(w, ReportHeader+"\n"); err != nil {
		return m.Totals{}, fmt.Errorf("failed to write report header: %w", err)
	}

	return e.ExportFolder(project.Root, ReportRoot, w)
}

func (e *exporter) ExportFolder(folder *m.Folder, prefix string, w io.Writer) (m.Totals, error) {
	display := displayPath(prefix, folder.Name)

	var totals m.Totals

	for _, child := range folder.Folders {
		sub, err := e.ExportFolder(child, display, w)
		if err != nil {
			return m.Totals{}, err
		}

		totals = totals.Add(sub)
	}

	for _, file := range folder.Files {
		if _, err := e.printer.Fprintf(w, "%s/%s\t%d\t%d\n", display, file.Name, 1, file.Lines); err != nil {
			return m.Totals{}, fmt.Errorf("failed to write report line: %w", err)
		}

		totals = totals.Add(m.Totals{Files: 1, Lines: file.Lines})
	}

	if _, err := e.printer.Fprintf(w, "%s\t%d\t%d\n", display, totals.Files, totals.Lines); err != nil {
		return m.Totals{}, fmt.Errorf("failed to write report line: %w", err)
	}

	return totals, nil
}

func (e *exporter) Summarize(project *m.Project) []m.FolderSummary {
	totals := make(map[*m.Folder]m.Totals)
	aggregate(project.Root, totals)

	var rows []m.FolderSummary

	project.Root.Walk(func(rel string, folder *m.Folder) {
		rows = append(rows, m.FolderSummary{
			Path:        rel,
			Color:       folder.Color,
			Excluded:    folder.Excluded,
			Description: folder.Description,
			Totals:      totals[folder],
		})
	})

	return rows
}

func (e *exporter) FormatCount(n int) string {
	return e.printer.Sprintf("%d", n)
}

func aggregate(folder *m.Folder, out map[*m.Folder]m.Totals) m.Totals {
	var totals m.Totals

	for _, child := range folder.Folders {
		totals = totals.Add(aggregate(child, out))
	}

	for _, file := range folder.Files {
		totals = totals.Add(m.Totals{Files: 1, Lines: file.Lines})
	}

	out[folder] = totals

	return totals
}

func displayPath(prefix, name string) string {
	if name == "" {
		return prefix
	}

	return prefix + "/" + name
}
