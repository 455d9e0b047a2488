package domain

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	m "github.com/mouse-blink/linetally/internal/model"
)

func folderFG() *m.Folder {
	g := m.NewFolder("G")
	g.Files = []*m.File{{Name: "g.go", Lines: 5}}

	f := m.NewFolder("F")
	f.Folders = []*m.Folder{g}
	f.Files = []*m.File{{Name: "a.go", Lines: 10}, {Name: "b.go", Lines: 20}}

	return f
}

func TestExportFolder_PostOrder(t *testing.T) {
	var buf bytes.Buffer

	totals, err := NewExporter(language.English).ExportFolder(folderFG(), "$", &buf)
	require.NoError(t, err)
	assert.Equal(t, m.Totals{Files: 3, Lines: 35}, totals)

	want := strings.Join([]string{
		"$/F/G/g.go\t1\t5",
		"$/F/G\t1\t5",
		"$/F/a.go\t1\t10",
		"$/F/b.go\t1\t20",
		"$/F\t3\t35",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestExportProject_HeaderAndRoot(t *testing.T) {
	p := m.NewProject("/repo")
	p.Root.Folders = []*m.Folder{folderFG(), m.NewFolder("empty")}
	p.Root.Files = []*m.File{{Name: "go.mod", Lines: 3}}

	var buf bytes.Buffer

	totals, err := NewExporter(language.English).ExportProject(p, &buf)
	require.NoError(t, err)
	assert.Equal(t, m.Totals{Files: 4, Lines: 38}, totals)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, ReportHeader, lines[0])
	assert.Equal(t, "$/F\t3\t35", lines[5])
	assert.Equal(t, "$/empty\t0\t0", lines[6])
	assert.Equal(t, "$/go.mod\t1\t3", lines[7])
	assert.Equal(t, "$\t4\t38", lines[8])
}

func TestExportFolder_GroupsDigits(t *testing.T) {
	folder := m.NewFolder("big")
	folder.Files = []*m.File{{Name: "gen.go", Lines: 12345}, {Name: "more.go", Lines: 1000000}}

	var buf bytes.Buffer

	_, err := NewExporter(language.English).ExportFolder(folder, "$", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "$/big/gen.go\t1\t12,345\n")
	assert.Contains(t, out, "$/big\t2\t1,012,345\n")

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3)

		_, err := strconv.Atoi(strings.ReplaceAll(fields[2], ",", ""))
		assert.NoError(t, err, line)
	}
}

func TestExporter_FormatCountFollowsLocale(t *testing.T) {
	assert.Equal(t, "12,345", NewExporter(language.English).FormatCount(12345))
	assert.Equal(t, "12.345", NewExporter(language.German).FormatCount(12345))
	assert.Equal(t, "7", NewExporter(language.English).FormatCount(7))
}

func TestExporter_ExcludedFileCountsAsZero(t *testing.T) {
	folder := m.NewFolder("x")
	folder.Files = []*m.File{{Name: "dump.sql", Lines: 0, Excluded: true}, {Name: "a.go", Lines: 4}}

	var buf bytes.Buffer

	totals, err := NewExporter(language.English).ExportFolder(folder, "$", &buf)
	require.NoError(t, err)
	assert.Equal(t, m.Totals{Files: 2, Lines: 4}, totals)
	assert.Contains(t, buf.String(), "$/x/dump.sql\t1\t0\n")
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}

	w.after--

	return len(p), nil
}

func TestExportProject_WriteError(t *testing.T) {
	p := m.NewProject("/repo")
	p.Root.Folders = []*m.Folder{folderFG()}

	_, err := NewExporter(language.English).ExportProject(p, &failingWriter{after: 0})
	require.ErrorContains(t, err, "disk full")

	_, err = NewExporter(language.English).ExportProject(p, &failingWriter{after: 3})
	require.ErrorContains(t, err, "disk full")
}

func TestSummarize(t *testing.T) {
	p := m.NewProject("/repo")
	f := folderFG()
	f.Color = m.ColorOrange
	f.Description = "feature"
	p.Root.Folders = []*m.Folder{f}
	p.Root.Files = []*m.File{{Name: "go.mod", Lines: 3}}

	rows := NewExporter(language.English).Summarize(p)
	require.Len(t, rows, 3)

	assert.Equal(t, ".", rows[0].Path)
	assert.Equal(t, m.Totals{Files: 4, Lines: 38}, rows[0].Totals)
	assert.Equal(t, "F", rows[1].Path)
	assert.Equal(t, m.ColorOrange, rows[1].Color)
	assert.Equal(t, "feature", rows[1].Description)
	assert.Equal(t, m.Totals{Files: 3, Lines: 35}, rows[1].Totals)
	assert.Equal(t, "F/G", rows[2].Path)
	assert.Equal(t, m.Totals{Files: 1, Lines: 5}, rows[2].Totals)
}
