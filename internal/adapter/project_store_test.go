package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linetally/internal/model"
)

func sampleProject() *m.Project {
	p := m.NewProject("/work/repo", ".json", ".lock")

	src := m.NewFolder("src")
	src.Color = m.ColorGreen
	src.Description = "main sources"
	src.Files = []*m.File{
		{Name: "main.go", Lines: 42},
		{Name: "gen.go", Lines: 0, Excluded: true},
	}

	vendor := m.NewFolder("vendor")
	vendor.Excluded = true
	vendor.Color = m.ColorRed

	p.Root.Folders = []*m.Folder{src, vendor}
	p.Root.Files = []*m.File{{Name: "README.md", Lines: 7}}

	return p
}

func TestProjectStore_SaveLoadRoundTrip(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), DefaultProjectFile))
	store := NewProjectStore()
	want := sampleProject()

	require.NoError(t, store.Save(path, want))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "loaded project differs:\nwant %+v\ngot  %+v", want, got)
}

func TestProjectStore_SaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, DefaultProjectFile))
	store := NewProjectStore()

	require.NoError(t, store.Save(path, m.NewProject("/first")))
	require.NoError(t, store.Save(path, sampleProject()))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.Path("/work/repo"), got.RootPath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultProjectFile, entries[0].Name())
}

func TestProjectStore_SaveMissingDirectory(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "missing", DefaultProjectFile))

	err := NewProjectStore().Save(path, sampleProject())
	require.Error(t, err)
}

func TestProjectStore_LoadMissingFile(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), DefaultProjectFile))

	_, err := NewProjectStore().Load(path)
	require.ErrorIs(t, err, ErrLoad)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), string(path))
}

func TestProjectStore_LoadInvalidFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultProjectFile)
	require.NoError(t, os.WriteFile(path, []byte("rootPath: /x\nroot:\n  color: Purple\n"), 0o600))

	_, err := NewProjectStore().Load(m.Path(path))
	require.ErrorIs(t, err, ErrLoad)
	require.ErrorIs(t, err, m.ErrInvalidColor)
	assert.Contains(t, err.Error(), path)
}

func TestEncodeProject_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeProject(&buf, sampleProject()))

	out := buf.String()
	for _, want := range []string{
		"rootPath: /work/repo",
		"excludedExtensions: [.json, .lock]",
		"color: Green",
		"description: main sources",
		"lines: 42",
		"excluded: true",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDecodeProject_DefaultsColorAndKeepsOrder(t *testing.T) {
	doc := `rootPath: /repo
root:
  name: ""
  excluded: false
  folders:
    - name: zeta
      excluded: false
    - name: alpha
      excluded: false
  files:
    - name: b.go
      lines: 2
      excluded: false
    - name: a.go
      lines: 1
      excluded: false
`

	p, err := DecodeProject(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, m.ColorNormal, p.Root.Color)
	assert.Empty(t, p.ExcludedExtensions)
	require.Len(t, p.Root.Folders, 2)
	assert.Equal(t, "zeta", p.Root.Folders[0].Name)
	assert.Equal(t, m.ColorNormal, p.Root.Folders[1].Color)
	require.Len(t, p.Root.Files, 2)
	assert.Equal(t, "b.go", p.Root.Files[0].Name)
}

func TestDecodeProject_NormalizesExtensions(t *testing.T) {
	doc := "rootPath: /repo\nexcludedExtensions: [JSON, .md, .json]\nroot: {}\n"

	p, err := DecodeProject(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, m.ExtensionSet{".json", ".md"}, p.ExcludedExtensions)
}

func TestDecodeProject_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty document", "", "empty document"},
		{"not yaml", "rootPath: [", ""},
		{"unknown key", "rootPath: /r\nroot: {}\nextra: 1\n", "extra"},
		{"missing root path", "root: {}\n", "missing rootPath"},
		{"missing root", "rootPath: /r\n", "missing root folder"},
		{"unknown color", "rootPath: /r\nroot:\n  folders:\n    - name: a\n      color: Blue\n", "invalid color"},
		{"folder without name", "rootPath: /r\nroot:\n  folders:\n    - color: Red\n", "folder without name"},
		{"folder with empty name", "rootPath: /r\nroot:\n  folders:\n    - name: \"\"\n", "folder without name"},
		{"file without name", "rootPath: /r\nroot:\n  files:\n    - lines: 3\n", "file without name"},
		{"negative lines", "rootPath: /r\nroot:\n  files:\n    - name: a.go\n      lines: -1\n", "negative line count"},
		{"duplicate folder", "rootPath: /r\nroot:\n  folders:\n    - name: Src\n    - name: src\n", "duplicate folder"},
		{"duplicate file", "rootPath: /r\nroot:\n  files:\n    - name: A.go\n    - name: a.go\n", "duplicate file"},
		{"nested failure", "rootPath: /r\nroot:\n  folders:\n    - name: a\n      folders:\n        - name: b\n          files:\n            - name: x\n              lines: -4\n", "$/a/b/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeProject(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrLoad)
			assert.Nil(t, p)

			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}
