package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linetally/internal/model"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line without newline", "package main", 1},
		{"single line with newline", "package main\n", 1},
		{"two lines without trailing newline", "a\nb", 2},
		{"blank lines count", "\n\n\n", 3},
		{"crlf", "a\r\nb\r\n", 2},
		{"crlf without trailing break", "a\r\nb", 2},
		{"bare cr", "a\rb\rc\r", 3},
		{"bare cr without trailing break", "a\rb", 2},
		{"mixed breaks", "a\nb\r\nc\rd", 4},
		{"cr then blank lf line", "a\r\n\n", 2},
		{"lone cr", "\r", 1},
		{"trailing nul byte", "a\n\x00", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countLines(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLines_LargerThanBuffer(t *testing.T) {
	content := strings.Repeat("0123456789abcdef\n", 5000)

	got, err := countLines(iotest.HalfReader(strings.NewReader(content)))
	require.NoError(t, err)
	assert.Equal(t, 5000, got)
}

func TestCountLines_CRLFSplitAcrossReads(t *testing.T) {
	content := strings.Repeat("x\r\n", 20000)

	got, err := countLines(iotest.OneByteReader(strings.NewReader(content)))
	require.NoError(t, err)
	assert.Equal(t, 20000, got)
}

func TestCountLines_ReadError(t *testing.T) {
	boom := errors.New("boom")

	_, err := countLines(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

func TestLocalTreeFSAdapter_CountLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc main() {}"), 0o600))

	fsAdapter := NewLocalTreeFSAdapter()

	lines, err := fsAdapter.CountLines(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, 3, lines)

	_, err = fsAdapter.CountLines(m.Path(filepath.Join(dir, "missing.go")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalTreeFSAdapter_ReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pkg"), 0o750))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cmd"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("b\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("a\n"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.go"), filepath.Join(dir, "link.go")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "pkg"), filepath.Join(dir, "linkdir")))

	listing, err := NewLocalTreeFSAdapter().ReadDir(m.Path(dir))
	require.NoError(t, err)

	assert.Equal(t, []string{"cmd", "pkg"}, listing.Dirs)
	assert.Equal(t, []string{"a.go", "b.go"}, listing.Files)
}

func TestLocalTreeFSAdapter_ReadDirMissing(t *testing.T) {
	_, err := NewLocalTreeFSAdapter().ReadDir(m.Path(filepath.Join(t.TempDir(), "gone")))
	require.Error(t, err)
}

func TestLocalTreeFSAdapter_AbsPath(t *testing.T) {
	fsAdapter := NewLocalTreeFSAdapter()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := fsAdapter.AbsPath("~/projects")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(home, "projects")), got)

	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err = fsAdapter.AbsPath("")
	require.NoError(t, err)
	assert.Equal(t, m.Path(wd), got)

	got, err = fsAdapter.AbsPath("a/../b")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(wd, "b")), got)
}

func TestLocalTreeFSAdapter_JoinPath(t *testing.T) {
	got := NewLocalTreeFSAdapter().JoinPath("root", "src", "main.go")
	assert.Equal(t, m.Path(filepath.Join("root", "src", "main.go")), got)
}
