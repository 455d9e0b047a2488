// Package adapter contains filesystem, persistence and watch adapters for the
// linetally CLI.
package adapter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/linetally/internal/model"
)

// TreeFSAdapter abstracts the filesystem operations the scanner relies on. It
// hides direct `os` access so the merge logic can be tested against fakes.
type TreeFSAdapter interface {
	// ReadDir lists the subdirectories and regular files directly under path,
	// each sorted by name. Symbolic links and special files are left out.
	ReadDir(path m.Path) (Listing, error)

	// CountLines returns the number of lines in the file at path. "\n", "\r\n"
	// and a bare "\r" each end a line. A final line without a trailing break
	// still counts.
	CountLines(path m.Path) (int, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// AbsPath expands a leading ~ and returns the cleaned absolute form of path.
	AbsPath(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// Listing is the content of one directory.
type Listing struct {
	Dirs  []string
	Files []string
}

// LocalTreeFSAdapter is the os backed TreeFSAdapter.
type LocalTreeFSAdapter struct{}

// NewLocalTreeFSAdapter constructs a LocalTreeFSAdapter.
func NewLocalTreeFSAdapter() *LocalTreeFSAdapter {
	return &LocalTreeFSAdapter{}
}

// ReadDir lists path with os.ReadDir.
func (a *LocalTreeFSAdapter) ReadDir(path m.Path) (Listing, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return Listing{}, err
	}

	var listing Listing

	for _, entry := range entries {
		switch {
		case entry.IsDir():
			listing.Dirs = append(listing.Dirs, entry.Name())
		case entry.Type().IsRegular():
			listing.Files = append(listing.Files, entry.Name())
		}
	}

	return listing, nil
}

// CountLines streams the file and counts its line breaks.
func (a *LocalTreeFSAdapter) CountLines(path m.Path) (int, error) {
	// #nosec G304 - path comes from a directory listing under the project root
	f, err := os.Open(string(path))
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = f.Close()
	}()

	return countLines(f)
}

func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	lines := 0
	last := byte('\n')

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			lines += bytes.Count(chunk, []byte{'\n'}) + bytes.Count(chunk, []byte{'\r'}) - bytes.Count(chunk, []byte("\r\n"))

			// a "\r\n" split across two reads
			if last == '\r' && chunk[0] == '\n' {
				lines--
			}

			last = chunk[n-1]
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, err
		}
	}

	if last != '\n' && last != '\r' {
		lines++
	}

	return lines, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalTreeFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// AbsPath expands ~ to the home directory and makes path absolute.
func (a *LocalTreeFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	rootStr := string(path)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalTreeFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
