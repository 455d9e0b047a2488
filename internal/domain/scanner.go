package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/mouse-blink/linetally/internal/adapter"
	m "github.com/mouse-blink/linetally/internal/model"
)

// ErrScanIO marks filesystem failures met while scanning.
var ErrScanIO = errors.New("scan I/O failure")

// ScanError carries the operation and path of a filesystem failure. It
// matches ErrScanIO with errors.Is.
type ScanError struct {
	Op   string // "list" or "count"
	Path m.Path
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrScanIO.
func (e *ScanError) Is(target error) bool { return target == ErrScanIO }

// ScanObserver follows a scan as it walks the tree.
type ScanObserver interface {
	FolderEntered(path m.Path)
	FileCounted(path m.Path, lines int)
	// ScanFailed decides what happens to a failed branch: a non-nil return
	// aborts the whole scan with that error, nil skips the branch and leaves
	// its node as it was.
	ScanFailed(err *ScanError) error
}

// AbortOnError is the ScanObserver that ignores progress and aborts on the
// first failure.
type AbortOnError struct{}

// FolderEntered does nothing.
func (AbortOnError) FolderEntered(m.Path) {}

// FileCounted does nothing.
func (AbortOnError) FileCounted(m.Path, int) {}

// ScanFailed returns err.
func (AbortOnError) ScanFailed(err *ScanError) error { return err }

// Scanner merges the live filesystem into an annotated folder tree.
type Scanner interface {
	// ScanFolder reconciles folder with the directory at path. It returns
	// false when ctx was cancelled before the subtree finished.
	ScanFolder(ctx context.Context, folder *m.Folder, path m.Path, exclusions m.ExtensionSet) (bool, error)
}

type scanner struct {
	fs       adapter.TreeFSAdapter
	observer ScanObserver
	ignore   func(path m.Path) bool
}

// ScanOption configures a Scanner.
type ScanOption func(*scanner)

// WithIgnore leaves files matching ignore out of the tree, dropping records an
// earlier scan kept for them.
func WithIgnore(ignore func(path m.Path) bool) ScanOption {
	return func(s *scanner) {
		s.ignore = ignore
	}
}

// NewScanner builds a Scanner reading through fs. A nil observer aborts on the
// first failure.
func NewScanner(fs adapter.TreeFSAdapter, observer ScanObserver, opts ...ScanOption) Scanner {
	if observer == nil {
		observer = AbortOnError{}
	}

	s := &scanner{fs: fs, observer: observer}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *scanner) ScanFolder(ctx context.Context, folder *m.Folder, path m.Path, exclusions m.ExtensionSet) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}

	if folder.Excluded {
		folder.Clear()
		return true, nil
	}

	s.observer.FolderEntered(path)

	listing, err := s.fs.ReadDir(path)
	if err != nil {
		return s.fail(&ScanError{Op: "list", Path: path, Err: err})
	}

	folders := folder.FolderIndex()

	for _, name := range listing.Dirs {
		key := m.NameKey(name)

		child, known := folders[key]
		if !known {
			child = m.NewFolder(name)
			folder.Folders = append(folder.Folders, child)
			folders[key] = child
		}

		if child.Excluded {
			child.Clear()
			continue
		}

		ok, err := s.ScanFolder(ctx, child, s.fs.JoinPath(string(path), name), exclusions)
		if err != nil || !ok {
			return ok, err
		}
	}

	files := folder.FileIndex()

	for _, name := range listing.Files {
		if ctx.Err() != nil {
			return false, nil
		}

		key := m.NameKey(name)

		if !exclusions.Allows(name) {
			forgetFile(folder, files, key)
			continue
		}

		filePath := s.fs.JoinPath(string(path), name)
		if s.ignore != nil && s.ignore(filePath) {
			forgetFile(folder, files, key)
			continue
		}

		record, known := files[key]
		lines := 0

		if !known || !record.Excluded {
			lines, err = s.fs.CountLines(filePath)
			if err != nil {
				if _, err := s.fail(&ScanError{Op: "count", Path: filePath, Err: err}); err != nil {
					return false, err
				}

				continue
			}
		}

		if !known {
			record = &m.File{Name: name}
			folder.Files = append(folder.Files, record)
			files[key] = record
		}

		record.Lines = lines
		s.observer.FileCounted(filePath, lines)
	}

	return true, nil
}

func forgetFile(folder *m.Folder, files map[string]*m.File, key string) {
	if record, known := files[key]; known {
		folder.RemoveFile(record)
		delete(files, key)
	}
}

func (s *scanner) fail(scanErr *ScanError) (bool, error) {
	if err := s.observer.ScanFailed(scanErr); err != nil {
		return false, err
	}

	return true, nil
}
