package adapter

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/linetally/internal/model"
)

// DefaultDebounce is how long the watcher waits for more events before it
// reports a batch.
const DefaultDebounce = 500 * time.Millisecond

// ChangeBatch is one debounced set of changes below the watched root.
type ChangeBatch struct {
	Paths []m.Path
	// Overflow is set when the event queue overflowed and changes were lost,
	// so Paths is incomplete.
	Overflow bool
}

// ChangeHandler receives debounced change batches.
type ChangeHandler func(batch ChangeBatch)

// Watcher reports filesystem changes below a root directory.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange from a single goroutine
	// with batches of changed paths. A debounce of zero uses DefaultDebounce.
	Watch(ctx context.Context, root m.Path, debounce time.Duration, onChange ChangeHandler) error
}

// FSNotifyWatcher is the fsnotify backed Watcher. Directories created while
// watching are added as they appear.
type FSNotifyWatcher struct{}

// NewFSNotifyWatcher constructs an FSNotifyWatcher.
func NewFSNotifyWatcher() *FSNotifyWatcher {
	return &FSNotifyWatcher{}
}

// Watch registers root and every directory below it, then batches events.
func (w *FSNotifyWatcher) Watch(ctx context.Context, root m.Path, debounce time.Duration, onChange ChangeHandler) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer func() {
		_ = watcher.Close()
	}()

	if err := addTree(watcher, string(root)); err != nil {
		return err
	}

	track := func(path string) {
		_ = addTree(watcher, path)
	}

	return watchLoop(ctx, string(root), watcher.Events, watcher.Errors, track, debounce, onChange)
}

// watchLoop batches events until ctx is done. track registers the directories
// at or below a path that may have appeared. An event queue overflow is reported as a batch
// with Overflow set; any other error ends the loop.
func watchLoop(
	ctx context.Context,
	root string,
	events <-chan fsnotify.Event,
	errs <-chan error,
	track func(path string),
	debounce time.Duration,
	onChange ChangeHandler,
) error {
	timer := time.NewTimer(debounce)
	timer.Stop()

	defer timer.Stop()

	var pending ChangeBatch

	seen := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				// new directories need their own watch
				track(event.Name)
			}

			if _, dup := seen[event.Name]; !dup {
				seen[event.Name] = struct{}{}
				pending.Paths = append(pending.Paths, m.Path(event.Name))
			}

			timer.Reset(debounce)

		case <-timer.C:
			if len(pending.Paths) == 0 && !pending.Overflow {
				continue
			}

			batch := pending
			pending = ChangeBatch{}
			seen = make(map[string]struct{})

			onChange(batch)

		case err, ok := <-errs:
			if !ok {
				return nil
			}

			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				return err
			}

			// lost events may hide directories that still need a watch
			track(root)

			pending.Overflow = true

			timer.Reset(debounce)
		}
	}
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return watcher.Add(path)
	})
}
