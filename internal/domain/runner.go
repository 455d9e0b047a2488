package domain

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/linetally/internal/adapter"
	m "github.com/mouse-blink/linetally/internal/model"
)

// ErrScanInProgress is returned when a scan is started while another one on
// the same runner has not finished.
var ErrScanInProgress = errors.New("scan already in progress")

// Runner dispatches merge scans of a project onto a background goroutine so
// the caller stays free to drive progress output or cancel.
type Runner interface {
	Start(ctx context.Context, project *m.Project, observer ScanObserver, opts ...ScanOption) (ScanHandle, error)
}

// ScanHandle is an in-flight scan.
type ScanHandle interface {
	// Wait blocks until the scan ends. Cancellation is reported through
	// ScanResult.Cancelled, never as an error.
	Wait() (m.ScanResult, error)
	// Cancel asks the scan to stop at the next folder or file boundary.
	Cancel()
}

type runner struct {
	fs      adapter.TreeFSAdapter
	running atomic.Bool
}

// NewRunner constructs a Runner scanning through fs. At most one scan runs at
// a time.
func NewRunner(fs adapter.TreeFSAdapter) Runner {
	return &runner{fs: fs}
}

func (r *runner) Start(ctx context.Context, project *m.Project, observer ScanObserver, opts ...ScanOption) (ScanHandle, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}

	if observer == nil {
		observer = AbortOnError{}
	}

	ctx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(ctx)

	handle := &scanHandle{cancel: cancel, group: group}
	stats := &countingObserver{next: observer}

	group.Go(func() error {
		defer r.running.Store(false)

		start := time.Now()
		ok, err := NewScanner(r.fs, stats, opts...).ScanFolder(groupCtx, project.Root, project.RootPath, project.ExcludedExtensions)

		handle.result = m.ScanResult{
			Root:      project.RootPath,
			Cancelled: !ok && err == nil,
			Folders:   stats.folders,
			Files:     stats.files,
			Skipped:   stats.skipped,
			Duration:  time.Since(start),
		}

		return err
	})

	return handle, nil
}

type scanHandle struct {
	cancel context.CancelFunc
	group  *errgroup.Group
	result m.ScanResult
}

func (h *scanHandle) Wait() (m.ScanResult, error) {
	err := h.group.Wait()
	h.cancel()

	return h.result, err
}

func (h *scanHandle) Cancel() {
	h.cancel()
}

// countingObserver tallies progress for the ScanResult before forwarding.
// It is only touched by the scan goroutine.
type countingObserver struct {
	next    ScanObserver
	folders int
	files   int
	skipped int
}

func (c *countingObserver) FolderEntered(path m.Path) {
	c.folders++
	c.next.FolderEntered(path)
}

func (c *countingObserver) FileCounted(path m.Path, lines int) {
	c.files++
	c.next.FileCounted(path, lines)
}

func (c *countingObserver) ScanFailed(scanErr *ScanError) error {
	if err := c.next.ScanFailed(scanErr); err != nil {
		return err
	}

	c.skipped++

	return nil
}
