package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/linetally/internal/adapter"
	adaptermocks "github.com/mouse-blink/linetally/internal/adapter/mocks"
	m "github.com/mouse-blink/linetally/internal/model"
)

func TestRunner_ScansInBackground(t *testing.T) {
	root := sampleDisk(t)
	p := m.NewProject(m.Path(root), ".json")

	handle, err := NewRunner(adapter.NewLocalTreeFSAdapter()).Start(context.Background(), p, nil)
	require.NoError(t, err)

	result, err := handle.Wait()
	require.NoError(t, err)

	assert.Equal(t, m.Path(root), result.Root)
	assert.False(t, result.Cancelled)
	assert.Equal(t, 6, result.Folders)
	assert.Equal(t, 4, result.Files)
	assert.Zero(t, result.Skipped)
	assert.Len(t, p.Root.Folders, 3)
}

func blockingRoot(fs *adaptermocks.MockTreeFSAdapter, listing adapter.Listing) (entered, release chan struct{}) {
	entered = make(chan struct{})
	release = make(chan struct{})

	fs.EXPECT().ReadDir(m.Path("/r")).RunAndReturn(func(m.Path) (adapter.Listing, error) {
		close(entered)
		<-release

		return listing, nil
	}).Once()

	return entered, release
}

func TestRunner_RejectsConcurrentScan(t *testing.T) {
	fs := adaptermocks.NewMockTreeFSAdapter(t)
	entered, release := blockingRoot(fs, adapter.Listing{})
	runner := NewRunner(fs)

	handle, err := runner.Start(context.Background(), m.NewProject("/r"), nil)
	require.NoError(t, err)
	<-entered

	_, err = runner.Start(context.Background(), m.NewProject("/r"), nil)
	require.ErrorIs(t, err, ErrScanInProgress)

	close(release)

	_, err = handle.Wait()
	require.NoError(t, err)

	fs.EXPECT().ReadDir(m.Path("/r")).Return(adapter.Listing{}, nil).Once()

	handle, err = runner.Start(context.Background(), m.NewProject("/r"), nil)
	require.NoError(t, err, "a finished scan frees the runner")

	_, err = handle.Wait()
	require.NoError(t, err)
}

func TestRunner_CancelIsNotAnError(t *testing.T) {
	fs := adaptermocks.NewMockTreeFSAdapter(t)
	entered, release := blockingRoot(fs, adapter.Listing{Files: []string{"a.go", "b.go"}})
	p := m.NewProject("/r")

	handle, err := NewRunner(fs).Start(context.Background(), p, nil)
	require.NoError(t, err)
	<-entered

	handle.Cancel()
	close(release)

	result, err := handle.Wait()
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Equal(t, 1, result.Folders)
	assert.Zero(t, result.Files)
	assert.Empty(t, p.Root.Files)
}

func TestRunner_ParentContextCancels(t *testing.T) {
	fs := adaptermocks.NewMockTreeFSAdapter(t)
	entered, release := blockingRoot(fs, adapter.Listing{Files: []string{"a.go"}})

	ctx, cancel := context.WithCancel(context.Background())
	handle, err := NewRunner(fs).Start(ctx, m.NewProject("/r"), nil)
	require.NoError(t, err)
	<-entered

	cancel()
	close(release)

	result, err := handle.Wait()
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
}

func TestRunner_ReportsFailureAndSkips(t *testing.T) {
	boom := errors.New("denied")

	fs := adaptermocks.NewMockTreeFSAdapter(t)
	fs.EXPECT().ReadDir(m.Path("/r")).Return(adapter.Listing{}, boom)

	handle, err := NewRunner(fs).Start(context.Background(), m.NewProject("/r"), nil)
	require.NoError(t, err)

	_, err = handle.Wait()
	require.ErrorIs(t, err, ErrScanIO)

	skipping := adaptermocks.NewMockTreeFSAdapter(t)
	skipping.EXPECT().ReadDir(m.Path("/r")).Return(adapter.Listing{Files: []string{"a.go"}}, nil)
	skipping.EXPECT().JoinPath("/r", "a.go").Return(m.Path("/r/a.go"))
	skipping.EXPECT().CountLines(m.Path("/r/a.go")).Return(0, boom)

	observer := newRecordingObserver()
	observer.skip = true

	handle, err = NewRunner(skipping).Start(context.Background(), m.NewProject("/r"), observer)
	require.NoError(t, err)

	result, err := handle.Wait()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Files)
	assert.False(t, result.Cancelled)
}
