// Package domain holds the merge scan, the report aggregation and the
// workflows the CLI commands run on top of them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mouse-blink/linetally/internal/adapter"
	"github.com/mouse-blink/linetally/internal/controller"
	m "github.com/mouse-blink/linetally/internal/model"
)

var (
	// ErrProjectExists is returned by Init when the project file is present
	// and Force is not set.
	ErrProjectExists = errors.New("project file already exists")
	// ErrNotADirectory is returned by Init for a root that is not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrNothingToChange is returned by Annotate when no field was given.
	ErrNothingToChange = errors.New("nothing to change")
	// ErrFileAnnotation is returned when a folder-only annotation targets a file.
	ErrFileAnnotation = errors.New("files only carry the excluded flag")
)

// InitArgs holds the parameters for creating a project.
type InitArgs struct {
	Project m.Path
	Root    m.Path
	Exclude []string
	Force   bool
}

// ScanArgs holds the parameters for a scan.
type ScanArgs struct {
	Project   m.Path
	KeepGoing bool // skip unreadable entries instead of aborting
}

// ExportArgs holds the parameters for writing a report.
type ExportArgs struct {
	Project m.Path
	Output  io.Writer
}

// ShowArgs holds the parameters for the folder overview.
type ShowArgs struct {
	Project m.Path
}

// AnnotateArgs changes annotations on one folder, or on one file when File is
// set. Nil fields are left alone.
type AnnotateArgs struct {
	Project     m.Path
	Target      string
	File        bool
	Color       *m.Color
	Description *string
	Excluded    *bool
}

// ExcludeAction selects what Exclude does with the extension set.
type ExcludeAction string

// Available ExcludeAction values.
const (
	ExcludeAdd    ExcludeAction = "add"
	ExcludeRemove ExcludeAction = "remove"
	ExcludeList   ExcludeAction = "list"
)

// ExcludeArgs holds the parameters for editing the extension set.
type ExcludeArgs struct {
	Project    m.Path
	Action     ExcludeAction
	Extensions []string
}

// WatchArgs holds the parameters for watch mode.
type WatchArgs struct {
	Project   m.Path
	KeepGoing bool
	Debounce  time.Duration
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Init(args InitArgs) error
	Scan(ctx context.Context, args ScanArgs) error
	Export(args ExportArgs) error
	Show(args ShowArgs) error
	Annotate(args AnnotateArgs) error
	Exclude(args ExcludeArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	fsAdapter adapter.TreeFSAdapter
	store     adapter.ProjectStore
	watcher   adapter.Watcher
	ui        controller.UI
	runner    Runner
	exporter  Exporter
	log       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.TreeFSAdapter,
	store adapter.ProjectStore,
	watcher adapter.Watcher,
	ui controller.UI,
	runner Runner,
	exporter Exporter,
	log *zap.Logger,
) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		watcher:   watcher,
		ui:        ui,
		runner:    runner,
		exporter:  exporter,
		log:       log,
	}
}

func (w *workflow) Init(args InitArgs) error {
	root, err := w.fsAdapter.AbsPath(args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", args.Root, err)
	}

	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotADirectory)
	}

	if _, err := w.fsAdapter.FileInfo(args.Project); err == nil && !args.Force {
		return fmt.Errorf("%s: %w", args.Project, ErrProjectExists)
	}

	project := m.NewProject(root, args.Exclude...)
	if err := w.store.Save(args.Project, project); err != nil {
		return err
	}

	w.log.Info("project created",
		zap.String("project", string(args.Project)),
		zap.String("root", string(root)),
		zap.Strings("excluded", project.ExcludedExtensions),
	)

	return nil
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	project, err := w.store.Load(args.Project)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithScanMode(), controller.WithInterrupt(cancel)); err != nil {
		return err
	}

	defer w.ui.Close()

	result, err := w.scanOnce(ctx, args.Project, project, args.KeepGoing)
	w.ui.Wait()

	if err != nil {
		return err
	}

	return w.save(args.Project, project, result)
}

func (w *workflow) Export(args ExportArgs) error {
	project, err := w.store.Load(args.Project)
	if err != nil {
		return err
	}

	totals, err := w.exporter.ExportProject(project, args.Output)
	if err != nil {
		return err
	}

	w.log.Info("report exported",
		zap.String("root", string(project.RootPath)),
		zap.Int("files", totals.Files),
		zap.Int("lines", totals.Lines),
	)

	return nil
}

func (w *workflow) Show(args ShowArgs) error {
	project, err := w.store.Load(args.Project)
	if err != nil {
		return err
	}

	return w.ui.DisplaySummary(w.exporter.Summarize(project), w.exporter.FormatCount)
}

func (w *workflow) Annotate(args AnnotateArgs) error {
	if args.Color == nil && args.Description == nil && args.Excluded == nil {
		return ErrNothingToChange
	}

	project, err := w.store.Load(args.Project)
	if err != nil {
		return err
	}

	if args.File {
		if err := annotateFile(project, args); err != nil {
			return err
		}
	} else if err := annotateFolder(project, args); err != nil {
		return err
	}

	if err := w.store.Save(args.Project, project); err != nil {
		return err
	}

	w.log.Info("annotation saved", zap.String("target", args.Target), zap.Bool("file", args.File))

	return nil
}

func annotateFile(project *m.Project, args AnnotateArgs) error {
	if args.Color != nil || args.Description != nil {
		return ErrFileAnnotation
	}

	file, err := project.FindFile(args.Target)
	if err != nil {
		return err
	}

	file.Excluded = *args.Excluded
	if file.Excluded {
		file.Lines = 0
	}

	return nil
}

func annotateFolder(project *m.Project, args AnnotateArgs) error {
	folder, err := project.FindFolder(args.Target)
	if err != nil {
		return err
	}

	if args.Color != nil {
		folder.Color = *args.Color
	}

	if args.Description != nil {
		folder.Description = *args.Description
	}

	if args.Excluded != nil {
		folder.Excluded = *args.Excluded
	}

	return nil
}

func (w *workflow) Exclude(args ExcludeArgs) error {
	project, err := w.store.Load(args.Project)
	if err != nil {
		return err
	}

	switch args.Action {
	case ExcludeAdd:
		project.ExcludedExtensions = project.ExcludedExtensions.Add(args.Extensions...)
	case ExcludeRemove:
		project.ExcludedExtensions = project.ExcludedExtensions.Remove(args.Extensions...)
	case ExcludeList:
	default:
		return fmt.Errorf("unknown exclude action %q", args.Action)
	}

	if args.Action != ExcludeList {
		if err := w.store.Save(args.Project, project); err != nil {
			return err
		}

		w.log.Info("exclusions saved", zap.Strings("excluded", project.ExcludedExtensions))
	}

	w.ui.DisplayExtensions(project.ExcludedExtensions)

	return nil
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	project, err := w.store.Load(args.Project)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithWatchMode(), controller.WithInterrupt(cancel)); err != nil {
		return err
	}

	defer w.ui.Close()

	root := project.RootPath

	if err := w.rescan(ctx, args, project); err != nil {
		return err
	}

	return w.watcher.Watch(ctx, root, args.Debounce, func(batch adapter.ChangeBatch) {
		if ctx.Err() != nil {
			return
		}

		if batch.Overflow {
			w.log.Warn("change events were lost, rescanning the whole tree", zap.String("root", string(root)))
		} else {
			changed := dropProjectArtifacts(args.Project, batch.Paths)
			if len(changed) == 0 {
				return
			}

			w.log.Info("changes detected", zap.Int("paths", len(changed)))
		}

		// pick up annotations made by other commands while watching
		project, err := w.store.Load(args.Project)
		if err != nil {
			w.log.Error("failed to reload project", zap.Error(err))
			return
		}

		if err := w.rescan(ctx, args, project); err != nil {
			w.log.Error("rescan failed", zap.Error(err))
		}
	})
}

// rescan runs one watch round and saves its outcome.
func (w *workflow) rescan(ctx context.Context, args WatchArgs, project *m.Project) error {
	result, err := w.scanOnce(ctx, args.Project, project, args.KeepGoing)
	if err != nil {
		return err
	}

	return w.save(args.Project, project, result)
}

// scanOnce merges the disk into project. The project file at path is left out
// of the tree when it lives under the root.
func (w *workflow) scanOnce(ctx context.Context, path m.Path, project *m.Project, keepGoing bool) (m.ScanResult, error) {
	w.ui.DisplayScanStarted(project.RootPath)
	w.log.Info("scan started",
		zap.String("root", string(project.RootPath)),
		zap.Strings("excluded", project.ExcludedExtensions),
	)

	observer := &progressObserver{ui: w.ui, log: w.log, keepGoing: keepGoing}

	handle, err := w.runner.Start(ctx, project, observer, WithIgnore(projectArtifactMatcher(path)))
	if err != nil {
		w.ui.DisplayScanCompleted(m.ScanResult{Root: project.RootPath}, err)
		return m.ScanResult{}, err
	}

	result, err := handle.Wait()
	w.ui.DisplayScanCompleted(result, err)

	if err != nil {
		w.log.Error("scan failed", zap.String("root", string(project.RootPath)), zap.Error(err))
		return result, err
	}

	w.log.Info("scan finished",
		zap.Bool("cancelled", result.Cancelled),
		zap.Int("folders", result.Folders),
		zap.Int("files", result.Files),
		zap.Int("skipped", result.Skipped),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

func (w *workflow) save(path m.Path, project *m.Project, result m.ScanResult) error {
	if result.Cancelled {
		w.log.Warn("scan cancelled, saving partially updated tree", zap.String("project", string(path)))
	}

	if err := w.store.Save(path, project); err != nil {
		return err
	}

	w.log.Info("project saved", zap.String("project", string(path)))

	return nil
}

// projectArtifactMatcher matches the project file and the temp files its
// atomic save leaves next to it.
func projectArtifactMatcher(project m.Path) func(path m.Path) bool {
	abs, err := filepath.Abs(string(project))
	if err != nil {
		abs = string(project)
	}

	dir := filepath.Dir(abs)

	return func(path m.Path) bool {
		p := filepath.Clean(string(path))
		if p == abs {
			return true
		}

		return filepath.Dir(p) == dir && strings.HasPrefix(filepath.Base(p), adapter.TempFilePrefix)
	}
}

// dropProjectArtifacts filters project file writes out of a change batch, so
// saving does not trigger another round.
func dropProjectArtifacts(project m.Path, changed []m.Path) []m.Path {
	isArtifact := projectArtifactMatcher(project)
	kept := changed[:0]

	for _, path := range changed {
		if !isArtifact(path) {
			kept = append(kept, path)
		}
	}

	return kept
}

// progressObserver forwards scan progress to the UI and the log, and applies
// the keep-going policy to I/O failures.
type progressObserver struct {
	ui        controller.UI
	log       *zap.Logger
	keepGoing bool
}

func (o *progressObserver) FolderEntered(path m.Path) {
	o.log.Debug("scanning folder", zap.String("path", string(path)))
	o.ui.DisplayScanProgress(path)
}

func (o *progressObserver) FileCounted(path m.Path, lines int) {
	o.log.Debug("counted file", zap.String("path", string(path)), zap.Int("lines", lines))
}

func (o *progressObserver) ScanFailed(err *ScanError) error {
	if !o.keepGoing {
		return err
	}

	o.log.Warn("skipping unreadable entry", zap.String("op", err.Op), zap.String("path", string(err.Path)), zap.Error(err.Err))

	return nil
}
