package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/linetally/internal/model"
)

const (
	// DefaultProjectFile is the project file name used when none is given.
	DefaultProjectFile = ".linetally.yaml"
	// TempFilePrefix starts the name of the temp file Save renames into place.
	TempFilePrefix = ".linetally-"
)

// ErrLoad marks every failure to restore a project file.
var ErrLoad = errors.New("project load failed")

// LoadError reports why a project file could not be restored.
type LoadError struct {
	Path m.Path
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load project: %v", e.Err)
	}

	return fmt.Sprintf("load project %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrLoad.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// ProjectStore persists and restores projects.
type ProjectStore interface {
	Save(path m.Path, project *m.Project) error
	Load(path m.Path) (*m.Project, error)
}

// LocalProjectStore keeps a project in a single YAML file.
type LocalProjectStore struct{}

// NewProjectStore constructs a ProjectStore backed by YAML files.
func NewProjectStore() ProjectStore {
	return &LocalProjectStore{}
}

type projectYAML struct {
	RootPath           string      `yaml:"rootPath"`
	ExcludedExtensions []string    `yaml:"excludedExtensions,flow"`
	Root               *folderYAML `yaml:"root"`
}

type folderYAML struct {
	Name        *string       `yaml:"name"`
	Color       string        `yaml:"color,omitempty"`
	Excluded    bool          `yaml:"excluded"`
	Description string        `yaml:"description,omitempty"`
	Folders     []*folderYAML `yaml:"folders,omitempty"`
	Files       []*fileYAML   `yaml:"files,omitempty"`
}

type fileYAML struct {
	Name     *string `yaml:"name"`
	Lines    int     `yaml:"lines"`
	Excluded bool    `yaml:"excluded"`
}

// Save writes the project to path, replacing any previous file atomically.
func (s *LocalProjectStore) Save(path m.Path, project *m.Project) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp project file: %w", err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := EncodeProject(tmp, project); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp project file: %w", err)
	}

	if err := os.Rename(tmp.Name(), string(path)); err != nil {
		return fmt.Errorf("failed to write project file %s: %w", path, err)
	}

	return nil
}

// Load reads and validates the project at path.
func (s *LocalProjectStore) Load(path m.Path) (*m.Project, error) {
	// #nosec G304 - project file path is chosen by the user
	f, err := os.Open(string(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	defer func() {
		_ = f.Close()
	}()

	project, err := DecodeProject(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}

		return nil, err
	}

	return project, nil
}

// EncodeProject writes the YAML form of project to w.
func EncodeProject(w io.Writer, project *m.Project) error {
	doc := projectYAML{
		RootPath:           string(project.RootPath),
		ExcludedExtensions: append([]string{}, project.ExcludedExtensions...),
		Root:               toFolderYAML(project.Root),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	return nil
}

// DecodeProject parses a project document. Unknown keys, unknown color tags,
// missing names and negative line counts fail the whole load.
func DecodeProject(r io.Reader) (*m.Project, error) {
	var doc projectYAML

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Err: errors.New("empty document")}
		}

		return nil, &LoadError{Err: err}
	}

	if doc.RootPath == "" {
		return nil, &LoadError{Err: errors.New("missing rootPath")}
	}

	if doc.Root == nil {
		return nil, &LoadError{Err: errors.New("missing root folder")}
	}

	root, err := fromFolderYAML(doc.Root, "$", true)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	return &m.Project{
		RootPath:           m.Path(doc.RootPath),
		ExcludedExtensions: m.NewExtensionSet(doc.ExcludedExtensions...),
		Root:               root,
	}, nil
}

func toFolderYAML(folder *m.Folder) *folderYAML {
	name := folder.Name
	color := folder.Color

	if color == "" {
		color = m.ColorNormal
	}

	out := &folderYAML{
		Name:        &name,
		Color:       string(color),
		Excluded:    folder.Excluded,
		Description: folder.Description,
	}

	for _, child := range folder.Folders {
		out.Folders = append(out.Folders, toFolderYAML(child))
	}

	for _, file := range folder.Files {
		fileName := file.Name
		out.Files = append(out.Files, &fileYAML{
			Name:     &fileName,
			Lines:    file.Lines,
			Excluded: file.Excluded,
		})
	}

	return out
}

func fromFolderYAML(in *folderYAML, at string, isRoot bool) (*m.Folder, error) {
	if in == nil {
		return nil, fmt.Errorf("%s: empty folder entry", at)
	}

	folder := m.NewFolder("")

	switch {
	case in.Name != nil:
		folder.Name = *in.Name
	case !isRoot:
		return nil, fmt.Errorf("%s: folder without name", at)
	}

	if !isRoot && folder.Name == "" {
		return nil, fmt.Errorf("%s: folder without name", at)
	}

	color, err := m.ParseColor(in.Color)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}

	folder.Color = color
	folder.Excluded = in.Excluded
	folder.Description = in.Description

	here := at
	if !isRoot {
		here = at + "/" + folder.Name
	}

	seenFolders := make(map[string]struct{}, len(in.Folders))

	for _, child := range in.Folders {
		sub, err := fromFolderYAML(child, here, false)
		if err != nil {
			return nil, err
		}

		key := m.NameKey(sub.Name)
		if _, dup := seenFolders[key]; dup {
			return nil, fmt.Errorf("%s: duplicate folder %q", here, sub.Name)
		}

		seenFolders[key] = struct{}{}
		folder.Folders = append(folder.Folders, sub)
	}

	seenFiles := make(map[string]struct{}, len(in.Files))

	for _, f := range in.Files {
		if f == nil || f.Name == nil || *f.Name == "" {
			return nil, fmt.Errorf("%s: file without name", here)
		}

		if f.Lines < 0 {
			return nil, fmt.Errorf("%s/%s: negative line count %d", here, *f.Name, f.Lines)
		}

		key := m.NameKey(*f.Name)
		if _, dup := seenFiles[key]; dup {
			return nil, fmt.Errorf("%s: duplicate file %q", here, *f.Name)
		}

		seenFiles[key] = struct{}{}
		folder.Files = append(folder.Files, &m.File{
			Name:     *f.Name,
			Lines:    f.Lines,
			Excluded: f.Excluded,
		})
	}

	return folder, nil
}
