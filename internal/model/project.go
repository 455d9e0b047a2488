package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when a relative path does not address a node of the
// tree.
var ErrNotFound = errors.New("not found")

// ExtensionSet is the normalized list of excluded file extensions: lower case,
// leading dot, sorted, without duplicates.
type ExtensionSet []string

// NewExtensionSet normalizes the given extensions into a set. Blank entries
// are dropped.
func NewExtensionSet(exts ...string) ExtensionSet {
	return ExtensionSet{}.Add(exts...)
}

// NormalizeExtension lower-cases ext and ensures it starts with a dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// Add returns a new set holding s plus exts.
func (s ExtensionSet) Add(exts ...string) ExtensionSet {
	seen := make(map[string]struct{}, len(s)+len(exts))
	out := make(ExtensionSet, 0, len(s)+len(exts))

	for _, ext := range append(append([]string{}, s...), exts...) {
		ext = NormalizeExtension(ext)
		if ext == "" {
			continue
		}

		if _, ok := seen[ext]; ok {
			continue
		}

		seen[ext] = struct{}{}
		out = append(out, ext)
	}

	sort.Strings(out)

	return out
}

// Remove returns a new set without exts.
func (s ExtensionSet) Remove(exts ...string) ExtensionSet {
	drop := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		drop[NormalizeExtension(ext)] = struct{}{}
	}

	out := make(ExtensionSet, 0, len(s))

	for _, ext := range s {
		if _, ok := drop[NormalizeExtension(ext)]; ok {
			continue
		}

		out = append(out, ext)
	}

	return out
}

// Contains reports whether ext is excluded, ignoring case.
func (s ExtensionSet) Contains(ext string) bool {
	ext = NormalizeExtension(ext)
	if ext == "" {
		return false
	}

	for _, e := range s {
		if NormalizeExtension(e) == ext {
			return true
		}
	}

	return false
}

// Allows reports whether a file with the given name is tracked under s.
func (s ExtensionSet) Allows(name string) bool {
	return !s.Contains(filepath.Ext(name))
}

// Project is the root object: the scan target, the extension exclusion set
// and the annotated tree mirroring the target.
type Project struct {
	RootPath           Path
	ExcludedExtensions ExtensionSet
	Root               *Folder
}

// NewProject returns a project with an empty root folder.
func NewProject(root Path, excluded ...string) *Project {
	return &Project{
		RootPath:           root,
		ExcludedExtensions: NewExtensionSet(excluded...),
		Root:               NewFolder(""),
	}
}

// Equal reports whether two projects agree on every persisted field.
func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}

	if p.RootPath != other.RootPath || len(p.ExcludedExtensions) != len(other.ExcludedExtensions) {
		return false
	}

	for i := range p.ExcludedExtensions {
		if p.ExcludedExtensions[i] != other.ExcludedExtensions[i] {
			return false
		}
	}

	return p.Root.Equal(other.Root)
}

// FindFolder resolves a slash or OS separated path relative to the root.
// "", "." and "/" address the root itself.
func (p *Project) FindFolder(rel string) (*Folder, error) {
	folder := p.Root

	for _, part := range splitRel(rel) {
		child := folder.Folder(part)
		if child == nil {
			return nil, fmt.Errorf("folder %q: %w", rel, ErrNotFound)
		}

		folder = child
	}

	return folder, nil
}

// FindFile resolves a path relative to the root to a file record.
func (p *Project) FindFile(rel string) (*File, error) {
	parts := splitRel(rel)
	if len(parts) == 0 {
		return nil, fmt.Errorf("file %q: %w", rel, ErrNotFound)
	}

	parent, err := p.FindFolder(strings.Join(parts[:len(parts)-1], "/"))
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", rel, ErrNotFound)
	}

	file := parent.File(parts[len(parts)-1])
	if file == nil {
		return nil, fmt.Errorf("file %q: %w", rel, ErrNotFound)
	}

	return file, nil
}

func splitRel(rel string) []string {
	rel = filepath.ToSlash(rel)

	var parts []string

	for _, part := range strings.Split(rel, "/") {
		if part == "" || part == "." {
			continue
		}

		parts = append(parts, part)
	}

	return parts
}
