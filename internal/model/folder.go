// Package model defines the annotated directory tree that linetally scans,
// persists and reports on.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// Color is the annotation tag a user attaches to a folder.
type Color string

const (
	// ColorNormal is the default tag of every newly discovered folder.
	ColorNormal Color = "Normal"
	// ColorGreen marks a folder green.
	ColorGreen Color = "Green"
	// ColorOrange marks a folder orange.
	ColorOrange Color = "Orange"
	// ColorRed marks a folder red.
	ColorRed Color = "Red"
)

// ErrInvalidColor is returned when a color token is not one of the known tags.
var ErrInvalidColor = errors.New("invalid color")

// Colors lists every valid color tag in display order.
func Colors() []Color {
	return []Color{ColorNormal, ColorGreen, ColorOrange, ColorRed}
}

// ParseColor resolves a color token case-insensitively. The empty token maps
// to ColorNormal.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorNormal, nil
	}

	for _, c := range Colors() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// File is the leaf record of one file: its name and the line count computed
// by the last scan.
type File struct {
	Name     string
	Lines    int
	Excluded bool
}

// Folder mirrors one directory. Name is empty for the root folder.
type Folder struct {
	Name        string
	Description string
	Color       Color
	Excluded    bool
	Folders     []*Folder
	Files       []*File
}

// NewFolder returns a folder with default annotations.
func NewFolder(name string) *Folder {
	return &Folder{Name: name, Color: ColorNormal}
}

// Clear drops every recorded child folder and file.
func (f *Folder) Clear() {
	f.Folders = nil
	f.Files = nil
}

// Folder returns the direct child folder matching name case-insensitively.
func (f *Folder) Folder(name string) *Folder {
	key := NameKey(name)
	for _, child := range f.Folders {
		if NameKey(child.Name) == key {
			return child
		}
	}

	return nil
}

// File returns the file record matching name case-insensitively.
func (f *Folder) File(name string) *File {
	key := NameKey(name)
	for _, file := range f.Files {
		if NameKey(file.Name) == key {
			return file
		}
	}

	return nil
}

// FolderIndex keys child folders by their case-folded name.
func (f *Folder) FolderIndex() map[string]*Folder {
	index := make(map[string]*Folder, len(f.Folders))
	for _, child := range f.Folders {
		index[NameKey(child.Name)] = child
	}

	return index
}

// FileIndex keys file records by their case-folded name.
func (f *Folder) FileIndex() map[string]*File {
	index := make(map[string]*File, len(f.Files))
	for _, file := range f.Files {
		index[NameKey(file.Name)] = file
	}

	return index
}

// RemoveFile drops the given record, keeping the order of the rest.
func (f *Folder) RemoveFile(target *File) {
	for i, file := range f.Files {
		if file == target {
			f.Files = append(f.Files[:i], f.Files[i+1:]...)
			return
		}
	}
}

// Walk visits f and every descendant folder depth-first, children in order.
// rel is the slash separated path of the folder relative to the root, "." for
// the root itself.
func (f *Folder) Walk(fn func(rel string, folder *Folder)) {
	f.walk(".", fn)
}

func (f *Folder) walk(rel string, fn func(string, *Folder)) {
	fn(rel, f)

	for _, child := range f.Folders {
		childRel := child.Name
		if rel != "." {
			childRel = rel + "/" + child.Name
		}

		child.walk(childRel, fn)
	}
}

// Equal reports whether two trees carry the same names, annotations, line
// counts and child order.
func (f *Folder) Equal(other *Folder) bool {
	if f == nil || other == nil {
		return f == other
	}

	if f.Name != other.Name || f.Description != other.Description ||
		f.Color != other.Color || f.Excluded != other.Excluded ||
		len(f.Folders) != len(other.Folders) || len(f.Files) != len(other.Files) {
		return false
	}

	for i := range f.Files {
		if *f.Files[i] != *other.Files[i] {
			return false
		}
	}

	for i := range f.Folders {
		if !f.Folders[i].Equal(other.Folders[i]) {
			return false
		}
	}

	return true
}

// NameKey folds a file or folder name for case-insensitive identity.
func NameKey(name string) string {
	return strings.ToLower(name)
}
