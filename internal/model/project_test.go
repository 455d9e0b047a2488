package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtensionSet_Normalizes(t *testing.T) {
	set := NewExtensionSet("JSON", ".md", " .Lock ", "", ".json")

	assert.Equal(t, ExtensionSet{".json", ".lock", ".md"}, set)
}

func TestExtensionSet_AddRemove(t *testing.T) {
	set := NewExtensionSet(".md")

	added := set.Add("TXT", ".md")
	assert.Equal(t, ExtensionSet{".md", ".txt"}, added)
	assert.Equal(t, ExtensionSet{".md"}, set, "Add must not modify the receiver")

	assert.Equal(t, ExtensionSet{".txt"}, added.Remove("MD"))
	assert.Equal(t, added, added.Remove(".go"))
}

func TestExtensionSet_Allows(t *testing.T) {
	set := NewExtensionSet(".json", ".min.js")

	assert.False(t, set.Allows("package.json"))
	assert.False(t, set.Allows("DATA.JSON"))
	assert.True(t, set.Allows("main.go"))
	assert.True(t, set.Allows("Makefile"))
	// only the last extension is matched
	assert.True(t, set.Allows("app.min.js"))
	assert.True(t, set.Contains("JSON"))
	assert.False(t, set.Contains(""))
}

func newSampleProject() *Project {
	p := NewProject("/work/repo", ".json")
	cmd := NewFolder("cmd")
	cmd.Files = []*File{{Name: "main.go", Lines: 12}}
	internal := NewFolder("Internal")
	internal.Folders = []*Folder{NewFolder("model")}
	p.Root.Folders = []*Folder{cmd, internal}
	p.Root.Files = []*File{{Name: "go.mod", Lines: 5}}

	return p
}

func TestProject_FindFolder(t *testing.T) {
	p := newSampleProject()

	for _, rel := range []string{"", ".", "/", "./"} {
		folder, err := p.FindFolder(rel)
		require.NoError(t, err, rel)
		assert.Same(t, p.Root, folder, rel)
	}

	folder, err := p.FindFolder("internal/MODEL")
	require.NoError(t, err)
	assert.Equal(t, "model", folder.Name)

	folder, err = p.FindFolder("./cmd/")
	require.NoError(t, err)
	assert.Equal(t, "cmd", folder.Name)

	_, err = p.FindFolder("pkg")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProject_FindFile(t *testing.T) {
	p := newSampleProject()

	file, err := p.FindFile("cmd/main.go")
	require.NoError(t, err)
	assert.Equal(t, 12, file.Lines)

	file, err = p.FindFile("GO.MOD")
	require.NoError(t, err)
	assert.Equal(t, "go.mod", file.Name)

	for _, rel := range []string{"", "cmd", "cmd/other.go", "nope/main.go"} {
		_, err := p.FindFile(rel)
		require.ErrorIs(t, err, ErrNotFound, rel)
	}
}

func TestProject_Equal(t *testing.T) {
	assert.True(t, newSampleProject().Equal(newSampleProject()))

	other := newSampleProject()
	other.ExcludedExtensions = other.ExcludedExtensions.Add(".md")
	assert.False(t, newSampleProject().Equal(other))

	moved := newSampleProject()
	moved.RootPath = "/elsewhere"
	assert.False(t, newSampleProject().Equal(moved))
}
