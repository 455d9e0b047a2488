package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestChooseUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if ui := chooseUI(cmd, true); ui == nil {
		t.Fatal("chooseUI(true) returned nil")
	} else if _, ok := ui.(*TUI); !ok {
		t.Errorf("chooseUI(true) returned %T, want *TUI", ui)
	}

	if _, ok := chooseUI(cmd, false).(*SimpleUI); !ok {
		t.Errorf("chooseUI(false) returned %T, want *SimpleUI", chooseUI(cmd, false))
	}
}

func TestNewUI_PlainOrRedirected(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	for _, plain := range []bool{true, false} {
		if _, ok := NewUI(cmd, plain).(*SimpleUI); !ok {
			t.Errorf("NewUI(plain=%v) on a buffer returned %T, want *SimpleUI", plain, NewUI(cmd, plain))
		}
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Error("IsTTY() = true for a regular file")
	}
}

func TestIsTTY_ClosedFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	file.Close()

	if IsTTY(file) {
		t.Error("IsTTY() = true for a closed file")
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY() = true for a buffer")
	}
}
