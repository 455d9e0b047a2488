package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linetally/internal/adapter"
	domainmocks "github.com/mouse-blink/linetally/internal/domain/mocks"
)

// newTestRootCmd builds a fresh command tree backed by a mock workflow.
func newTestRootCmd(t *testing.T) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	addCommands(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, mockWorkflow, &out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "linetally" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "linetally")
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("newRootCmd() should describe itself")
	}

	for _, name := range []string{"project", "log-level", "log-format", "locale", "plain"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("newRootCmd() missing --%s flag", name)
		}
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	addCommands(cmd)

	for _, name := range []string{"init", "scan", "export", "show", "annotate", "exclude", "watch"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetup_BuildsWorkflow(t *testing.T) {
	originalWorkflow := workflow
	originalLocale := localeFlag
	t.Cleanup(func() {
		workflow = originalWorkflow
		localeFlag = originalLocale
	})

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	workflow = nil
	localeFlag = "not a locale!"

	if err := setup(cmd, nil); err == nil {
		t.Fatal("setup() should reject an invalid locale")
	}

	localeFlag = "de"

	if err := setup(cmd, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}

	if workflow == nil {
		t.Fatal("setup() did not build a workflow")
	}
}

func TestSetup_RejectsInvalidLogging(t *testing.T) {
	_, _, _ = newTestRootCmd(t)

	originalLevel, originalFormat := logLevelFlag, logFormatFlag
	t.Cleanup(func() {
		logLevelFlag = originalLevel
		logFormatFlag = originalFormat
	})

	logLevelFlag = "chatty"

	if err := setup(&cobra.Command{}, nil); err == nil {
		t.Error("setup() should reject an unknown log level")
	}

	logLevelFlag = "info"
	logFormatFlag = "xml"

	if err := setup(&cobra.Command{}, nil); err == nil {
		t.Error("setup() should reject an unknown log format")
	}
}

func TestLoadDefaults_FallsBackOnBadEnvironment(t *testing.T) {
	t.Setenv("LINETALLY_LOG_LEVEL", "chatty")

	cfg, err := loadDefaults()
	if err == nil {
		t.Fatal("loadDefaults() should report the bad environment")
	}

	if cfg.LogLevel != "warn" || cfg.Debounce != adapter.DefaultDebounce {
		t.Errorf("loadDefaults() = %+v, want built-in defaults", cfg)
	}
}

func TestSetup_KeepsExistingWorkflow(t *testing.T) {
	_, mockWorkflow, _ := newTestRootCmd(t)

	if err := setup(&cobra.Command{}, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}

	if workflow != mockWorkflow {
		t.Fatal("setup() replaced an injected workflow")
	}
}
