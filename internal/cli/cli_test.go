package cli_test

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/cli"
	"github.com/MichaelDeBoey/eslint-doc-generator/internal/configloader"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "eslint-doc-generator [path]" {
		t.Errorf("unexpected Use: %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"rules", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestGenerateFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{
		"check",
		"init-rule-docs",
		"path-rule-doc",
		"path-rule-list",
		"rule-doc-title-format",
		"rule-doc-notices",
		"rule-doc-section-include",
		"rule-doc-section-exclude",
		"rule-doc-section-options",
		"check-code-samples",
		"ignore-config",
		"config-emoji",
		"rule-list-columns",
		"rule-list-split",
		"ignore-deprecated-rules",
		"require-deprecated-doc",
		"url-configs",
		"url-rule-doc",
		"formatter",
	}

	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on root command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"one", "two"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for extra positional arguments")
	}
	if got := cli.ExitCode(err); got != cli.ExitInvalidUsage {
		t.Errorf("ExitCode() = %d, want %d", got, cli.ExitInvalidUsage)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"--definitely-not-a-flag"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if got := cli.ExitCode(err); got != cli.ExitInvalidUsage {
		t.Errorf("ExitCode() = %d, want %d", got, cli.ExitInvalidUsage)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "issues found", err: cli.ErrIssuesFound, want: cli.ExitIssuesFound},
		{name: "wrapped issues found", err: errors.Join(errors.New("run"), cli.ErrIssuesFound), want: cli.ExitIssuesFound},
		{name: "usage", err: cli.ErrUsage, want: cli.ExitInvalidUsage},
		{
			name: "validation error",
			err:  errors.Join(errors.New("load"), &configloader.ValidationError{Field: "formatter", Message: "bad"}),
			want: cli.ExitConfigError,
		},
		{name: "no rules", err: plugin.ErrNoRules, want: cli.ExitConfigError},
		{name: "manifest error", err: plugin.ErrManifest, want: cli.ExitConfigError},
		{name: "plugin not found", err: plugin.ErrNotFound, want: cli.ExitIOError},
		{name: "path error", err: &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, want: cli.ExitIOError},
		{name: "unknown", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
