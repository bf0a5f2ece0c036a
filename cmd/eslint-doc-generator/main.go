// Package main is the entry point for the eslint-doc-generator CLI.
package main

import (
	"errors"
	"os"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/cli"
	"github.com/MichaelDeBoey/eslint-doc-generator/internal/logging"
)

// Build-time variables injected via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// Issues and diffs were already rendered by the command; everything
	// else gets one error line before the exit code is mapped.
	if !errors.Is(err, cli.ErrIssuesFound) {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
