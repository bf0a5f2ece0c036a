package cli

import (
	"errors"
	"io/fs"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/configloader"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docgen"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/fsutil"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/listing"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// Exit codes for eslint-doc-generator.
const (
	// ExitSuccess indicates docs are generated (or up to date) with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates validation diagnostics or stale docs in
	// check mode.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration or plugin manifest errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode classifies an error returned by command execution.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrIssuesFound) {
		return ExitIssuesFound
	}

	if errors.Is(err, ErrUsage) {
		return ExitInvalidUsage
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, plugin.ErrManifest),
		errors.Is(err, plugin.ErrNoRules),
		errors.Is(err, plugin.ErrUnknownConfig),
		errors.Is(err, plugin.ErrExtendsCycle),
		errors.Is(err, plugin.ErrUnknownRule),
		errors.Is(err, docgen.ErrMissingDoc),
		errors.Is(err, listing.ErrMarkersNotFound):
		return ExitConfigError
	}

	var pathErr *fs.PathError
	switch {
	case errors.Is(err, plugin.ErrNotFound),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.As(err, &pathErr):
		return ExitIOError
	}

	return ExitInternalError
}
