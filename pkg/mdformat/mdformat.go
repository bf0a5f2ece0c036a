// Package mdformat pretty-prints generated markdown before it is written.
package mdformat

import (
	"fmt"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/markdown"
)

// Formatter pretty-prints one document. path is the document's destination,
// for formatters that discover style configuration near it.
type Formatter interface {
	Format(path string, content []byte) ([]byte, error)
}

// Kind names a formatter selection.
type Kind string

const (
	KindDefault Kind = "default"
	KindNone    Kind = "none"
)

// New returns the formatter named by kind.
func New(kind Kind) (Formatter, error) {
	switch kind {
	case KindDefault, "":
		return Normalizer{}, nil
	case KindNone:
		return Noop{}, nil
	}
	return nil, fmt.Errorf("unknown formatter %q (supported: default, none)", kind)
}

// Noop passes content through unchanged.
type Noop struct{}

func (Noop) Format(_ string, content []byte) ([]byte, error) {
	return content, nil
}

// Normalizer is the default formatter. It trims trailing whitespace, drops
// trailing blank lines, collapses runs of three or more blank lines to one,
// and ends the document with exactly one newline. Lines inside fenced code
// blocks pass through untouched. Every pass is idempotent.
type Normalizer struct{}

func (Normalizer) Format(_ string, content []byte) ([]byte, error) {
	lines := markdown.SplitLines(string(content))

	// The empty remainder of a trailing newline is an artifact, not a line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines))
	inFence := false
	closeDelim := ""
	blanks := 0

	flushBlanks := func() {
		keep := blanks
		if keep >= 3 {
			keep = 1
		}
		for i := 0; i < keep; i++ {
			out = append(out, "")
		}
		blanks = 0
	}

	for _, line := range lines {
		if inFence {
			out = append(out, line)
			if isFenceClose(line, closeDelim) {
				inFence = false
			}
			continue
		}

		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			blanks++
			continue
		}

		flushBlanks()
		out = append(out, trimmed)
		if delim := fenceOpen(trimmed); delim != "" {
			inFence = true
			closeDelim = delim
		}
	}

	// Pending blanks at EOF are dropped: the document ends with its last
	// content line and a single newline.
	return []byte(strings.Join(out, "\n") + "\n"), nil
}

// fenceOpen returns the delimiter run opening a fence on this line, or "".
// Four or more leading spaces make an indented code block, not a fence.
func fenceOpen(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return ""
	}
	if !strings.HasPrefix(trimmed, "```") && !strings.HasPrefix(trimmed, "~~~") {
		return ""
	}
	run := 0
	for run < len(trimmed) && trimmed[run] == trimmed[0] {
		run++
	}
	return trimmed[:run]
}

// isFenceClose reports whether line closes a fence opened by delim: the
// same marker repeated at least as many times, and nothing else.
func isFenceClose(line, delim string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(delim) {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != delim[0] {
			return false
		}
	}
	return true
}
