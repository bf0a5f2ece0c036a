package pretty

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
)

// DiffWriter renders unified diffs in GitHub style for check mode.
type DiffWriter struct {
	styles *Styles
	out    io.Writer
}

// NewDiffWriter creates a diff writer using the given styles.
func NewDiffWriter(out io.Writer, styles *Styles) *DiffWriter {
	return &DiffWriter{styles: styles, out: out}
}

// WriteAll writes every diff followed by a change summary and returns the
// number of documents with changes.
func (w *DiffWriter) WriteAll(diffs []*docs.Diff) int {
	var files, additions, deletions int

	for _, diff := range diffs {
		if !diff.HasChanges() {
			continue
		}
		files++
		additions += diff.Additions
		deletions += diff.Deletions
		w.WriteDiff(diff)
	}

	if files > 0 {
		w.writeSummary(files, additions, deletions)
	}
	return files
}

// WriteDiff outputs a single document's diff with formatting.
func (w *DiffWriter) WriteDiff(diff *docs.Diff) {
	if !diff.HasChanges() {
		return
	}

	// Use relative path for display if possible.
	displayPath := relativePath(diff.Path)

	// Git-style header: "diff --git a/file b/file"
	header := fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)
	fmt.Fprintln(w.out, w.styles.DiffHeader.Render(header))

	fmt.Fprintln(w.out, w.styles.DiffRemove.Render("--- a/"+displayPath))
	fmt.Fprintln(w.out, w.styles.DiffAdd.Render("+++ b/"+displayPath))

	// Colorize the hunk content, skipping the --- and +++ lines String()
	// emits so the relative-path headers above are the only ones shown.
	lines := strings.Split(diff.String(), "\n")
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		w.writeDiffLine(line)
	}

	fmt.Fprintln(w.out) // Blank line between files
}

// relativePath converts an absolute path to a relative path from the current
// directory. If the relative path would require too many "../" traversals,
// use the basename instead.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}

// writeDiffLine formats a single diff line with color.
func (w *DiffWriter) writeDiffLine(line string) {
	var styled string

	switch {
	case strings.HasPrefix(line, "@@"):
		styled = w.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		styled = w.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		styled = w.styles.DiffRemove.Render(line)
	default:
		styled = w.styles.DiffContext.Render(line)
	}

	fmt.Fprintln(w.out, styled)
}

// writeSummary writes a git-style change summary line.
func (w *DiffWriter) writeSummary(files, additions, deletions int) {
	var parts []string

	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", files, fileWord))

	if additions > 0 {
		insertionWord := "insertions"
		if additions == 1 {
			insertionWord = "insertion"
		}
		parts = append(parts, w.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, insertionWord)))
	}

	if deletions > 0 {
		deletionWord := "deletions"
		if deletions == 1 {
			deletionWord = "deletion"
		}
		parts = append(parts, w.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, deletionWord)))
	}

	fmt.Fprintln(w.out, strings.Join(parts, ", "))
}
