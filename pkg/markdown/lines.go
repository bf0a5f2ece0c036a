// Package markdown provides the line-oriented primitives the documentation
// pipeline is built on: splitting documents into lines, locating the
// generated-header marker, finding section headings, and extracting fenced
// code blocks.
//
// Apart from fence extraction, everything here treats markdown as plain
// text. Rule docs are free-form prose with no enforced heading taxonomy, so
// targeted pattern search over lines is more predictable than a structural
// parse.
package markdown

import "strings"

// SplitLines splits content into lines on LF. A trailing newline yields a
// final empty line, so JoinLines(SplitLines(s)) == s for every s.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// MarkerIndex returns the index of the first line exactly equal to marker,
// or -1 when no line matches. A trailing CR is ignored so CRLF documents
// still match.
func MarkerIndex(lines []string, marker string) int {
	for i, line := range lines {
		if strings.TrimSuffix(line, "\r") == marker {
			return i
		}
	}
	return -1
}

// IsTopLevelHeading reports whether line is a level-1 ATX heading.
func IsTopLevelHeading(line string) bool {
	return strings.HasPrefix(line, "# ")
}
