// Package docs synthesizes rule-doc headers and validates rule docs.
//
// A header is the machine-managed top region of a rule document: a title
// line, the applicable status notices, and a closing marker line. Merging
// is idempotent and never disturbs hand-written content below the marker,
// including documents in legacy formats that predate the marker.
package docs

import (
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/markdown"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// EndRuleHeaderMarker is the sentinel line closing every generated header.
// Later runs locate the header boundary by finding it.
const EndRuleHeaderMarker = "<!-- end auto-generated rule header -->"

// BuildHeader renders the complete header region for one rule: the title
// line, each applicable notice, a blank line, and the closing marker.
func BuildHeader(rule plugin.Rule, prefix string, configsEnabled []string, format TitleFormat, opts NoticeOptions) []string {
	lines := []string{FormatTitle(rule, prefix, format)}
	lines = append(lines, ComposeNotices(rule, configsEnabled, opts)...)
	lines = append(lines, "", EndRuleHeaderMarker)
	return lines
}

// MergeHeader splices header into the document's header region.
//
// The region is lines [0, markerIndex] inclusive, where markerIndex is the
// line exactly equal to marker. Documents without a marker but opening with
// a level-1 title predate the marker convention: the stale title is dropped
// and the header prepended. Documents with neither get the header
// prepended as-is. Everything after the original marker (or after the
// dropped legacy title) is preserved verbatim.
//
// Merging is idempotent: the output always contains the marker exactly
// once, as the last line of the header region, so a second merge with the
// same header reproduces the document byte for byte.
func MergeHeader(lines []string, header []string, marker string) []string {
	markerIndex := markdown.MarkerIndex(lines, marker)

	if markerIndex == -1 && len(lines) > 0 && markdown.IsTopLevelHeading(lines[0]) {
		lines = lines[1:]
	}

	merged := make([]string, 0, len(header)+len(lines))
	merged = append(merged, header...)
	merged = append(merged, lines[markerIndex+1:]...)
	return merged
}
