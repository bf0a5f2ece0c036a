package markdown

import (
	"regexp"
	"strings"
)

// FindSectionHeading returns the best-matching heading line containing
// phrase, case-insensitively. Every ATX heading of level 2 through 6 is a
// candidate. When several headings contain the phrase the shortest line
// wins: a short heading is more likely the canonical section name than a
// longer sub-heading that happens to mention the phrase.
func FindSectionHeading(content, phrase string) (string, bool) {
	pattern := regexp.MustCompile(`(?im)^#{2,6} .*` + regexp.QuoteMeta(phrase) + `.*$`)

	matches := pattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return "", false
	}

	best := matches[0]
	for _, match := range matches[1:] {
		if len(match) < len(best) {
			best = match
		}
	}

	return strings.TrimSuffix(best, "\r"), true
}

// HasSection reports whether content contains a section heading for phrase.
func HasSection(content, phrase string) bool {
	_, found := FindSectionHeading(content, phrase)
	return found
}
