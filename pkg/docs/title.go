package docs

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// TitleFormat selects how the rule-doc title line is rendered.
type TitleFormat string

const (
	// TitleName renders the bare rule name.
	TitleName TitleFormat = "name"

	// TitlePrefixName renders the plugin-prefixed rule name.
	TitlePrefixName TitleFormat = "prefix-name"

	// TitleDesc renders the rule description alone.
	TitleDesc TitleFormat = "desc"

	// TitleDescParensName renders the description with the bare name in
	// parentheses.
	TitleDescParensName TitleFormat = "desc-parens-name"

	// TitleDescParensPrefixName renders the description with the prefixed
	// name in parentheses.
	TitleDescParensPrefixName TitleFormat = "desc-parens-prefix-name"
)

// DefaultTitleFormat is the format used when none is configured.
const DefaultTitleFormat = TitleDescParensPrefixName

// titleFormats lists every supported format for validation.
var titleFormats = []TitleFormat{
	TitleName,
	TitlePrefixName,
	TitleDesc,
	TitleDescParensName,
	TitleDescParensPrefixName,
}

// ParseTitleFormat returns the format named by s. Unknown names are an
// error: a typo would otherwise silently change every generated title.
func ParseTitleFormat(s string) (TitleFormat, error) {
	for _, format := range titleFormats {
		if s == string(format) {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown title format %q (supported: %s)", s, joinTitleFormats())
}

func joinTitleFormats() string {
	names := make([]string, len(titleFormats))
	for i, format := range titleFormats {
		names[i] = string(format)
	}
	return strings.Join(names, ", ")
}

// FormatTitle renders the title line for a rule doc. Formats that need a
// description silently fall back to prefix-name when the rule has none:
// descriptions are optional metadata and never block generation.
func FormatTitle(rule plugin.Rule, prefix string, format TitleFormat) string {
	prefixed := prefixedName(prefix, rule.Name)

	description := sentenceCase(strings.TrimSuffix(strings.TrimSpace(rule.Description), "."))
	if description == "" {
		switch format {
		case TitleDesc, TitleDescParensName, TitleDescParensPrefixName:
			format = TitlePrefixName
		}
	}

	var title string
	switch format {
	case TitleName:
		title = rule.Name
	case TitleDesc:
		title = description
	case TitleDescParensName:
		title = fmt.Sprintf("%s (%s)", description, rule.Name)
	case TitleDescParensPrefixName:
		title = fmt.Sprintf("%s (%s)", description, prefixed)
	default:
		title = prefixed
	}

	return "# " + title
}

func prefixedName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// sentenceCase normalizes free-text descriptions into title style: first
// character upper-cased, the rest lower-cased.
func sentenceCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
