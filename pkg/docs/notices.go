package docs

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// NoticeKind identifies one kind of header notice.
type NoticeKind string

const (
	NoticeConfigs              NoticeKind = "configs"
	NoticeConfigRecommended    NoticeKind = "config-recommended"
	NoticeDeprecated           NoticeKind = "deprecated"
	NoticeFixable              NoticeKind = "fixable"
	NoticeHasSuggestions       NoticeKind = "has-suggestions"
	NoticeRequiresTypeChecking NoticeKind = "requires-type-checking"
)

// CanonicalNoticeOrder is the order notices appear in when no explicit
// selection is configured. NoticeConfigs and NoticeConfigRecommended are
// mutually exclusive, so both may safely appear here.
var CanonicalNoticeOrder = []NoticeKind{
	NoticeConfigs,
	NoticeConfigRecommended,
	NoticeDeprecated,
	NoticeFixable,
	NoticeHasSuggestions,
	NoticeRequiresTypeChecking,
}

// ParseNoticeKind returns the notice kind named by s.
func ParseNoticeKind(s string) (NoticeKind, error) {
	for _, kind := range CanonicalNoticeOrder {
		if s == string(kind) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown notice %q", s)
}

// DefaultPathRuleDoc is the location template for per-rule docs.
const DefaultPathRuleDoc = "docs/rules/{name}.md"

// ExpandNameTemplate substitutes a rule name into a {name} path or URL
// template.
func ExpandNameTemplate(template, name string) string {
	return strings.ReplaceAll(template, "{name}", name)
}

// NoticeOptions carries the knobs that shape notice rendering.
type NoticeOptions struct {
	// Order selects which notices render and in what order. Empty means
	// CanonicalNoticeOrder with every notice enabled.
	Order []NoticeKind

	// IgnoreConfigs removes configs from the enabling set before any
	// notice logic runs.
	IgnoreConfigs []string

	// URLConfigs, when set, turns the word "config"/"configs" in config
	// notices into a link.
	URLConfigs string

	// URLRuleDoc is a {name} URL template for cross-rule links. When
	// empty, replacement links fall back to relative paths derived from
	// PathRuleDoc.
	URLRuleDoc string

	// PathRuleDoc is the {name} path template rule docs live at.
	// Empty means DefaultPathRuleDoc.
	PathRuleDoc string
}

const recommendedConfigName = "recommended"

type noticeContext struct {
	rule    plugin.Rule
	enabled []string
	opts    NoticeOptions
}

type noticeSpec struct {
	applies func(noticeContext) bool
	render  func(noticeContext) string
}

var noticeSpecs = map[NoticeKind]noticeSpec{
	NoticeConfigs: {
		applies: func(nc noticeContext) bool {
			return len(nc.enabled) > 1 || (len(nc.enabled) == 1 && nc.enabled[0] != recommendedConfigName)
		},
		render: renderConfigs,
	},
	NoticeConfigRecommended: {
		applies: func(nc noticeContext) bool {
			return len(nc.enabled) == 1 && nc.enabled[0] == recommendedConfigName
		},
		render: renderConfigRecommended,
	},
	NoticeDeprecated: {
		applies: func(nc noticeContext) bool { return nc.rule.Deprecated },
		render:  renderDeprecated,
	},
	NoticeFixable: {
		applies: func(nc noticeContext) bool { return nc.rule.Fixable },
		render: func(noticeContext) string {
			return "🔧 This rule is automatically fixable by the [`--fix` CLI option](https://eslint.org/docs/latest/user-guide/command-line-interface#--fix)."
		},
	},
	NoticeHasSuggestions: {
		applies: func(nc noticeContext) bool { return nc.rule.HasSuggestions },
		render: func(noticeContext) string {
			return "💡 This rule is manually fixable by [editor suggestions](https://eslint.org/docs/latest/use/core-concepts#rule-suggestions)."
		},
	},
	NoticeRequiresTypeChecking: {
		applies: func(nc noticeContext) bool { return nc.rule.RequiresTypeChecking },
		render: func(noticeContext) string {
			return "💭 This rule requires type information."
		},
	},
}

// ComposeNotices renders the notice lines for one rule's header. Each
// applicable notice contributes a blank line followed by its message line.
// Function-style rules carry no extractable metadata and always yield an
// empty set.
func ComposeNotices(rule plugin.Rule, configsEnabled []string, opts NoticeOptions) []string {
	if rule.FunctionStyle {
		return nil
	}

	nc := noticeContext{
		rule:    rule,
		enabled: filterConfigs(configsEnabled, opts.IgnoreConfigs),
		opts:    opts,
	}

	order := opts.Order
	if len(order) == 0 {
		order = CanonicalNoticeOrder
	}

	var lines []string
	for _, kind := range order {
		spec, ok := noticeSpecs[kind]
		if !ok || !spec.applies(nc) {
			continue
		}
		lines = append(lines, "", spec.render(nc))
	}
	return lines
}

func filterConfigs(enabled, ignored []string) []string {
	var kept []string
	for _, name := range enabled {
		if slices.Contains(ignored, name) {
			continue
		}
		kept = append(kept, name)
	}
	slices.Sort(kept)
	return kept
}

func renderConfigs(nc noticeContext) string {
	names := make([]string, len(nc.enabled))
	for i, name := range nc.enabled {
		names[i] = "`" + name + "`"
	}
	if len(names) == 1 {
		return fmt.Sprintf("💼 This rule is enabled in the %s %s.", names[0], configsWord(nc.opts.URLConfigs, false))
	}
	return fmt.Sprintf("💼 This rule is enabled in the following %s: %s.", configsWord(nc.opts.URLConfigs, true), strings.Join(names, ", "))
}

func renderConfigRecommended(nc noticeContext) string {
	return fmt.Sprintf("✅ This rule is enabled in the `%s` %s.", recommendedConfigName, configsWord(nc.opts.URLConfigs, false))
}

func configsWord(url string, plural bool) string {
	word := "config"
	if plural {
		word = "configs"
	}
	if url == "" {
		return word
	}
	return fmt.Sprintf("[%s](%s)", word, url)
}

func renderDeprecated(nc noticeContext) string {
	message := "❌ This rule is deprecated."
	if len(nc.rule.ReplacedBy) == 0 {
		return message
	}
	links := make([]string, len(nc.rule.ReplacedBy))
	for i, name := range nc.rule.ReplacedBy {
		links[i] = fmt.Sprintf("[`%s`](%s)", name, replacementLink(nc.rule.Name, name, nc.opts))
	}
	return fmt.Sprintf("%s It was replaced by %s.", message, strings.Join(links, ", "))
}

// replacementLink resolves where a replacement rule's doc lives, as seen
// from the deprecated rule's own doc.
func replacementLink(from, to string, opts NoticeOptions) string {
	if opts.URLRuleDoc != "" {
		return ExpandNameTemplate(opts.URLRuleDoc, to)
	}

	template := opts.PathRuleDoc
	if template == "" {
		template = DefaultPathRuleDoc
	}
	fromPath := ExpandNameTemplate(template, from)
	toPath := ExpandNameTemplate(template, to)

	rel, err := filepath.Rel(filepath.Dir(fromPath), toPath)
	if err != nil {
		return filepath.ToSlash(toPath)
	}
	return filepath.ToSlash(rel)
}
