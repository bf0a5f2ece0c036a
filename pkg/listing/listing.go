// Package listing renders the auto-generated rules table of the plugin's
// top-level document.
//
// The table lives between two marker lines. Everything between them is
// machine-owned and wholly replaced each run; the rest of the document is
// never touched.
package listing

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/markdown"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// Marker lines bounding the machine-owned region of the rules list
// document.
const (
	BeginRulesListMarker = "<!-- begin auto-generated rules list -->"
	EndRulesListMarker   = "<!-- end auto-generated rules list -->"
)

// ErrMarkersNotFound reports a rules list document without both markers.
var ErrMarkersNotFound = errors.New("rules list markers not found")

// SplitKind selects how the table is partitioned into sections.
type SplitKind string

const (
	SplitNone       SplitKind = ""
	SplitType       SplitKind = "type"
	SplitDeprecated SplitKind = "deprecated"
)

// ParseSplitKind returns the split kind named by s.
func ParseSplitKind(s string) (SplitKind, error) {
	switch kind := SplitKind(s); kind {
	case SplitNone, SplitType, SplitDeprecated:
		return kind, nil
	}
	return "", fmt.Errorf("unknown rule-list split %q (supported: type, deprecated)", s)
}

// Options carries the knobs that shape the rules table.
type Options struct {
	// Columns selects which emoji columns may render. Empty means
	// DefaultColumns. A requested column still only renders when at
	// least one listed rule exhibits its property.
	Columns []Column

	// ConfigEmojis overrides the badge for specific config names.
	ConfigEmojis map[string]string

	// IgnoreConfigs removes configs from badges and legend.
	IgnoreConfigs []string

	// IgnoreDeprecated excludes deprecated rules from the listing.
	IgnoreDeprecated bool

	// Split partitions the table into per-group sections.
	Split SplitKind

	// URLConfigs, when set, links the word "config" in legend lines.
	URLConfigs string

	// URLRuleDoc is a {name} URL template for rule name links. When empty,
	// links are paths relative to the rules list document.
	URLRuleDoc string

	// PathRuleDoc is the {name} path template rule docs live at.
	PathRuleDoc string

	// PathRuleList is the path of the rules list document itself, the
	// base for relative links.
	PathRuleList string
}

type ruleEntry struct {
	rule    plugin.Rule
	configs []string
}

// Generate renders the full rules-list region: legend lines, then one
// table per group. The returned text carries no trailing newline.
func Generate(p *plugin.Plugin, configs plugin.ConfigsToRules, opts Options) string {
	entries := collectEntries(p, configs, opts)

	requested := opts.Columns
	if len(requested) == 0 {
		requested = DefaultColumns
	}
	cols := activeColumns(requested, entries)
	badges := ConfigBadges(keptConfigNames(configs, opts.IgnoreConfigs), opts.ConfigEmojis)

	var blocks [][]string
	if legend := legendLines(cols, badges, opts.URLConfigs); len(legend) > 0 {
		blocks = append(blocks, legend)
	}
	for _, group := range splitGroups(entries, opts.Split) {
		if group.title != "" {
			blocks = append(blocks, []string{"### " + group.title})
		}
		blocks = append(blocks, renderTable(group.entries, cols, badges, opts))
	}

	var lines []string
	for i, block := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	return strings.Join(lines, "\n")
}

// UpdateDocument replaces the region between the rules-list markers with
// generated content. Both markers must already be present: the document's
// author decides where the table lives.
func UpdateDocument(content, generated string) (string, error) {
	lines := markdown.SplitLines(content)
	begin := markdown.MarkerIndex(lines, BeginRulesListMarker)
	end := markdown.MarkerIndex(lines, EndRulesListMarker)
	if begin == -1 || end == -1 || end < begin {
		return "", fmt.Errorf("%w: expected %q and %q", ErrMarkersNotFound, BeginRulesListMarker, EndRulesListMarker)
	}

	out := make([]string, 0, begin+1+len(lines)-end+2)
	out = append(out, lines[:begin+1]...)
	out = append(out, "")
	out = append(out, markdown.SplitLines(generated)...)
	out = append(out, "")
	out = append(out, lines[end:]...)
	return markdown.JoinLines(out), nil
}

func collectEntries(p *plugin.Plugin, configs plugin.ConfigsToRules, opts Options) []ruleEntry {
	var entries []ruleEntry
	for _, name := range p.RuleNames() {
		rule, ok := p.Rule(name)
		if !ok {
			continue
		}
		if opts.IgnoreDeprecated && rule.Deprecated {
			continue
		}
		enabled := slices.DeleteFunc(configs.ConfigsEnabling(name), func(config string) bool {
			return slices.Contains(opts.IgnoreConfigs, config)
		})
		entries = append(entries, ruleEntry{rule: rule, configs: enabled})
	}
	return entries
}

func keptConfigNames(configs plugin.ConfigsToRules, ignored []string) []string {
	var names []string
	for _, name := range configs.ConfigNames() {
		if slices.Contains(ignored, name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

func legendLines(cols []Column, badges map[string]string, urlConfigs string) []string {
	var lines []string

	if slices.Contains(cols, ColumnConfigs) {
		badgeNames := make([]string, 0, len(badges))
		for name := range badges {
			badgeNames = append(badgeNames, name)
		}
		slices.Sort(badgeNames)
		for _, name := range badgeNames {
			lines = append(lines, fmt.Sprintf("%s Enabled in the `%s` %s.", badges[name], name, legendConfigWord(urlConfigs)))
		}
	}
	if slices.Contains(cols, ColumnFixable) {
		lines = append(lines, "🔧 Automatically fixable by the [`--fix` CLI option](https://eslint.org/docs/latest/user-guide/command-line-interface#--fix).")
	}
	if slices.Contains(cols, ColumnHasSuggestions) {
		lines = append(lines, "💡 Manually fixable by [editor suggestions](https://eslint.org/docs/latest/use/core-concepts#rule-suggestions).")
	}
	if slices.Contains(cols, ColumnRequiresTypeChecking) {
		lines = append(lines, "💭 Requires type information.")
	}
	if slices.Contains(cols, ColumnDeprecated) {
		lines = append(lines, "❌ Deprecated.")
	}

	// Trailing backslashes hard-break the legend into one rendered block.
	for i := 0; i < len(lines)-1; i++ {
		lines[i] += "\\"
	}
	return lines
}

func legendConfigWord(url string) string {
	if url == "" {
		return "config"
	}
	return fmt.Sprintf("[config](%s)", url)
}

func renderTable(entries []ruleEntry, cols []Column, badges map[string]string, opts Options) []string {
	headers := []string{"Name", "Description"}
	for _, col := range cols {
		headers = append(headers, columnHeaders[col])
	}

	lines := []string{
		"| " + strings.Join(headers, " | ") + " |",
		"|" + strings.Repeat(" :-- |", len(headers)),
	}
	for _, entry := range entries {
		cells := []string{nameCell(entry.rule.Name, opts), descriptionCell(entry.rule.Description)}
		for _, col := range cols {
			cells = append(cells, cellValue(col, entry, badges))
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}
	return lines
}

func nameCell(name string, opts Options) string {
	return fmt.Sprintf("[%s](%s)", name, ruleDocLink(name, opts))
}

func ruleDocLink(name string, opts Options) string {
	if opts.URLRuleDoc != "" {
		return docs.ExpandNameTemplate(opts.URLRuleDoc, name)
	}

	template := opts.PathRuleDoc
	if template == "" {
		template = docs.DefaultPathRuleDoc
	}
	docPath := docs.ExpandNameTemplate(template, name)

	rel, err := filepath.Rel(filepath.Dir(opts.PathRuleList), docPath)
	if err != nil {
		return filepath.ToSlash(docPath)
	}
	return filepath.ToSlash(rel)
}

// descriptionCell escapes pipes so free-text descriptions cannot break the
// table.
func descriptionCell(description string) string {
	return strings.ReplaceAll(description, "|", "\\|")
}

func cellValue(col Column, entry ruleEntry, badges map[string]string) string {
	switch col {
	case ColumnConfigs:
		parts := make([]string, len(entry.configs))
		for i, name := range entry.configs {
			parts[i] = badges[name]
		}
		return strings.Join(parts, " ")
	case ColumnFixable:
		if entry.rule.Fixable {
			return "🔧"
		}
	case ColumnHasSuggestions:
		if entry.rule.HasSuggestions {
			return "💡"
		}
	case ColumnRequiresTypeChecking:
		if entry.rule.RequiresTypeChecking {
			return "💭"
		}
	case ColumnDeprecated:
		if entry.rule.Deprecated {
			return "❌"
		}
	}
	return ""
}

type ruleGroup struct {
	title   string
	entries []ruleEntry
}

// splitGroups partitions entries by the selected property. Entries where
// the property is unset come first without a heading; each distinct value
// then gets its own titled group, in sorted value order.
func splitGroups(entries []ruleEntry, split SplitKind) []ruleGroup {
	if split == SplitNone {
		return []ruleGroup{{entries: entries}}
	}

	key := func(entry ruleEntry) string {
		switch split {
		case SplitDeprecated:
			if entry.rule.Deprecated {
				return "deprecated"
			}
		case SplitType:
			return entry.rule.Type
		}
		return ""
	}

	byKey := make(map[string][]ruleEntry)
	for _, entry := range entries {
		k := key(entry)
		byKey[k] = append(byKey[k], entry)
	}

	var groups []ruleGroup
	if head, ok := byKey[""]; ok {
		groups = append(groups, ruleGroup{entries: head})
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if k == "" {
			continue
		}
		groups = append(groups, ruleGroup{title: upperFirst(k), entries: byKey[k]})
	}
	return groups
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
