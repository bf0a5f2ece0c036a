// Package docgen orchestrates a documentation generation run: load the
// plugin, synthesize and merge every rule doc's header, regenerate the
// rules list, and aggregate validation diagnostics.
package docgen

import (
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/listing"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/mdformat"
)

// Options controls one generation run.
type Options struct {
	// PluginPath is the plugin directory or manifest file. Empty means
	// the current directory.
	PluginPath string

	// ProjectDir anchors every relative document path. Empty means the
	// plugin directory (or the manifest file's directory).
	ProjectDir string

	// Check generates in memory and reports stale files as diffs without
	// writing anything.
	Check bool

	// InitRuleDocs scaffolds missing rule docs instead of failing.
	InitRuleDocs bool

	// RequireDeprecatedDoc makes a missing doc fatal even for deprecated
	// rules. Without it, deprecated rules may omit documentation.
	RequireDeprecatedDoc bool

	// CheckCodeSamples reports fenced code blocks without a language tag.
	CheckCodeSamples bool

	// PathRuleDoc is the {name} template rule docs live at.
	// Empty means docs.DefaultPathRuleDoc.
	PathRuleDoc string

	// PathRuleList is the rules list document. Empty means README.md.
	PathRuleList string

	// URLConfigs links the word "config" in notices and legend.
	URLConfigs string

	// URLRuleDoc is a {name} URL template for cross-rule links.
	URLRuleDoc string

	// TitleFormat selects the rule-doc title style. Empty means
	// docs.DefaultTitleFormat.
	TitleFormat docs.TitleFormat

	// NoticeOrder selects and orders header notices. Empty means the
	// canonical order with every notice enabled.
	NoticeOrder []docs.NoticeKind

	// IgnoreConfigs hides configs from notices, badges, and legend.
	IgnoreConfigs []string

	// Policy is the per-doc validation policy.
	Policy docs.ValidatePolicy

	// ListColumns selects the rules table's emoji columns.
	ListColumns []listing.Column

	// ConfigEmojis overrides config badges in the rules table.
	ConfigEmojis map[string]string

	// Split partitions the rules table into per-group sections.
	Split listing.SplitKind

	// IgnoreDeprecated excludes deprecated rules from the rules table.
	IgnoreDeprecated bool

	// Formatter pretty-prints documents before writing. Nil means the
	// default normalizer.
	Formatter mdformat.Formatter
}

// DefaultPathRuleList is where the rules table lives when not configured.
const DefaultPathRuleList = "README.md"

func (o Options) effectivePluginPath() string {
	if o.PluginPath == "" {
		return "."
	}
	return o.PluginPath
}

func (o Options) effectivePathRuleDoc() string {
	if o.PathRuleDoc == "" {
		return docs.DefaultPathRuleDoc
	}
	return o.PathRuleDoc
}

func (o Options) effectivePathRuleList() string {
	if o.PathRuleList == "" {
		return DefaultPathRuleList
	}
	return o.PathRuleList
}

func (o Options) effectiveTitleFormat() docs.TitleFormat {
	if o.TitleFormat == "" {
		return docs.DefaultTitleFormat
	}
	return o.TitleFormat
}

func (o Options) effectiveFormatter() mdformat.Formatter {
	if o.Formatter == nil {
		return mdformat.Normalizer{}
	}
	return o.Formatter
}

func (o Options) noticeOptions() docs.NoticeOptions {
	return docs.NoticeOptions{
		Order:         o.NoticeOrder,
		IgnoreConfigs: o.IgnoreConfigs,
		URLConfigs:    o.URLConfigs,
		URLRuleDoc:    o.URLRuleDoc,
		PathRuleDoc:   o.effectivePathRuleDoc(),
	}
}

func (o Options) listingOptions() listing.Options {
	return listing.Options{
		Columns:          o.ListColumns,
		ConfigEmojis:     o.ConfigEmojis,
		IgnoreConfigs:    o.IgnoreConfigs,
		IgnoreDeprecated: o.IgnoreDeprecated,
		Split:            o.Split,
		URLConfigs:       o.URLConfigs,
		URLRuleDoc:       o.URLRuleDoc,
		PathRuleDoc:      o.effectivePathRuleDoc(),
		PathRuleList:     o.effectivePathRuleList(),
	}
}
