// Package config defines the user-facing configuration for
// eslint-doc-generator. The types here are plain data with YAML, JSON, and
// TOML tags; discovery, merging, environment handling, and validation live
// in internal/configloader.
package config

import (
	"fmt"
	"strings"
)

// Config captures every generation option a project can persist in a config
// file. Zero values mean "use the built-in default", so a merged Config can
// be handed to the CLI layer without further normalization.
type Config struct {
	// PathRuleDoc is the path template rule docs live at, relative to the
	// project root. The {name} placeholder expands to the rule name.
	PathRuleDoc string `yaml:"path_rule_doc,omitempty" json:"path_rule_doc" toml:"path_rule_doc"`

	// PathRuleList is the document carrying the generated rules table.
	PathRuleList string `yaml:"path_rule_list,omitempty" json:"path_rule_list" toml:"path_rule_list"`

	// URLConfigs turns mentions of configs in notices and the list legend
	// into links to the plugin's config documentation.
	URLConfigs string `yaml:"url_configs,omitempty" json:"url_configs" toml:"url_configs"`

	// URLRuleDoc is a URL template ({name} placeholder) used for links to
	// rule docs instead of relative file paths.
	URLRuleDoc string `yaml:"url_rule_doc,omitempty" json:"url_rule_doc" toml:"url_rule_doc"`

	// TitleFormat selects the rule doc title style.
	TitleFormat string `yaml:"rule_doc_title_format,omitempty" json:"rule_doc_title_format" toml:"rule_doc_title_format"`

	// Notices selects and orders the header notices. Empty means the
	// default notice set in canonical order.
	Notices []string `yaml:"rule_doc_notices,omitempty" json:"rule_doc_notices" toml:"rule_doc_notices"`

	// SectionInclude lists headings every rule doc must contain.
	SectionInclude []string `yaml:"rule_doc_section_include,omitempty" json:"rule_doc_section_include" toml:"rule_doc_section_include"`

	// SectionExclude lists headings no rule doc may contain.
	SectionExclude []string `yaml:"rule_doc_section_exclude,omitempty" json:"rule_doc_section_exclude" toml:"rule_doc_section_exclude"`

	// SectionOptions controls the options-section check: rules with schema
	// options must document them, rules without must not. Nil means enabled.
	SectionOptions *bool `yaml:"rule_doc_section_options,omitempty" json:"rule_doc_section_options" toml:"rule_doc_section_options"`

	// CheckCodeSamples reports fenced code blocks missing a language tag.
	CheckCodeSamples bool `yaml:"check_code_samples,omitempty" json:"check_code_samples" toml:"check_code_samples"`

	// IgnoreConfigs hides the named configs from notices, badges, and the
	// list legend.
	IgnoreConfigs []string `yaml:"ignore_config,omitempty" json:"ignore_config" toml:"ignore_config"`

	// ConfigEmojis overrides config badge emojis, as name=emoji pairs.
	ConfigEmojis []string `yaml:"config_emoji,omitempty" json:"config_emoji" toml:"config_emoji"`

	// RuleListColumns selects and orders the rules table columns. Empty
	// means all applicable columns in canonical order.
	RuleListColumns []string `yaml:"rule_list_columns,omitempty" json:"rule_list_columns" toml:"rule_list_columns"`

	// RuleListSplit partitions the rules table into sections, by "type" or
	// by "deprecated".
	RuleListSplit string `yaml:"rule_list_split,omitempty" json:"rule_list_split" toml:"rule_list_split"`

	// IgnoreDeprecatedRules excludes deprecated rules from the rules table.
	IgnoreDeprecatedRules bool `yaml:"ignore_deprecated_rules,omitempty" json:"ignore_deprecated_rules" toml:"ignore_deprecated_rules"`

	// InitRuleDocs scaffolds missing rule docs instead of failing.
	InitRuleDocs bool `yaml:"init_rule_docs,omitempty" json:"init_rule_docs" toml:"init_rule_docs"`

	// RequireDeprecatedDoc makes a missing doc fatal for deprecated rules
	// too, instead of skipping them.
	RequireDeprecatedDoc bool `yaml:"require_deprecated_doc,omitempty" json:"require_deprecated_doc" toml:"require_deprecated_doc"`

	// Formatter post-processes generated markdown: "default" normalizes
	// whitespace, "none" writes documents as merged.
	Formatter string `yaml:"formatter,omitempty" json:"formatter" toml:"formatter"`

	// Check reports stale files and exits nonzero instead of writing.
	Check bool `yaml:"check,omitempty" json:"check" toml:"check"`

	// CLI-level options below are never read from config files.

	// Path is the plugin directory or manifest file to generate docs for.
	Path string `yaml:"-" json:"-" toml:"-"`

	// Debug enables verbose logging.
	Debug bool `yaml:"-" json:"-" toml:"-"`

	// ConfigFile is an explicit config file path overriding discovery.
	ConfigFile string `yaml:"-" json:"-" toml:"-"`

	// Color controls colored output: auto, always, or never.
	Color string `yaml:"-" json:"-" toml:"-"`
}

// Default values applied by NewConfig. The generation packages fall back to
// the same values when handed empty strings, so these exist mainly so config
// templates and help text can show them.
const (
	DefaultPathRuleDoc  = "docs/rules/{name}.md"
	DefaultPathRuleList = "README.md"
	DefaultTitleFormat  = "desc-parens-prefix-name"
	DefaultFormatter    = "default"
)

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		PathRuleDoc:  DefaultPathRuleDoc,
		PathRuleList: DefaultPathRuleList,
		TitleFormat:  DefaultTitleFormat,
		Formatter:    DefaultFormatter,
		Color:        "auto",
	}
}

// SectionOptionsEnabled reports whether the options-section check is on.
func (c *Config) SectionOptionsEnabled() bool {
	return c.SectionOptions == nil || *c.SectionOptions
}

// EmojiOverrides parses the ConfigEmojis pairs into a map keyed by config
// name. Pair syntax is name=emoji with both halves non-empty.
func (c *Config) EmojiOverrides() (map[string]string, error) {
	if len(c.ConfigEmojis) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(c.ConfigEmojis))
	for _, pair := range c.ConfigEmojis {
		name, emoji, ok := strings.Cut(pair, "=")
		if !ok || name == "" || emoji == "" {
			return nil, fmt.Errorf("invalid config emoji %q: expected name=emoji", pair)
		}
		overrides[name] = emoji
	}
	return overrides, nil
}
