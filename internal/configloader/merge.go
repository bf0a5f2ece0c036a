package configloader

import "github.com/MichaelDeBoey/eslint-doc-generator/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings: override overwrites base if non-empty
//   - Booleans: override sets base only when true (a layer cannot unset)
//   - *bool: override overwrites base if non-nil
//   - Slices: override replaces base entirely if non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Strings: override overwrites base if set
	if override.PathRuleDoc != "" {
		result.PathRuleDoc = override.PathRuleDoc
	}
	if override.PathRuleList != "" {
		result.PathRuleList = override.PathRuleList
	}
	if override.URLConfigs != "" {
		result.URLConfigs = override.URLConfigs
	}
	if override.URLRuleDoc != "" {
		result.URLRuleDoc = override.URLRuleDoc
	}
	if override.TitleFormat != "" {
		result.TitleFormat = override.TitleFormat
	}
	if override.RuleListSplit != "" {
		result.RuleListSplit = override.RuleListSplit
	}
	if override.Formatter != "" {
		result.Formatter = override.Formatter
	}

	// Booleans: only a true override is detectable over the zero value, so
	// a layer can enable but not disable these.
	if override.CheckCodeSamples {
		result.CheckCodeSamples = true
	}
	if override.IgnoreDeprecatedRules {
		result.IgnoreDeprecatedRules = true
	}
	if override.InitRuleDocs {
		result.InitRuleDocs = true
	}
	if override.RequireDeprecatedDoc {
		result.RequireDeprecatedDoc = true
	}
	if override.Check {
		result.Check = true
	}

	// Tri-state: nil means "not set by this layer"
	if override.SectionOptions != nil {
		result.SectionOptions = override.SectionOptions
	}

	// Slices: override replaces base entirely if non-nil
	if override.Notices != nil {
		result.Notices = override.Notices
	}
	if override.SectionInclude != nil {
		result.SectionInclude = override.SectionInclude
	}
	if override.SectionExclude != nil {
		result.SectionExclude = override.SectionExclude
	}
	if override.IgnoreConfigs != nil {
		result.IgnoreConfigs = override.IgnoreConfigs
	}
	if override.ConfigEmojis != nil {
		result.ConfigEmojis = override.ConfigEmojis
	}
	if override.RuleListColumns != nil {
		result.RuleListColumns = override.RuleListColumns
	}

	// CLI-level fields only ever arrive through the CLI override layer.
	if override.Path != "" {
		result.Path = override.Path
	}
	if override.Debug {
		result.Debug = true
	}
	if override.ConfigFile != "" {
		result.ConfigFile = override.ConfigFile
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking
// precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
