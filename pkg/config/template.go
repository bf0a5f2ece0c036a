package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template formats accepted by GenerateTemplate.
const (
	TemplateFormatYAML = "yaml"
	TemplateFormatJSON = "json"
)

// DefaultTemplateHeader precedes generated config files.
const DefaultTemplateHeader = `# eslint-doc-generator configuration.
# See https://github.com/MichaelDeBoey/eslint-doc-generator for details.

`

// TemplateOptions controls config template generation.
type TemplateOptions struct {
	// Full emits every option with its default value. The minimal template
	// shows only the most common options, commented out.
	Full bool

	// Format selects the output format, yaml (default) or json.
	Format string
}

// GenerateTemplate renders a starter config file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = TemplateFormatYAML
	}

	body := minimalTemplate
	if opts.Full {
		body = fullTemplate
	}

	switch format {
	case TemplateFormatYAML:
		return []byte(DefaultTemplateHeader + body), nil
	case TemplateFormatJSON:
		return templateToJSON([]byte(body))
	default:
		return nil, fmt.Errorf("unknown template format %q", opts.Format)
	}
}

// templateToJSON converts a YAML template to JSON. Comments are dropped, so
// only options the template sets explicitly survive the conversion.
func templateToJSON(yamlBody []byte) ([]byte, error) {
	values := map[string]any{}
	if err := yaml.Unmarshal(yamlBody, &values); err != nil {
		return nil, fmt.Errorf("convert template: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(values); err != nil {
		return nil, fmt.Errorf("convert template: %w", err)
	}
	return buf.Bytes(), nil
}

const minimalTemplate = `# All options are optional; uncomment what the project needs.

# Path template for rule docs, relative to the project root.
# path_rule_doc: docs/rules/{name}.md

# Document carrying the generated rules table.
# path_rule_list: README.md

# Emoji overrides for config badges, as name=emoji pairs.
# config_emoji:
#   - recommended=☑️

# Report stale docs and exit nonzero instead of rewriting them.
# check: true
`

const fullTemplate = `# Path template for rule docs, relative to the project root. The {name}
# placeholder expands to the rule name.
path_rule_doc: docs/rules/{name}.md

# Document carrying the generated rules table.
path_rule_list: README.md

# Link mentions of configs in notices and the legend to the plugin's config
# documentation.
# url_configs: https://example.com/docs/configs

# URL template ({name} placeholder) for rule doc links, instead of relative
# file paths.
# url_rule_doc: https://example.com/docs/rules/{name}

# Rule doc title style. One of: desc-parens-prefix-name, desc-parens-name,
# desc, prefix-name, name.
rule_doc_title_format: desc-parens-prefix-name

# Header notices, in display order. Available kinds: configs,
# config-recommended, deprecated, fixable, has-suggestions,
# requires-type-checking.
# rule_doc_notices:
#   - configs
#   - deprecated
#   - fixable

# Section headings every rule doc must contain.
# rule_doc_section_include:
#   - Examples

# Section headings no rule doc may contain.
# rule_doc_section_exclude:
#   - More info

# Require an Options section exactly when a rule declares schema options.
rule_doc_section_options: true

# Report fenced code blocks missing a language tag.
check_code_samples: false

# Hide the named configs from notices, badges, and the legend.
# ignore_config:
#   - all

# Emoji overrides for config badges, as name=emoji pairs.
# config_emoji:
#   - recommended=☑️

# Rules table columns, in display order. Available columns: configs,
# fixable, has-suggestions, requires-type-checking, deprecated.
# rule_list_columns:
#   - configs
#   - fixable

# Split the rules table into sections, by rule "type" or by "deprecated".
# rule_list_split: type

# Exclude deprecated rules from the rules table.
ignore_deprecated_rules: false

# Scaffold missing rule docs instead of failing.
init_rule_docs: false

# Treat a missing doc as fatal for deprecated rules too.
require_deprecated_doc: false

# Markdown post-processing: "default" normalizes whitespace, "none" writes
# documents as merged.
formatter: default

# Report stale files and exit nonzero instead of writing.
check: false
`
