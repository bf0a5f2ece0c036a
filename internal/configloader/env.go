package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/config"
)

// envVarPrefix is the prefix for all eslint-doc-generator environment variables.
const envVarPrefix = "ESLINT_DOC_GEN_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"PATH_RULE_DOC":            {field: "path_rule_doc", typ: envTypeString},
	"PATH_RULE_LIST":           {field: "path_rule_list", typ: envTypeString},
	"URL_CONFIGS":              {field: "url_configs", typ: envTypeString},
	"URL_RULE_DOC":             {field: "url_rule_doc", typ: envTypeString},
	"RULE_DOC_TITLE_FORMAT":    {field: "rule_doc_title_format", typ: envTypeString},
	"RULE_DOC_NOTICES":         {field: "rule_doc_notices", typ: envTypeSlice},
	"RULE_DOC_SECTION_INCLUDE": {field: "rule_doc_section_include", typ: envTypeSlice},
	"RULE_DOC_SECTION_EXCLUDE": {field: "rule_doc_section_exclude", typ: envTypeSlice},
	"RULE_DOC_SECTION_OPTIONS": {field: "rule_doc_section_options", typ: envTypeBool},
	"CHECK_CODE_SAMPLES":       {field: "check_code_samples", typ: envTypeBool},
	"IGNORE_CONFIG":            {field: "ignore_config", typ: envTypeSlice},
	"CONFIG_EMOJI":             {field: "config_emoji", typ: envTypeSlice},
	"RULE_LIST_COLUMNS":        {field: "rule_list_columns", typ: envTypeSlice},
	"RULE_LIST_SPLIT":          {field: "rule_list_split", typ: envTypeString},
	"IGNORE_DEPRECATED_RULES":  {field: "ignore_deprecated_rules", typ: envTypeBool},
	"INIT_RULE_DOCS":           {field: "init_rule_docs", typ: envTypeBool},
	"REQUIRE_DEPRECATED_DOC":   {field: "require_deprecated_doc", typ: envTypeBool},
	"FORMATTER":                {field: "formatter", typ: envTypeString},
	"CHECK":                    {field: "check", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ESLINT_DOC_GEN_
// (e.g., ESLINT_DOC_GEN_CHECK).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "path_rule_doc":
		cfg.PathRuleDoc = value
	case "path_rule_list":
		cfg.PathRuleList = value
	case "url_configs":
		cfg.URLConfigs = value
	case "url_rule_doc":
		cfg.URLRuleDoc = value
	case "rule_doc_title_format":
		cfg.TitleFormat = value
	case "rule_list_split":
		cfg.RuleListSplit = value
	case "formatter":
		cfg.Formatter = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "rule_doc_section_options":
		cfg.SectionOptions = &value
	case "check_code_samples":
		cfg.CheckCodeSamples = value
	case "ignore_deprecated_rules":
		cfg.IgnoreDeprecatedRules = value
	case "init_rule_docs":
		cfg.InitRuleDocs = value
	case "require_deprecated_doc":
		cfg.RequireDeprecatedDoc = value
	case "check":
		cfg.Check = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "rule_doc_notices":
		cfg.Notices = value
	case "rule_doc_section_include":
		cfg.SectionInclude = value
	case "rule_doc_section_exclude":
		cfg.SectionExclude = value
	case "ignore_config":
		cfg.IgnoreConfigs = value
	case "config_emoji":
		cfg.ConfigEmojis = value
	case "rule_list_columns":
		cfg.RuleListColumns = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"ESLINT_DOC_GEN_PATH_RULE_DOC":            "Path template for rule docs ({name} placeholder)",
		"ESLINT_DOC_GEN_PATH_RULE_LIST":           "Document carrying the rules table",
		"ESLINT_DOC_GEN_URL_CONFIGS":              "URL linked from config mentions",
		"ESLINT_DOC_GEN_URL_RULE_DOC":             "URL template for rule doc links ({name} placeholder)",
		"ESLINT_DOC_GEN_RULE_DOC_TITLE_FORMAT":    "Rule doc title style",
		"ESLINT_DOC_GEN_RULE_DOC_NOTICES":         "Comma-separated header notices, in order",
		"ESLINT_DOC_GEN_RULE_DOC_SECTION_INCLUDE": "Comma-separated required section headings",
		"ESLINT_DOC_GEN_RULE_DOC_SECTION_EXCLUDE": "Comma-separated forbidden section headings",
		"ESLINT_DOC_GEN_RULE_DOC_SECTION_OPTIONS": "Require options sections to match rule schemas: true or false",
		"ESLINT_DOC_GEN_CHECK_CODE_SAMPLES":       "Report untagged code fences: true or false",
		"ESLINT_DOC_GEN_IGNORE_CONFIG":            "Comma-separated configs to hide",
		"ESLINT_DOC_GEN_CONFIG_EMOJI":             "Comma-separated name=emoji badge overrides",
		"ESLINT_DOC_GEN_RULE_LIST_COLUMNS":        "Comma-separated rules table columns",
		"ESLINT_DOC_GEN_RULE_LIST_SPLIT":          "Rules table split: type or deprecated",
		"ESLINT_DOC_GEN_IGNORE_DEPRECATED_RULES":  "Exclude deprecated rules from the table: true or false",
		"ESLINT_DOC_GEN_INIT_RULE_DOCS":           "Scaffold missing rule docs: true or false",
		"ESLINT_DOC_GEN_REQUIRE_DEPRECATED_DOC":   "Missing docs fatal for deprecated rules: true or false",
		"ESLINT_DOC_GEN_FORMATTER":                "Markdown post-processing: default or none",
		"ESLINT_DOC_GEN_CHECK":                    "Report stale files instead of writing: true or false",
	}
}
