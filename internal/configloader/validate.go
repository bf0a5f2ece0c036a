package configloader

import (
	"fmt"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/config"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/listing"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/mdformat"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the config key holding the invalid value (e.g., "rule_list_split").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings. Enum-valued
// fields are checked against the packages that consume them, so the accepted
// names can never drift from what generation actually supports.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.PathRuleDoc != "" && !strings.Contains(cfg.PathRuleDoc, "{name}") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "path_rule_doc",
			Value:   cfg.PathRuleDoc,
			Message: "must contain the {name} placeholder",
		})
	}

	if cfg.URLRuleDoc != "" && !strings.Contains(cfg.URLRuleDoc, "{name}") {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "url_rule_doc",
			Value:   cfg.URLRuleDoc,
			Message: "has no {name} placeholder; every rule will link to the same URL",
		})
	}

	if cfg.TitleFormat != "" {
		if _, err := docs.ParseTitleFormat(cfg.TitleFormat); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rule_doc_title_format",
				Value:   cfg.TitleFormat,
				Message: err.Error(),
			})
		}
	}

	for i, name := range cfg.Notices {
		if _, err := docs.ParseNoticeKind(name); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("rule_doc_notices[%d]", i),
				Value:   name,
				Message: err.Error(),
			})
		}
	}

	for i, name := range cfg.RuleListColumns {
		if _, err := listing.ParseColumn(name); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("rule_list_columns[%d]", i),
				Value:   name,
				Message: err.Error(),
			})
		}
	}

	if cfg.RuleListSplit != "" {
		if _, err := listing.ParseSplitKind(cfg.RuleListSplit); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rule_list_split",
				Value:   cfg.RuleListSplit,
				Message: err.Error(),
			})
		}
	}

	if cfg.Formatter != "" {
		if _, err := mdformat.New(mdformat.Kind(cfg.Formatter)); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "formatter",
				Value:   cfg.Formatter,
				Message: err.Error(),
			})
		}
	}

	if _, err := cfg.EmojiOverrides(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "config_emoji",
			Value:   cfg.ConfigEmojis,
			Message: err.Error(),
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes the file path in
// every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
