// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldConfig     = "config"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Plugin fields.
	FieldPlugin  = "plugin"
	FieldPrefix  = "prefix"
	FieldRules   = "rules"
	FieldConfigs = "configs"

	// Run statistics fields.
	FieldRulesProcessed   = "rules_processed"
	FieldDocsWritten      = "docs_written"
	FieldDocsUnchanged    = "docs_unchanged"
	FieldDocsCreated      = "docs_created"
	FieldDocsSkipped      = "docs_skipped"
	FieldDocsStale        = "docs_stale"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldRule        = "rule"
	FieldType        = "type"
	FieldFixable     = "fixable"
	FieldDeprecated  = "deprecated"
	FieldDescription = "description"
)
