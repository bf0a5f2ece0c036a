package docgen

import (
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
)

// RuleOutcome is what happened to a single rule's documentation.
type RuleOutcome struct {
	// Rule is the bare rule name.
	Rule string

	// Path is the doc file the rule maps to.
	Path string

	// Skipped reports a deprecated rule whose doc does not exist and is
	// not required.
	Skipped bool

	// Created reports that the doc was scaffolded on this run.
	Created bool

	// Written reports that the doc file changed on disk.
	Written bool

	// Diff holds the pending change in check mode, nil when up to date.
	Diff *docs.Diff

	// Diagnostics are the doc's validation findings.
	Diagnostics []docs.Diagnostic
}

// Stale reports whether check mode found the doc out of date.
func (o RuleOutcome) Stale() bool {
	return o.Diff.HasChanges()
}

// Stats aggregates counters across a run.
type Stats struct {
	Rules         int
	DocsWritten   int
	DocsUnchanged int
	DocsCreated   int
	DocsSkipped   int
	DocsStale     int
	Diagnostics   int
}

// Result is the aggregate outcome of a generation run.
type Result struct {
	// Plugin is the loaded plugin's name.
	Plugin string

	// Prefix qualifies rule names, usually derived from the plugin name.
	Prefix string

	// Outcomes holds one entry per rule, in registry order.
	Outcomes []RuleOutcome

	// ListPath is the rules list document that was regenerated.
	ListPath string

	// ListWritten reports that the rules list changed on disk.
	ListWritten bool

	// ListDiff holds the pending rules list change in check mode.
	ListDiff *docs.Diff

	// Stats summarizes the run.
	Stats Stats
}

func (r *Result) accumulate(outcome RuleOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.Stats.Rules++
	r.Stats.Diagnostics += len(outcome.Diagnostics)

	switch {
	case outcome.Skipped:
		r.Stats.DocsSkipped++
		return
	case outcome.Created:
		r.Stats.DocsCreated++
	}

	switch {
	case outcome.Written:
		r.Stats.DocsWritten++
	case outcome.Stale():
		r.Stats.DocsStale++
	default:
		r.Stats.DocsUnchanged++
	}
}

// Diagnostics flattens every outcome's findings in registry order.
func (r *Result) Diagnostics() []docs.Diagnostic {
	if r == nil {
		return nil
	}
	var all []docs.Diagnostic
	for _, outcome := range r.Outcomes {
		all = append(all, outcome.Diagnostics...)
	}
	return all
}

// Stale reports whether check mode found any document out of date.
func (r *Result) Stale() bool {
	if r == nil {
		return false
	}
	if r.ListDiff.HasChanges() {
		return true
	}
	for _, outcome := range r.Outcomes {
		if outcome.Stale() {
			return true
		}
	}
	return false
}

// Failed reports whether the run should exit non-zero: any validation
// diagnostic, or stale files in check mode.
func (r *Result) Failed() bool {
	if r == nil {
		return false
	}
	return r.Stats.Diagnostics > 0 || r.Stale()
}

// Diffs collects every pending change from a check-mode run, rule docs
// first, rules list last.
func (r *Result) Diffs() []*docs.Diff {
	if r == nil {
		return nil
	}
	var diffs []*docs.Diff
	for _, outcome := range r.Outcomes {
		if outcome.Stale() {
			diffs = append(diffs, outcome.Diff)
		}
	}
	if r.ListDiff.HasChanges() {
		diffs = append(diffs, r.ListDiff)
	}
	return diffs
}
