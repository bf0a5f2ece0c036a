package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docgen"
)

const (
	summaryDividerWidth = 40
	wordDoc             = "doc"
	wordDocs            = "docs"
)

func docWord(count int) string {
	if count == 1 {
		return wordDoc
	}
	return wordDocs
}

// FormatSummaryOneLine formats a run as a single line.
// Example: "3 docs updated (1 created), 7 rules checked, 2 issues".
func (s *Styles) FormatSummaryOneLine(result *docgen.Result) string {
	stats := result.Stats

	stale := stats.DocsStale
	if result.ListDiff.HasChanges() {
		stale++
	}
	written := stats.DocsWritten
	if result.ListWritten {
		written++
	}

	var parts []string

	switch {
	case stale > 0:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s out of date", stale, docWord(stale))))
	case written > 0:
		updated := fmt.Sprintf("%d %s updated", written, docWord(written))
		if stats.DocsCreated > 0 {
			updated += fmt.Sprintf(" (%d created)", stats.DocsCreated)
		}
		parts = append(parts, s.Success.Render(updated))
	default:
		parts = append(parts, s.Success.Render("docs up to date"))
	}

	ruleWord := "rules"
	if stats.Rules == 1 {
		ruleWord = "rule"
	}
	parts = append(parts, fmt.Sprintf("%d %s checked", stats.Rules, ruleWord))

	if stats.DocsSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.DocsSkipped)))
	}

	if stats.Diagnostics > 0 {
		issueWord := "issues"
		if stats.Diagnostics == 1 {
			issueWord = "issue"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.Diagnostics, issueWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats a run as a multi-line summary block.
func (s *Styles) FormatSummary(result *docgen.Result) string {
	stats := result.Stats

	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Plugin:           " +
		s.SummaryValue.Render(result.Plugin) + "\n")
	builder.WriteString("  Rules checked:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.Rules)) + "\n")

	builder.WriteString("\n")

	if stats.DocsWritten > 0 {
		builder.WriteString("  Docs written:     " +
			s.Success.Render(strconv.Itoa(stats.DocsWritten)) + "\n")
	}
	if stats.DocsCreated > 0 {
		builder.WriteString("  Docs created:     " +
			s.Success.Render(strconv.Itoa(stats.DocsCreated)) + "\n")
	}
	if stats.DocsUnchanged > 0 {
		builder.WriteString("  Docs unchanged:   " +
			s.SummaryValue.Render(strconv.Itoa(stats.DocsUnchanged)) + "\n")
	}
	if stats.DocsSkipped > 0 {
		builder.WriteString("  Docs skipped:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.DocsSkipped)) + "\n")
	}
	if stats.DocsStale > 0 {
		builder.WriteString("  Docs out of date: " +
			s.Failure.Render(strconv.Itoa(stats.DocsStale)) + "\n")
	}

	listState := s.SummaryValue.Render("unchanged")
	switch {
	case result.ListDiff.HasChanges():
		listState = s.Failure.Render("out of date")
	case result.ListWritten:
		listState = s.Success.Render("updated")
	}
	builder.WriteString("  Rules list:       " + listState + "\n")

	builder.WriteString("\n")

	issueValue := s.SummaryValue.Render(strconv.Itoa(stats.Diagnostics))
	if stats.Diagnostics > 0 {
		issueValue = s.Error.Render(strconv.Itoa(stats.Diagnostics))
	}
	builder.WriteString("  Issues:           " + issueValue + "\n")

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.Diagnostics > 0:
		builder.WriteString(s.Failure.Render("Validation failed"))
	case stale(result):
		builder.WriteString(s.Failure.Render("Docs out of date"))
	case stats.DocsWritten > 0 || result.ListWritten:
		builder.WriteString(s.Success.Render("Docs updated"))
	default:
		builder.WriteString(s.Success.Render("Docs up to date"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func stale(result *docgen.Result) bool {
	return result.Stats.DocsStale > 0 || result.ListDiff.HasChanges()
}
