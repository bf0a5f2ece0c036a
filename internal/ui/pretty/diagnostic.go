package pretty

import (
	"fmt"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
)

// FormatDiagnostic formats a single validation finding for display under its
// doc's file header.
func (s *Styles) FormatDiagnostic(diag docs.Diagnostic) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		s.Error.Render("error"),
		s.Message.Render(diag.Message),
		s.RuleID.Render("("+diag.Rule+")"),
	)
}

// FormatFileHeader formats a doc path header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		issueWord := "issues"
		if issueCount == 1 {
			issueWord = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, issueWord))
	}
	return header
}
