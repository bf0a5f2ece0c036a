package docs

import (
	"fmt"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/langdetect"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/markdown"
)

// CheckCodeSamples reports fenced code blocks that carry no language tag,
// suggesting one detected from the block's content. Blocks with no content
// at all are skipped: there is nothing to detect a language from.
func CheckCodeSamples(ruleName, body string) []Diagnostic {
	var diags []Diagnostic
	for _, fence := range markdown.Fences([]byte(body)) {
		if fence.Info != "" || fence.Code == "" {
			continue
		}
		suggested := langdetect.Detect([]byte(fence.Code))
		diags = append(diags, Diagnostic{
			Rule:    ruleName,
			Message: fmt.Sprintf("code sample at line %d has no language tag: suggest %q", fence.Line, suggested),
		})
	}
	return diags
}
