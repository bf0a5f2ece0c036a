package docs

import (
	"fmt"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/markdown"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// Diagnostic is one non-fatal validation finding, attributed to the rule
// whose doc triggered it.
type Diagnostic struct {
	Rule    string
	Message string
}

func (d Diagnostic) String() string {
	return d.Rule + ": " + d.Message
}

// ValidatePolicy selects which document checks run.
type ValidatePolicy struct {
	// RequiredSections lists heading phrases every rule doc must contain.
	RequiredSections []string

	// ForbiddenSections lists heading phrases no rule doc may contain.
	ForbiddenSections []string

	// OptionsSection enforces that an "Options" or "Config" section is
	// present exactly when the rule's schema declares options.
	OptionsSection bool
}

// Validate checks one rule doc's pre-merge body against the policy and the
// rule's metadata. Option-name mentions are checked unconditionally: an
// undocumented option is a defect even when no section policy is in force.
func Validate(rule plugin.Rule, body string, policy ValidatePolicy) []Diagnostic {
	var diags []Diagnostic
	report := func(format string, args ...any) {
		diags = append(diags, Diagnostic{Rule: rule.Name, Message: fmt.Sprintf(format, args...)})
	}

	for _, section := range policy.RequiredSections {
		if !markdown.HasSection(body, section) {
			report("expected section %q: no matching heading found", section)
		}
	}

	for _, section := range policy.ForbiddenSections {
		if heading, ok := markdown.FindSectionHeading(body, section); ok {
			report("forbidden section %q: found heading %q", section, heading)
		}
	}

	if policy.OptionsSection {
		heading, found := findOptionsHeading(body)
		switch {
		case rule.Schema.HasOptions() && !found:
			report(`rule has options: expected an "Options" or "Config" section`)
		case !rule.Schema.HasOptions() && found:
			report("rule has no options: unexpected section %q", heading)
		}
	}

	for _, option := range rule.Schema.OptionNames() {
		if !strings.Contains(body, option) {
			report("option %q is not mentioned in the doc", option)
		}
	}

	return diags
}

func findOptionsHeading(body string) (string, bool) {
	for _, phrase := range []string{"Options", "Config"} {
		if heading, ok := markdown.FindSectionHeading(body, phrase); ok {
			return heading, true
		}
	}
	return "", false
}
