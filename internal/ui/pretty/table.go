package pretty

import (
	"fmt"
	"strings"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// Table formatting constants.
const (
	yesSymbol        = "yes"
	tablePadding     = 2
	tableColumnCount = 5 // NAME, DESCRIPTION, TYPE, FIXABLE, DEPRECATED
	minNameWidth     = 12
	minDescWidth     = 30
	minTypeWidth     = 4  // len("TYPE")
	fixableWidth     = 7  // len("FIXABLE")
	deprecatedWidth  = 10 // len("DEPRECATED")
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single rule row in the rules listing.
type TableRow struct {
	Name        string
	Description string
	Type        string
	Fixable     bool
	Deprecated  bool
}

// TableFormatter renders a plugin's rules as a styled terminal table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a table formatter constrained to termWidth.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatRules renders every rule as a table row, in registry order.
func (t *TableFormatter) FormatRules(p *plugin.Plugin) string {
	if p == nil || len(p.Rules) == 0 {
		return ""
	}

	rows := collectRows(p)
	colWidths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, colWidths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatFooter(rows))
	builder.WriteString("\n")

	return builder.String()
}

// collectRows converts the plugin's rules to table rows in registry order.
func collectRows(p *plugin.Plugin) []TableRow {
	names := p.RuleNames()
	rows := make([]TableRow, 0, len(names))

	for _, name := range names {
		rule, ok := p.Rule(name)
		if !ok {
			continue
		}
		rows = append(rows, TableRow{
			Name:        rule.Name,
			Description: rule.Description,
			Type:        rule.Type,
			Fixable:     rule.Fixable,
			Deprecated:  rule.Deprecated,
		})
	}

	return rows
}

type columnWidths struct {
	name int
	desc int
	typ  int
}

// calculateColumnWidths determines column widths based on content,
// constrained to the terminal width by shrinking the description first.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		name: minNameWidth,
		desc: minDescWidth,
		typ:  minTypeWidth,
	}

	for _, row := range rows {
		if len(row.Name) > widths.name {
			widths.name = len(row.Name)
		}
		if len(row.Description) > widths.desc {
			widths.desc = len(row.Description)
		}
		if len(row.Type) > widths.typ {
			widths.typ = len(row.Type)
		}
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.desc = max(minDescWidth, widths.desc-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.name + widths.desc + widths.typ + fixableWidth + deprecatedWidth +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %s",
		widths.name, "NAME",
		widths.desc, "DESCRIPTION",
		widths.typ, "TYPE",
		fixableWidth, "FIXABLE",
		"DEPRECATED",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	fixable := ""
	if row.Fixable {
		fixable = yesSymbol
	}
	deprecated := ""
	if row.Deprecated {
		deprecated = yesSymbol
	}

	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %s",
		widths.name, truncateString(row.Name, widths.name),
		widths.desc, truncateString(row.Description, widths.desc),
		widths.typ, truncateString(row.Type, widths.typ),
		fixableWidth, fixable,
		deprecated,
	)

	if row.Deprecated {
		return t.styles.TableDeprecated.Render(content)
	}
	return content
}

// formatFooter formats the counts line below the table.
func (t *TableFormatter) formatFooter(rows []TableRow) string {
	var fixable, deprecated int
	for _, row := range rows {
		if row.Fixable {
			fixable++
		}
		if row.Deprecated {
			deprecated++
		}
	}

	ruleWord := "rules"
	if len(rows) == 1 {
		ruleWord = "rule"
	}

	parts := []string{fmt.Sprintf("%d %s", len(rows), ruleWord)}
	if fixable > 0 {
		parts = append(parts, fmt.Sprintf("%d fixable", fixable))
	}
	if deprecated > 0 {
		parts = append(parts, fmt.Sprintf("%d deprecated", deprecated))
	}

	return t.styles.TableLegend.Render(" " + strings.Join(parts, " | "))
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
