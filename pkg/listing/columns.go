package listing

import "fmt"

// Column identifies one emoji column of the rules table. Name and
// description columns are always present and are not modeled here.
type Column string

const (
	ColumnConfigs              Column = "configs"
	ColumnFixable              Column = "fixable"
	ColumnHasSuggestions       Column = "has-suggestions"
	ColumnRequiresTypeChecking Column = "requires-type-checking"
	ColumnDeprecated           Column = "deprecated"
)

// DefaultColumns is the column set used when none is configured.
var DefaultColumns = []Column{
	ColumnConfigs,
	ColumnFixable,
	ColumnHasSuggestions,
	ColumnRequiresTypeChecking,
	ColumnDeprecated,
}

var columnHeaders = map[Column]string{
	ColumnConfigs:              "💼",
	ColumnFixable:              "🔧",
	ColumnHasSuggestions:       "💡",
	ColumnRequiresTypeChecking: "💭",
	ColumnDeprecated:           "❌",
}

// ParseColumn returns the column named by s.
func ParseColumn(s string) (Column, error) {
	for _, col := range DefaultColumns {
		if s == string(col) {
			return col, nil
		}
	}
	return "", fmt.Errorf("unknown rules-list column %q", s)
}

// activeColumns keeps the requested columns that at least one entry
// exhibits. An all-empty column carries no information and only widens
// the table.
func activeColumns(requested []Column, entries []ruleEntry) []Column {
	var active []Column
	for _, col := range requested {
		if exhibits(col, entries) {
			active = append(active, col)
		}
	}
	return active
}

func exhibits(col Column, entries []ruleEntry) bool {
	for _, entry := range entries {
		switch col {
		case ColumnConfigs:
			if len(entry.configs) > 0 {
				return true
			}
		case ColumnFixable:
			if entry.rule.Fixable {
				return true
			}
		case ColumnHasSuggestions:
			if entry.rule.HasSuggestions {
				return true
			}
		case ColumnRequiresTypeChecking:
			if entry.rule.RequiresTypeChecking {
				return true
			}
		case ColumnDeprecated:
			if entry.rule.Deprecated {
				return true
			}
		}
	}
	return false
}
