package plugin

import "slices"

// Schema is a rule's options schema as decoded manifest data. ESLint rule
// schemas are JSON Schema in either positional form (an array of option
// descriptors) or object form.
type Schema struct {
	raw any
}

// NewSchema wraps a decoded schema value.
func NewSchema(raw any) Schema {
	return Schema{raw: raw}
}

// Empty reports whether no schema was declared.
func (s Schema) Empty() bool {
	return s.raw == nil
}

// HasOptions reports whether the schema declares at least one configurable
// option: a positional form with at least one descriptor, or an object form
// with at least one key.
func (s Schema) HasOptions() bool {
	switch v := s.raw.(type) {
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return false
	}
}

// OptionNames returns every named option the schema declares, sorted and
// deduplicated. Positional descriptors without named properties contribute
// nothing.
func (s Schema) OptionNames() []string {
	names := optionNames(s.raw)
	slices.Sort(names)
	return slices.Compact(names)
}

// optionNames walks a schema value collecting property names. Array forms
// flatten each element; an items schema is followed before properties so
// array-of-object options surface their keys.
func optionNames(value any) []string {
	switch v := value.(type) {
	case []any:
		var names []string
		for _, item := range v {
			names = append(names, optionNames(item)...)
		}
		return names

	case map[string]any:
		if items, ok := v["items"]; ok {
			return optionNames(items)
		}
		if props, ok := v["properties"].(map[string]any); ok {
			names := make([]string, 0, len(props))
			for key := range props {
				names = append(names, key)
			}
			return names
		}
		return nil

	default:
		return nil
	}
}
