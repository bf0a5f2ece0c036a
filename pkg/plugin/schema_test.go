package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_HasOptions(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected bool
	}{
		{"absent", nil, false},
		{"empty positional", []any{}, false},
		{"positional descriptor", []any{map[string]any{"type": "object"}}, true},
		{"empty object form", map[string]any{}, false},
		{"object form", map[string]any{"type": "object"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSchema(tt.raw).HasOptions())
		})
	}
}

func TestSchema_OptionNames(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected []string
	}{
		{"absent", nil, nil},
		{
			"positional with properties",
			[]any{map[string]any{
				"type": "object",
				"properties": map[string]any{
					"allowList": map[string]any{"type": "array"},
					"max":       map[string]any{"type": "integer"},
				},
			}},
			[]string{"allowList", "max"},
		},
		{
			"object form with properties",
			map[string]any{
				"type":       "object",
				"properties": map[string]any{"ignoreCase": map[string]any{"type": "boolean"}},
			},
			[]string{"ignoreCase"},
		},
		{
			"items recursion",
			map[string]any{
				"type": "array",
				"items": map[string]any{
					"properties": map[string]any{"mode": map[string]any{}},
				},
			},
			[]string{"mode"},
		},
		{
			"duplicates collapse",
			[]any{
				map[string]any{"properties": map[string]any{"max": map[string]any{}}},
				map[string]any{"properties": map[string]any{"max": map[string]any{}}},
			},
			[]string{"max"},
		},
		{
			"positional without names",
			[]any{map[string]any{"type": "string", "enum": []any{"always", "never"}}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSchema(tt.raw).OptionNames())
		})
	}
}

func TestSchema_Empty(t *testing.T) {
	assert.True(t, NewSchema(nil).Empty())
	assert.False(t, NewSchema([]any{}).Empty())
	assert.False(t, NewSchema(map[string]any{}).Empty())
}
