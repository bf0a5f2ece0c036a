package plugin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoad_JSONManifest(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.json", `{
		"name": "eslint-plugin-example",
		"rules": {
			"no-foo": {
				"meta": {
					"docs": {"description": "disallow foo.", "url": "https://example.com/no-foo"},
					"type": "suggestion",
					"fixable": "code",
					"hasSuggestions": true,
					"schema": [{"type": "object", "properties": {"allowList": {"type": "array"}}}]
				}
			},
			"no-bar": {
				"meta": {
					"deprecated": true,
					"replacedBy": ["no-foo"]
				}
			}
		},
		"configs": {
			"recommended": {
				"rules": {"example/no-foo": "error"}
			}
		}
	}`)

	p, err := Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "eslint-plugin-example", p.Name)
	assert.Equal(t, "example", p.Prefix)
	assert.Equal(t, []string{"no-bar", "no-foo"}, p.RuleNames())

	noFoo, ok := p.Rule("no-foo")
	require.True(t, ok)
	assert.Equal(t, "disallow foo.", noFoo.Description)
	assert.Equal(t, "https://example.com/no-foo", noFoo.URL)
	assert.Equal(t, "suggestion", noFoo.Type)
	assert.True(t, noFoo.Fixable)
	assert.True(t, noFoo.HasSuggestions)
	assert.False(t, noFoo.Deprecated)
	assert.Equal(t, []string{"allowList"}, noFoo.Schema.OptionNames())

	noBar, ok := p.Rule("no-bar")
	require.True(t, ok)
	assert.True(t, noBar.Deprecated)
	assert.Equal(t, []string{"no-foo"}, noBar.ReplacedBy)
	assert.True(t, noBar.Schema.Empty())

	recommended, ok := p.Configs["recommended"]
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"example/no-foo": true}, recommended.Rules)
}

func TestLoad_YAMLManifest(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.yml", `
name: eslint-plugin-example
rules:
  no-foo:
    meta:
      docs:
        description: disallow foo
        requiresTypeChecking: true
  legacy-rule: function
configs:
  recommended:
    rules:
      example/no-foo: 2
`)

	p, err := Load(context.Background(), dir)
	require.NoError(t, err)

	noFoo, ok := p.Rule("no-foo")
	require.True(t, ok)
	assert.Equal(t, "disallow foo", noFoo.Description)
	assert.True(t, noFoo.RequiresTypeChecking)
	assert.False(t, noFoo.FunctionStyle)

	legacy, ok := p.Rule("legacy-rule")
	require.True(t, ok)
	assert.True(t, legacy.FunctionStyle)
	assert.Empty(t, legacy.Description)
}

func TestLoad_TOMLManifest(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.toml", `
name = "eslint-plugin-example"

[rules.no-foo.meta]
fixable = "whitespace"

[rules.no-foo.meta.docs]
description = "disallow foo"

[configs.recommended.rules]
"example/no-foo" = 1
`)

	p, err := Load(context.Background(), dir)
	require.NoError(t, err)

	noFoo, ok := p.Rule("no-foo")
	require.True(t, ok)
	assert.True(t, noFoo.Fixable)
	assert.Equal(t, "disallow foo", noFoo.Description)
	assert.Equal(t, map[string]bool{"example/no-foo": true}, p.Configs["recommended"].Rules)
}

func TestLoad_ExplicitFilePath(t *testing.T) {
	dir := writeManifest(t, "custom-manifest.json", `{
		"name": "eslint-plugin-example",
		"rules": {"no-foo": {}}
	}`)

	p, err := Load(context.Background(), filepath.Join(dir, "custom-manifest.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"no-foo"}, p.RuleNames())
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_NoRules(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing rules key", `{"name": "eslint-plugin-example"}`},
		{"empty rules", `{"name": "eslint-plugin-example", "rules": {}}`},
		{"rules not a mapping", `{"name": "eslint-plugin-example", "rules": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeManifest(t, "eslint-plugin.json", tt.manifest)

			_, err := Load(context.Background(), dir)
			assert.ErrorIs(t, err, ErrNoRules)
		})
	}
}

func TestLoad_MissingName(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.json", `{"rules": {"no-foo": {}}}`)

	_, err := Load(context.Background(), dir)
	assert.ErrorIs(t, err, ErrManifest)
}

func TestLoad_MalformedManifest(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.json", `{not json`)

	_, err := Load(context.Background(), dir)
	assert.ErrorIs(t, err, ErrManifest)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.ini", `name=x`)

	_, err := Load(context.Background(), filepath.Join(dir, "eslint-plugin.ini"))
	assert.ErrorIs(t, err, ErrManifest)
}

func TestLoad_InvalidSeverity(t *testing.T) {
	dir := writeManifest(t, "eslint-plugin.json", `{
		"name": "eslint-plugin-example",
		"rules": {"no-foo": {}},
		"configs": {"recommended": {"rules": {"example/no-foo": "loud"}}}
	}`)

	_, err := Load(context.Background(), dir)
	assert.ErrorIs(t, err, ErrManifest)
}

func TestSeverityEnabled(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		enabled bool
		wantErr bool
	}{
		{"off string", "off", false, false},
		{"warn string", "warn", true, false},
		{"error string", "error", true, false},
		{"zero int", 0, false, false},
		{"one int", 1, true, false},
		{"two int64", int64(2), true, false},
		{"two float", float64(2), true, false},
		{"array head severity", []any{"error", map[string]any{"max": 3}}, true, false},
		{"array head off", []any{0, "opts"}, false, false},
		{"unknown string", "loud", false, true},
		{"out of range level", 3, false, true},
		{"fractional level", 1.5, false, true},
		{"empty array", []any{}, false, true},
		{"nested array head", []any{[]any{"error"}}, false, true},
		{"bool value", true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enabled, err := severityEnabled(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.enabled, enabled)
		})
	}
}

func TestDerivePrefix(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"eslint-plugin-example", "example"},
		{"@scope/eslint-plugin-example", "@scope/example"},
		{"@scope/eslint-plugin", "@scope"},
		{"example", "example"},
		{"@scope/example", "@scope/example"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, derivePrefix(tt.name), "plugin name: %s", tt.name)
	}
}
