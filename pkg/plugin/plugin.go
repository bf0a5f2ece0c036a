// Package plugin loads lint-plugin manifests and resolves their
// configuration presets.
//
// A manifest is the machine-readable description of an ESLint-style plugin:
// the plugin name, a rule registry with per-rule metadata, and named configs
// that enable subsets of the rules. Manifests are JSON, YAML, or TOML and
// conventionally live next to the plugin as eslint-plugin.{json,yml,yaml,toml}.
package plugin

import (
	"slices"
	"strings"
)

// Plugin is a loaded manifest.
type Plugin struct {
	// Name is the plugin name exactly as the manifest states it.
	Name string

	// Prefix is Name with any eslint-plugin- prefix stripped. Scoped names
	// keep their scope: @scope/eslint-plugin-foo becomes @scope/foo and
	// @scope/eslint-plugin becomes @scope.
	Prefix string

	// Rules is the rule registry keyed by unprefixed rule name.
	Rules map[string]Rule

	// Configs holds the named configuration presets keyed by config name.
	Configs map[string]Config
}

// RuleNames returns every registry rule name in sorted order. Generation
// processes rules in exactly this order, so output is deterministic for a
// given manifest.
func (p *Plugin) RuleNames() []string {
	names := make([]string, 0, len(p.Rules))
	for name := range p.Rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Rule returns the named rule from the registry.
func (p *Plugin) Rule(name string) (Rule, bool) {
	rule, ok := p.Rules[name]
	return rule, ok
}

// Rule is one rule definition from the manifest registry.
type Rule struct {
	// Name is the rule's unprefixed, plugin-unique name.
	Name string

	// FunctionStyle marks a rule whose manifest entry is not a mapping.
	// Such rules carry no extractable metadata: every other field is zero.
	FunctionStyle bool

	// Description is free-text prose describing the rule, "" when absent.
	Description string

	// URL is the rule's documentation URL, "" when absent.
	URL string

	// Type categorizes the rule ("problem", "suggestion", or "layout").
	Type string

	// Fixable reports whether the rule supports automatic fixing.
	Fixable bool

	// HasSuggestions reports whether the rule offers editor suggestions.
	HasSuggestions bool

	// RequiresTypeChecking reports whether the rule needs type information.
	RequiresTypeChecking bool

	// Deprecated marks a rule retained only for compatibility.
	Deprecated bool

	// ReplacedBy names the rules that superseded a deprecated rule.
	ReplacedBy []string

	// Schema is the rule's options schema, zero when none is declared.
	Schema Schema
}

// Config is one named preset from the manifest.
type Config struct {
	// Name is the config's name as declared in the manifest.
	Name string

	// Extends names other configs in the same manifest whose rule entries
	// this config inherits.
	Extends []string

	// Rules maps rule references (usually plugin-prefixed) to whether the
	// configured severity enables the rule. A false entry switches a rule
	// off even when an extended config enabled it.
	Rules map[string]bool
}

// derivePrefix computes the rule-name prefix for a plugin name. The npm
// convention drops the eslint-plugin- marker and keeps any scope:
//
//	eslint-plugin-example        -> example
//	@scope/eslint-plugin-example -> @scope/example
//	@scope/eslint-plugin         -> @scope
//	example                      -> example
func derivePrefix(name string) string {
	scope := ""
	rest := name

	if strings.HasPrefix(name, "@") {
		if idx := strings.Index(name, "/"); idx >= 0 {
			scope, rest = name[:idx], name[idx+1:]
		}
	}

	switch {
	case rest == "eslint-plugin" && scope != "":
		return scope
	case strings.HasPrefix(rest, "eslint-plugin-"):
		rest = strings.TrimPrefix(rest, "eslint-plugin-")
	}

	if scope != "" {
		return scope + "/" + rest
	}
	return rest
}
