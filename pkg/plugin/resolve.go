package plugin

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ConfigsToRules maps each config name to the set of unprefixed rule names
// it enables after extends resolution. It is computed once per run and
// read-only afterward.
type ConfigsToRules map[string]map[string]bool

// ConfigNames returns every config name in sorted order.
func (c ConfigsToRules) ConfigNames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ConfigsEnabling returns the sorted names of the configs that enable rule.
func (c ConfigsToRules) ConfigsEnabling(rule string) []string {
	var names []string
	for config, rules := range c {
		if rules[rule] {
			names = append(names, config)
		}
	}
	slices.Sort(names)
	return names
}

var (
	// ErrUnknownConfig indicates an extends entry names a config the
	// manifest does not declare.
	ErrUnknownConfig = errors.New("extends references unknown config")

	// ErrExtendsCycle indicates the extends chains loop.
	ErrExtendsCycle = errors.New("extends cycle")

	// ErrUnknownRule indicates a config references a rule of this plugin
	// that the registry does not contain.
	ErrUnknownRule = errors.New("config references unknown rule")
)

// ResolveConfigs flattens every preset's extends chain and returns the
// config-to-rules mapping. Only rules belonging to this plugin are kept,
// with the plugin prefix stripped; references to this plugin's rules that
// the registry does not contain are an error.
func ResolveConfigs(p *Plugin) (ConfigsToRules, error) {
	resolved := make(ConfigsToRules, len(p.Configs))

	for name := range p.Configs {
		switches, err := configSwitches(p, name, make(map[string]bool))
		if err != nil {
			return nil, err
		}

		enabled := make(map[string]bool)
		for rule, on := range switches {
			if on {
				enabled[rule] = true
			}
		}
		resolved[name] = enabled
	}

	return resolved, nil
}

// configSwitches computes the per-rule switches for one config with its
// extends chain applied. Parents are applied first, in declaration order,
// so the extending config's own entries win. The returned map keeps
// explicit false entries: a config may switch off a rule a parent enabled.
func configSwitches(p *Plugin, name string, visiting map[string]bool) (map[string]bool, error) {
	cfg, ok := p.Configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfig, name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("%w: %q", ErrExtendsCycle, name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	switches := make(map[string]bool)

	for _, parent := range cfg.Extends {
		parentSwitches, err := configSwitches(p, parent, visiting)
		if err != nil {
			return nil, err
		}
		maps.Copy(switches, parentSwitches)
	}

	for ref, enabled := range cfg.Rules {
		rule, ours := p.ownRuleName(ref)
		if !ours {
			continue
		}
		if _, known := p.Rules[rule]; !known {
			return nil, fmt.Errorf("%w: %q in config %q", ErrUnknownRule, ref, name)
		}
		switches[rule] = enabled
	}

	return switches, nil
}

// ownRuleName maps a config rule reference to this plugin's rule name.
// References carrying another plugin's prefix, and core-rule references
// without a prefix, are not ours and are skipped by resolution.
func (p *Plugin) ownRuleName(ref string) (string, bool) {
	return strings.CutPrefix(ref, p.Prefix+"/")
}
