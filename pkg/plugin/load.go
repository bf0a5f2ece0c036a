package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/fsutil"
)

// Manifest file names probed, in order, when Load is given a directory.
var manifestNames = []string{
	"eslint-plugin.json",
	"eslint-plugin.yml",
	"eslint-plugin.yaml",
	"eslint-plugin.toml",
}

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates no manifest exists at or under the given path.
	ErrNotFound = errors.New("plugin manifest not found")

	// ErrNoRules indicates the manifest exports no rule registry.
	ErrNoRules = errors.New("plugin has no rule registry")

	// ErrManifest indicates the manifest content is malformed.
	ErrManifest = errors.New("invalid plugin manifest")
)

// Load reads the plugin manifest at path. A directory path is probed for
// the conventional manifest file names; a file path is used directly.
func Load(ctx context.Context, path string) (*Plugin, error) {
	manifestPath, err := resolveManifestPath(path)
	if err != nil {
		return nil, err
	}

	content, err := fsutil.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	raw, err := decodeManifest(manifestPath, content)
	if err != nil {
		return nil, err
	}

	plugin, err := normalizeManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}

	return plugin, nil
}

// resolveManifestPath maps a user-supplied path to the concrete manifest
// file to read.
func resolveManifestPath(path string) (string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	if !stat.IsDir() {
		return path, nil
	}

	for _, name := range manifestNames {
		candidate := filepath.Join(path, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no %s in %s", ErrNotFound, strings.Join(manifestNames, ", "), path)
}

// decodeManifest picks the codec from the file extension.
func decodeManifest(path string, content []byte) (map[string]any, error) {
	var raw map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrManifest, path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrManifest, path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrManifest, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported manifest format %q", ErrManifest, ext)
	}

	return raw, nil
}

// normalizeManifest converts decoded manifest data into a Plugin.
func normalizeManifest(raw map[string]any) (*Plugin, error) {
	name, ok := raw["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: missing plugin name", ErrManifest)
	}

	plugin := &Plugin{
		Name:    name,
		Prefix:  derivePrefix(name),
		Rules:   make(map[string]Rule),
		Configs: make(map[string]Config),
	}

	rulesEntry, ok := raw["rules"]
	if !ok {
		return nil, ErrNoRules
	}
	rules, ok := rulesEntry.(map[string]any)
	if !ok || len(rules) == 0 {
		return nil, ErrNoRules
	}

	for ruleName, entry := range rules {
		plugin.Rules[ruleName] = parseRule(ruleName, entry)
	}

	if configsEntry, ok := raw["configs"]; ok {
		configs, ok := configsEntry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: configs is not a mapping", ErrManifest)
		}
		for configName, entry := range configs {
			cfg, err := parseConfig(configName, entry)
			if err != nil {
				return nil, err
			}
			plugin.Configs[configName] = cfg
		}
	}

	return plugin, nil
}

// parseRule converts one registry entry. A non-mapping entry is a
// function-style rule: it has no metadata to extract, which degrades its
// header to the bare title but is never an error. Mis-typed metadata
// fields are treated as absent.
func parseRule(name string, entry any) Rule {
	mapping, ok := entry.(map[string]any)
	if !ok {
		return Rule{Name: name, FunctionStyle: true}
	}

	meta, _ := mapping["meta"].(map[string]any)
	docs, _ := meta["docs"].(map[string]any)

	return Rule{
		Name:                 name,
		Description:          stringField(docs, "description"),
		URL:                  stringField(docs, "url"),
		RequiresTypeChecking: boolField(docs, "requiresTypeChecking"),
		Type:                 stringField(meta, "type"),
		Fixable:              fixableValue(meta["fixable"]),
		HasSuggestions:       boolField(meta, "hasSuggestions"),
		Deprecated:           boolField(meta, "deprecated"),
		ReplacedBy:           stringListField(meta, "replacedBy"),
		Schema:               NewSchema(meta["schema"]),
	}
}

// parseConfig converts one named preset.
func parseConfig(name string, entry any) (Config, error) {
	mapping, ok := entry.(map[string]any)
	if !ok {
		return Config{}, fmt.Errorf("%w: config %q is not a mapping", ErrManifest, name)
	}

	cfg := Config{Name: name}

	if extendsEntry, ok := mapping["extends"]; ok {
		list, ok := extendsEntry.([]any)
		if !ok {
			return Config{}, fmt.Errorf("%w: config %q: extends is not a list", ErrManifest, name)
		}
		for _, item := range list {
			parent, ok := item.(string)
			if !ok {
				return Config{}, fmt.Errorf("%w: config %q: extends entries must be config names", ErrManifest, name)
			}
			cfg.Extends = append(cfg.Extends, parent)
		}
	}

	if rulesEntry, ok := mapping["rules"]; ok {
		ruleMap, ok := rulesEntry.(map[string]any)
		if !ok {
			return Config{}, fmt.Errorf("%w: config %q: rules is not a mapping", ErrManifest, name)
		}
		cfg.Rules = make(map[string]bool, len(ruleMap))
		for ref, severity := range ruleMap {
			enabled, err := severityEnabled(severity)
			if err != nil {
				return Config{}, fmt.Errorf("%w: config %q: rule %q: %w", ErrManifest, name, ref, err)
			}
			cfg.Rules[ref] = enabled
		}
	}

	return cfg, nil
}

// severityEnabled maps a configured severity to whether it enables the
// rule. Accepted forms are "off"/"warn"/"error", 0/1/2, and an array whose
// first element is one of those (the rest being rule options).
func severityEnabled(value any) (bool, error) {
	switch v := value.(type) {
	case string:
		switch v {
		case "off":
			return false, nil
		case "warn", "error":
			return true, nil
		}
		return false, fmt.Errorf("unknown severity %q", v)

	case int:
		return severityLevel(int64(v))
	case int64:
		return severityLevel(v)
	case float64:
		if v != float64(int64(v)) {
			return false, fmt.Errorf("unknown severity %v", v)
		}
		return severityLevel(int64(v))

	case []any:
		if len(v) == 0 {
			return false, errors.New("empty severity array")
		}
		if _, nested := v[0].([]any); nested {
			return false, errors.New("severity array cannot nest")
		}
		return severityEnabled(v[0])

	default:
		return false, fmt.Errorf("unknown severity %v", value)
	}
}

func severityLevel(level int64) (bool, error) {
	switch level {
	case 0:
		return false, nil
	case 1, 2:
		return true, nil
	}
	return false, fmt.Errorf("unknown severity %d", level)
}

func stringField(mapping map[string]any, key string) string {
	value, _ := mapping[key].(string)
	return value
}

func boolField(mapping map[string]any, key string) bool {
	value, _ := mapping[key].(bool)
	return value
}

// fixableValue accepts the ESLint forms: the strings "code" and
// "whitespace" mark a rule fixable, as does a bare true.
func fixableValue(value any) bool {
	switch v := value.(type) {
	case string:
		return v == "code" || v == "whitespace"
	case bool:
		return v
	default:
		return false
	}
}

func stringListField(mapping map[string]any, key string) []string {
	list, ok := mapping[key].([]any)
	if !ok {
		return nil
	}
	var values []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
