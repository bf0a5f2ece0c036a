package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLIndent is the indentation used when rendering configs to YAML.
const YAMLIndent = 2

// ToYAML renders the config as YAML.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(YAMLIndent)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAMLWithHeader renders the config as YAML preceded by a comment header.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	if header != "" && !bytes.HasSuffix([]byte(header), []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.Write(body)
	return buf.Bytes(), nil
}

// FromYAML parses a YAML document into a Config. Fields absent from the
// document keep their zero values, so the result is suitable for merging.
func FromYAML(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c

	clone.Notices = cloneSlice(c.Notices)
	clone.SectionInclude = cloneSlice(c.SectionInclude)
	clone.SectionExclude = cloneSlice(c.SectionExclude)
	clone.IgnoreConfigs = cloneSlice(c.IgnoreConfigs)
	clone.ConfigEmojis = cloneSlice(c.ConfigEmojis)
	clone.RuleListColumns = cloneSlice(c.RuleListColumns)

	if c.SectionOptions != nil {
		v := *c.SectionOptions
		clone.SectionOptions = &v
	}

	return &clone
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
