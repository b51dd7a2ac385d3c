package logic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the conventional name of a configuration file.
const DefaultConfigFile = ".logic.yaml"

// Config selects parsing and simplification behavior. It is usually loaded
// from a YAML file such as:
//
//	rules:
//	  excluded-middle: false
//	max-depth: 256
//
// Rules not listed in the file are enabled.
type Config struct {
	// Rules maps rule names to whether they are enabled.
	Rules map[string]bool `yaml:"rules"`
	// MaxDepth is the parser's nesting limit, or 0 for no limit.
	MaxDepth int `yaml:"max-depth"`
}

// DefaultConfig returns a configuration with every rule enabled and no
// nesting limit.
func DefaultConfig() *Config {
	c := Config{Rules: make(map[string]bool, len(catalog))}
	for _, r := range catalog {
		c.Rules[r.Name] = true
	}
	return &c
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every rule name is in the catalog and the depth limit
// is not negative.
func (c *Config) Validate() error {
	for name := range c.Rules {
		if !IsRule(name) {
			return &ConfigError{Key: "rules." + name, Problem: "unknown rule"}
		}
	}
	if c.MaxDepth < 0 {
		return &ConfigError{Key: "max-depth", Problem: "must not be negative"}
	}
	return nil
}

// Enabled reports whether the configuration enables the named rule.
func (c *Config) Enabled(name string) bool {
	on, ok := c.Rules[name]
	return !ok || on
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseOptions returns the parsing options the configuration selects.
func (c *Config) ParseOptions() []ParseOption {
	return []ParseOption{MaxDepth(c.MaxDepth)}
}

// SimplifyOptions returns the simplification options the configuration
// selects.
func (c *Config) SimplifyOptions() []SimplifyOption {
	var off []string
	for _, r := range catalog {
		if !c.Enabled(r.Name) {
			off = append(off, r.Name)
		}
	}
	if len(off) == 0 {
		return nil
	}
	return []SimplifyOption{DisableRules(off...)}
}

// ConfigError is an error indicating an invalid configuration value.
type ConfigError struct {
	// Key is the path to the offending value, e.g. "rules.foo".
	Key string
	// Problem describes what is wrong with it.
	Problem string
}

func (err *ConfigError) Error() string {
	return "config " + err.Key + ": " + err.Problem
}
