// Package config provides configuration loading and validation for the srp6ademo driver.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the srp6ademo driver configuration: which hash kind
// and group the demo client and server negotiate, an optional catalog of
// custom groups, and logging settings.
type Config struct {
	HashKind      string             `yaml:"hash_kind"`
	Group         string             `yaml:"group"`
	StrictPadding bool               `yaml:"strict_padding"`
	CustomGroups  []CustomGroupEntry `yaml:"custom_groups,omitempty"`
	Logging       LoggingSettings    `yaml:"logging"`
	Demo          DemoCredential     `yaml:"demo"`
}

// CustomGroupEntry names an operator-supplied (N, g) pair. The driver
// validates every entry at startup; when group is "custom" it runs the
// exchange with the first entry. Entries are not added to the srp
// package's fixed group table, so they cannot be selected by name.
type CustomGroupEntry struct {
	Name string `yaml:"name"`
	NHex string `yaml:"n_hex"`
	GHex string `yaml:"g_hex"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DemoCredential is the single identity/password pair the demo driver
// registers a verifier for and then authenticates as, in a loopback
// client+server exchange.
type DemoCredential struct {
	Identity string `yaml:"identity"`
	Password string `yaml:"password"`
	SaltLen  int    `yaml:"salt_len"`
}

// Load reads and parses the configuration file.
//
//nolint:gosec // G304: config path is from command-line argument
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate performs basic validation on the configuration. Detailed
// per-section validation is in validate.go.
func (c *Config) validate() error {
	if c.HashKind == "" {
		return fmt.Errorf("hash_kind is required")
	}
	if c.Group == "" {
		return fmt.Errorf("group is required")
	}
	if c.Demo.Identity == "" {
		return fmt.Errorf("demo.identity is required")
	}
	if c.Demo.Password == "" {
		return fmt.Errorf("demo.password is required")
	}
	return Validate(c)
}
