package config

import (
	"fmt"
	"strings"
)

var validHashKinds = map[string]bool{
	"sha1":   true,
	"sha256": true,
	"sha512": true,
}

var validGroups = map[string]bool{
	"n512": true, "n768": true, "n1024": true, "n2048": true,
	"n3072": true, "n4096": true, "n8192": true, "custom": true,
}

// Validate performs comprehensive validation on the configuration.
func Validate(cfg *Config) error {
	if err := validateHashKind(cfg); err != nil {
		return fmt.Errorf("hash_kind validation failed: %w", err)
	}
	if err := validateGroup(cfg); err != nil {
		return fmt.Errorf("group validation failed: %w", err)
	}
	if err := validateLogging(cfg); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}
	if err := validateCustomGroups(cfg); err != nil {
		return fmt.Errorf("custom_groups validation failed: %w", err)
	}
	return nil
}

func validateHashKind(cfg *Config) error {
	if !validHashKinds[strings.ToLower(cfg.HashKind)] {
		return fmt.Errorf("unsupported hash_kind %q: must be one of sha1, sha256, sha512", cfg.HashKind)
	}
	return nil
}

func validateGroup(cfg *Config) error {
	group := strings.ToLower(cfg.Group)
	if !validGroups[group] {
		return fmt.Errorf("unsupported group %q", cfg.Group)
	}
	if group == "custom" && len(cfg.CustomGroups) == 0 {
		return fmt.Errorf("group is custom but no custom_groups were supplied")
	}
	return nil
}

func validateLogging(cfg *Config) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported logging.level %q", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "", "json", "human":
	default:
		return fmt.Errorf("unsupported logging.format %q", cfg.Logging.Format)
	}
	return nil
}

func validateCustomGroups(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.CustomGroups))
	for _, g := range cfg.CustomGroups {
		if g.Name == "" {
			return fmt.Errorf("custom group entry missing name")
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate custom group name %q", g.Name)
		}
		seen[g.Name] = true

		if g.NHex == "" || g.GHex == "" {
			return fmt.Errorf("custom group %q requires both n_hex and g_hex", g.Name)
		}
	}
	return nil
}
