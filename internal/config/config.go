// Package config loads and persists the ingestion tool's tuning settings:
// which mode the schema validator defaults to, where the alias tables come
// from, and how an ambiguous directory hint should be resolved. Settings
// live in an XDG-style per-user YAML file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pkgmanifest/pkg/utils"
)

// Config holds the tunable behavior of the manifest ingestion core.
type Config struct {
	// DefaultStrict controls the default mode passed to Validate when a
	// caller doesn't specify one explicitly.
	DefaultStrict bool `yaml:"default_strict" json:"default_strict"`

	// FallbackToSniff allows ParseFromDirWithConfig to guess a dialect by
	// scanning a directory even when no recognizable remote_url filename
	// narrows it down. ParseFromDir always scans.
	FallbackToSniff bool `yaml:"fallback_to_sniff" json:"fallback_to_sniff"`

	// LogLevel feeds pkg/logger.NewLoggerWithLevel.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// ExtraPlatformAliases lets deployments extend the built-in platform
	// remap table without a code change, e.g. in-house board names.
	ExtraPlatformAliases map[string]string `yaml:"extra_platform_aliases" json:"extra_platform_aliases"`

	// ExtraForgeHosts extends the known-git-forge host list when the
	// config-aware entry points infer type="git" for a parsed repository
	// that has no type. The dialect parsers themselves (e.g. routing a
	// library.properties "url" to repository or homepage) use only the
	// built-in host list.
	ExtraForgeHosts []string `yaml:"extra_forge_hosts" json:"extra_forge_hosts"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultStrict:        false,
		FallbackToSniff:      true,
		LogLevel:             "info",
		ExtraPlatformAliases: map[string]string{},
		ExtraForgeHosts:      []string{},
	}
}

// ConfigFilePath returns the path to the persisted config file, respecting
// XDG_CONFIG_HOME.
func ConfigFilePath() (string, error) {
	dir, err := utils.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureConfigFile creates the config file with default values if it
// doesn't exist yet, and returns its path.
func EnsureConfigFile() (string, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return "", err
	}
	if !utils.IsFile(path) {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", err
		}
		data, err := yaml.Marshal(DefaultConfig())
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			return "", err
		}
	}
	return path, nil
}

// Load reads the config file, creating it with defaults first if absent.
func Load() (*Config, error) {
	path, err := EnsureConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// Save persists cfg to the default config file path.
func Save(cfg *Config) error {
	path, err := ConfigFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadFrom reads a config from an arbitrary YAML file path, useful for
// tests and for callers that keep ingestion tuning alongside other project
// config rather than under the user's home directory.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
