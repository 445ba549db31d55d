package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.DefaultStrict)
	assert.True(t, cfg.FallbackToSniff)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultStrict = true
	cfg.ExtraPlatformAliases = map[string]string{"teensy": "teensy"}

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, loaded.DefaultStrict)
	assert.Equal(t, "teensy", loaded.ExtraPlatformAliases["teensy"])
}

func TestEnsureConfigFileCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := EnsureConfigFile()
	require.NoError(t, err)
	assert.FileExists(t, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LogLevel, cfg.LogLevel)
}
