package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pkgmanifest/internal/config"
)

func TestParseFromDirWithConfigAppliesExtraPlatformAlias(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "library.json"), []byte(
		`{"name": "pkg", "version": "1.0.0", "platforms": ["widgetboard"]}`), 0o644))

	cfg := config.DefaultConfig()
	cfg.ExtraPlatformAliases = map[string]string{"widgetboard": "acme_widgetboard"}
	cfg.DefaultStrict = true

	rec, errs, err := ParseFromDirWithConfig(dir, "", cfg)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, []string{"acme_widgetboard"}, rec.Platforms)
}

func TestParseFromDirWithConfigHonorsFallbackToSniffDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "library.json"), []byte(
		`{"name": "pkg", "version": "1.0.0"}`), 0o644))

	cfg := config.DefaultConfig()
	cfg.FallbackToSniff = false

	_, _, err := ParseFromDirWithConfig(dir, "", cfg)
	require.Error(t, err)
	merr, ok := err.(*ManifestError)
	require.True(t, ok)
	require.Equal(t, ErrManifestNotFound, merr.Kind)
}
