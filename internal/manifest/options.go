package manifest

import (
	"fmt"

	"pkgmanifest/internal/config"
	"pkgmanifest/pkg/logger"
)

// ParseFromDirWithConfig runs dialect detection and parsing and then
// Validate, using cfg to pick the default strict/lenient mode, to extend
// the platform-alias and known-forge-host tables with deployment-specific
// entries (internal/config.Config), and to decide via
// FallbackToSniff whether an unresolved remoteURL hint may still fall back
// to the full directory probe or must fail with ManifestNotFound. Non-fatal
// schema errors (lenient-mode field drops) are logged rather than silently
// discarded.
func ParseFromDirWithConfig(dir, remoteURL string, cfg *config.Config) (*Record, ErrorMap, error) {
	rec, err := parseFromDir(dir, remoteURL, cfg.FallbackToSniff)
	if err != nil {
		return nil, nil, err
	}
	applyConfig(rec, cfg)
	validated, errs, err := Validate(rec, cfg.DefaultStrict)
	logDroppedFields(cfg, errs)
	return validated, errs, err
}

// ParseFromBytesWithConfig is ParseFromBytes plus the same config-driven
// extension and validation step, for callers that already have the
// manifest's bytes and dialect in hand (no directory to walk examples from).
func ParseFromBytesWithConfig(data []byte, kind DialectKind, remoteURL string, cfg *config.Config) (*Record, ErrorMap, error) {
	rec, err := ParseFromBytes(data, kind, remoteURL)
	if err != nil {
		return nil, nil, err
	}
	applyConfig(rec, cfg)
	validated, errs, err := Validate(rec, cfg.DefaultStrict)
	logDroppedFields(cfg, errs)
	return validated, errs, err
}

func applyConfig(rec *Record, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if len(cfg.ExtraPlatformAliases) > 0 {
		rec.Platforms = RemapPlatforms(rec.Platforms, cfg.ExtraPlatformAliases)
	}
	if rec.Repository != nil && rec.Repository.Type == "" && len(cfg.ExtraForgeHosts) > 0 {
		if isKnownForge(rec.Repository.URL, cfg.ExtraForgeHosts) {
			rec.Repository.Type = "git"
		}
	}
}

// logDroppedFields reports lenient-mode validation errors at Warn level
// instead of the caller finding out only by noticing a field went missing.
func logDroppedFields(cfg *config.Config, errs ErrorMap) {
	if cfg == nil || len(errs) == 0 {
		return
	}
	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	for field, messages := range errs {
		for _, msg := range messages {
			log.Warn(fmt.Sprintf("manifest field %q: %s", field, msg))
		}
	}
}
