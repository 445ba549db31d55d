package manifest

import (
	"path/filepath"

	"pkgmanifest/pkg/utils"
)

// DetectDialect probes dir for a recognized manifest filename in the
// priority order of manifestFilenames and returns its dialect and
// absolute path. If the last path element of remoteURL (any URL, not only
// a raw.githubusercontent.com one) is one of manifestFilenames, that file
// is checked first, ahead of the directory probe order, since the caller
// already knows exactly which file they fetched.
//
// It always falls back to the full directory probe when remoteURL doesn't
// pin an exact file; callers that want internal/config.Config's
// FallbackToSniff honored should use DetectDialectWithFallback instead.
func DetectDialect(dir string, remoteURL string) (DialectKind, string, error) {
	return DetectDialectWithFallback(dir, remoteURL, true)
}

// DetectDialectWithFallback is DetectDialect with fallbackToSniff wired in
// (internal/config.Config.FallbackToSniff): a remoteURL that names one of
// manifestFilenames is always tried first regardless of the flag, since the
// caller already knows exactly which file it fetched. When that doesn't
// resolve to an existing file, fallbackToSniff decides whether this guesses
// further by probing the full directory in priority order, or gives up with
// ManifestNotFound rather than picking a manifest the caller didn't ask for.
func DetectDialectWithFallback(dir, remoteURL string, fallbackToSniff bool) (DialectKind, string, error) {
	if remoteURL != "" {
		base := filepath.Base(remoteURL)
		for _, candidate := range manifestFilenames {
			if candidate.name == base {
				path := filepath.Join(dir, base)
				if utils.IsFile(path) {
					return candidate.dialect, path, nil
				}
			}
		}
	}

	if !fallbackToSniff {
		return "", "", newNotFoundError(dir)
	}

	for _, candidate := range manifestFilenames {
		path := filepath.Join(dir, candidate.name)
		if utils.IsFile(path) {
			return candidate.dialect, path, nil
		}
	}

	return "", "", newNotFoundError(dir)
}
