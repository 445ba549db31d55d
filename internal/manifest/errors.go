package manifest

import (
	"fmt"

	"pkgmanifest/pkg/version"
)

// ErrorKind classifies a manifest ingestion failure.
type ErrorKind string

const (
	ErrManifestNotFound        ErrorKind = "ManifestNotFound"
	ErrManifestParseError      ErrorKind = "ManifestParseError"
	ErrManifestNormalizeError  ErrorKind = "ManifestNormalizeError"
	ErrManifestValidationError ErrorKind = "ManifestValidationError"
)

// ErrorMap is a field-path-keyed set of validation messages, as returned by
// Validate in both strict and lenient mode.
type ErrorMap map[string][]string

// Add appends msg to the list of errors for field.
func (m ErrorMap) Add(field, msg string) {
	m[field] = append(m[field], msg)
}

// ManifestError is the error type returned for every ingestion failure
// kind. Strict-mode validation failures carry the full field error map
// rather than just the first failure, so callers get a complete diagnosis.
type ManifestError struct {
	Kind    ErrorKind
	Message string
	Fields  ErrorMap
}

func (e *ManifestError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d field(s) failed)", e.Kind, e.Message, len(e.Fields))
}

// BuildInfo reports the library's own build provenance, useful for
// embedding in bug reports alongside a ManifestError: diagnosing why
// ingestion failed shouldn't require guessing which build produced it.
func BuildInfo() version.Info {
	return version.Get()
}

func newNotFoundError(dir string) error {
	return &ManifestError{
		Kind:    ErrManifestNotFound,
		Message: fmt.Sprintf("no recognized manifest file found in %q", dir),
	}
}

func newParseError(dialect DialectKind, cause error) error {
	return &ManifestError{
		Kind:    ErrManifestParseError,
		Message: fmt.Sprintf("failed to parse %s manifest: %v", dialect, cause),
	}
}

func newValidationError(fields ErrorMap) error {
	return &ManifestError{
		Kind:    ErrManifestValidationError,
		Message: "schema validation failed",
		Fields:  fields,
	}
}
