package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateLenientMissingVersion(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"

	_, errs, err := Validate(rec, false)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Contains(t, errs, "version")
}

func TestValidateLenientDropsInvalidKeyword(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"
	rec.Version = "1.0.0"
	rec.Keywords = []string{"kw1", "*^[]"}

	validated, errs, err := Validate(rec, false)
	require.NoError(t, err)
	require.NotEmpty(t, errs["keywords"])
	require.Equal(t, []string{"kw1"}, validated.Keywords)
}

func TestValidateStrictMissingRequiredField(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"

	_, _, err := Validate(rec, true)
	require.Error(t, err)
	merr, ok := err.(*ManifestError)
	require.True(t, ok)
	require.Equal(t, ErrManifestValidationError, merr.Kind)
	require.Contains(t, merr.Fields["version"][0], "Missing data for required field")
}

func TestValidateStrictBrokenSemVer(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"
	rec.Version = "broken_version"

	_, _, err := Validate(rec, true)
	require.Error(t, err)
	merr := err.(*ManifestError)
	require.Contains(t, merr.Fields["version"][0], "Invalid semantic versioning format")
}

func TestValidateStrictInvalidName(t *testing.T) {
	rec := NewRecord()
	rec.Name = "!not-a-valid-name"
	rec.Version = "1.0.0"

	_, _, err := Validate(rec, true)
	require.Error(t, err)
	merr := err.(*ManifestError)
	require.Contains(t, merr.Fields["name"][0], "Invalid value")
}

func TestValidateStrictInvalidRepositoryType(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"
	rec.Version = "1.0.0"
	rec.Repository = &Repository{Type: "cvs", URL: "https://example.com/repo"}

	_, _, err := Validate(rec, true)
	require.Error(t, err)
	merr := err.(*ManifestError)
	require.Contains(t, merr.Fields["repository"][0], "Invalid value")
}

func TestValidateLenientAcceptsKnownRepositoryTypes(t *testing.T) {
	for _, typ := range []string{"git", "hg", "svn"} {
		rec := NewRecord()
		rec.Name = "MyPackage"
		rec.Version = "1.0.0"
		rec.Repository = &Repository{Type: typ, URL: "https://example.com/repo"}

		_, errs, err := Validate(rec, false)
		require.NoError(t, err)
		require.Empty(t, errs["repository"])
	}
}

func TestValidateStrictBrokenAuthor(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"
	rec.Description = "MyDescription"
	rec.Version = "1.2.3"
	rec.Keywords = []string{"a", "b"}
	rec.Authors = []Author{{Name: "https://not-a-name.example/foo"}}

	_, _, err := Validate(rec, true)
	require.Error(t, err)
	merr := err.(*ManifestError)
	require.Contains(t, merr.Fields["authors"][0], "Invalid input type")
}

func TestValidateLenientStripsBrokenVersion(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"
	rec.Version = "broken_version"

	validated, errs, err := Validate(rec, false)
	require.NoError(t, err)
	require.NotEmpty(t, errs["version"])
	require.Equal(t, "", validated.Version)
}

func TestValidateLicenseShape(t *testing.T) {
	rec := NewRecord()
	rec.Name = "MyPackage"
	rec.Version = "1.0.0"
	rec.License = "Apache-2.0 OR MIT"

	_, errs, err := Validate(rec, false)
	require.NoError(t, err)
	require.Empty(t, errs)

	rec = NewRecord()
	rec.Name = "MyPackage"
	rec.Version = "1.0.0"
	rec.License = "<not a license>"

	validated, errs, err := Validate(rec, false)
	require.NoError(t, err)
	require.NotEmpty(t, errs["license"])
	require.Equal(t, "", validated.License)
}
