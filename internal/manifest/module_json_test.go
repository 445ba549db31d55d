package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseModuleJSON(t *testing.T) {
	data := []byte(`{
		"author": "Name Surname <name@surname.com>",
		"description": "This is Yotta library",
		"homepage": "https://yottabuild.org",
		"keywords": ["mbed", "Yotta"],
		"licenses": [{"type": "Apache-2.0", "url": "https://spdx.org/licenses/Apache-2.0"}],
		"name": "YottaLibrary",
		"repository": {"type": "git", "url": "git@github.com:username/repo.git"},
		"version": "1.2.3",
		"customField": "Custom Value"
	}`)

	rec, _, err := ParseModuleJSON(data)
	require.NoError(t, err)

	require.Equal(t, "YottaLibrary", rec.Name)
	require.Equal(t, "This is Yotta library", rec.Description)
	require.Equal(t, "https://yottabuild.org", rec.Homepage)
	require.Equal(t, []string{"mbed", "Yotta"}, rec.Keywords)
	require.Equal(t, "Apache-2.0", rec.License)
	require.Equal(t, []string{"*"}, rec.Platforms)
	require.Equal(t, []string{"mbed"}, rec.Frameworks)
	require.Equal(t, moduleJSONDefaultExclude, rec.Export.Exclude)
	require.Equal(t, "1.2.3", rec.Version)
	require.Equal(t, &Repository{Type: "git", URL: "git@github.com:username/repo.git"}, rec.Repository)

	require.Len(t, rec.Authors, 1)
	require.Equal(t, "Name Surname", rec.Authors[0].Name)
	require.Equal(t, "name@surname.com", rec.Authors[0].Email)

	v, found := rec.Extra.Get("customField")
	require.True(t, found)
	require.Equal(t, "Custom Value", v)
}
