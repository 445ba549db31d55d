package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, SplitList("a, b ,c"))
	require.Equal(t, []string{"a", "b"}, SplitList([]string{"a", "b"}))
	require.Equal(t, []string{"a", "b"}, SplitList([]interface{}{"a", "b"}))
	require.Empty(t, SplitList(" , ,"))
	require.Nil(t, SplitList(42))
}

func TestNormalizeKeywords(t *testing.T) {
	require.Equal(t, []string{"kw1", "kw2", "kw3"}, NormalizeKeywords("kw1, KW2, kw3"))
	require.Equal(t, []string{"json", "rest"}, NormalizeKeywords([]string{"JSON", "rest", "json"}))
	require.Equal(t,
		[]string{"signal", "input", "output"},
		NormalizeKeywords("Signal Input/Output", "/", " "))
}

func TestRemapPlatforms(t *testing.T) {
	require.Equal(t, []string{"atmelavr", "espressif32"}, RemapPlatforms("avr, esp32", nil))
	require.Equal(t, []string{"atmelavr", "espressif8266"}, RemapPlatforms([]string{"atmelavr", "espressif"}, nil))
	require.Equal(t, []string{"unknownboard"}, RemapPlatforms("unknownboard", nil))

	// "*" collapses the whole list regardless of other entries.
	require.Equal(t, []string{"*"}, RemapPlatforms("avr, *, sam", nil))

	// Caller-supplied aliases win over the built-in table.
	extra := map[string]string{"avr": "customavr"}
	require.Equal(t, []string{"customavr"}, RemapPlatforms("avr", extra))
}

func TestDecomposeAuthorLine(t *testing.T) {
	authors := DecomposeAuthorLine("Name Surname <name@surname.com>")
	require.Equal(t, []Author{{Name: "Name Surname", Email: "name@surname.com"}}, authors)

	authors = DecomposeAuthorLine("SomeAuthor <info AT author.com>")
	require.Equal(t, []Author{{Name: "SomeAuthor", Email: "info@author.com"}}, authors)

	authors = DecomposeAuthorLine("Benoit Blanchon (https://blog.benoitblanchon.fr)")
	require.Equal(t, []Author{{Name: "Benoit Blanchon", URL: "https://blog.benoitblanchon.fr"}}, authors)

	authors = DecomposeAuthorLine("First Author, Second Author")
	require.Equal(t, []Author{{Name: "First Author"}, {Name: "Second Author"}}, authors)

	// A comma inside a bracketed line never splits.
	authors = DecomposeAuthorLine("First Author <first@example.com>, Second Author")
	require.Len(t, authors, 1)

	require.Nil(t, DecomposeAuthorLine("  "))
}

func TestDecomposeAuthorLineFreeFormProse(t *testing.T) {
	line := "Tim Barrass and contributors as documented in source, and at " +
		"https://github.com/sensorium/Mozzi/graphs/contributors"
	authors := DecomposeAuthorLine(line)
	require.Len(t, authors, 1)
	require.Equal(t, line, authors[0].Name)
}

func TestRepositoryFromURL(t *testing.T) {
	repo := RepositoryFromURL("https://github.com/olikraus/u8glib", nil)
	require.Equal(t, &Repository{Type: "git", URL: "https://github.com/olikraus/u8glib"}, repo)

	repo = RepositoryFromURL("git@github.com:username/repo.git", nil)
	require.Equal(t, "git", repo.Type)

	repo = RepositoryFromURL("https://example.com/some/repo", nil)
	require.Equal(t, "", repo.Type)

	repo = RepositoryFromURL("https://forge.internal/some/repo", []string{"forge.internal"})
	require.Equal(t, "git", repo.Type)

	require.Nil(t, RepositoryFromURL("  ", nil))
}

func TestHomepageFromRepositoryURL(t *testing.T) {
	require.Equal(t, "https://github.com/u/r", HomepageFromRepositoryURL("https://github.com/u/r.git"))
	require.Equal(t, "https://example.com/page", HomepageFromRepositoryURL("https://example.com/page"))
}

func TestDeriveFromRemoteURL(t *testing.T) {
	info := DeriveFromRemoteURL(
		"https://raw.githubusercontent.com/username/reponame/master/libraries/TestPackage/library.properties")
	require.NotNil(t, info)
	require.Equal(t, &Repository{Type: "git", URL: "https://github.com/username/reponame"}, info.Repository)
	require.Equal(t, "libraries/TestPackage", info.Include)

	// Manifest at the repository root: no include entry.
	info = DeriveFromRemoteURL(
		"https://raw.githubusercontent.com/sensorium/Mozzi/master/library.properties")
	require.NotNil(t, info)
	require.Equal(t, "https://github.com/sensorium/Mozzi", info.Repository.URL)
	require.Equal(t, "", info.Include)

	require.Nil(t, DeriveFromRemoteURL("http://localhost/library.properties"))
	require.Nil(t, DeriveFromRemoteURL(""))
}
