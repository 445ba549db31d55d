package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePropertiesBasic(t *testing.T) {
	props := ParseProperties([]byte(`
name=TestPackage
version=1.2.3

# a comment line
sentence=This is Arduino library
customField=Custom Value
`))

	require.Equal(t, 4, props.Size())
	require.Equal(t, "TestPackage", propString(props, "name"))
	require.Equal(t, "1.2.3", propString(props, "version"))
	require.Equal(t, "This is Arduino library", propString(props, "sentence"))
	require.Equal(t, "Custom Value", propString(props, "customField"))
}

func TestParsePropertiesTrimsTrailingWhitespace(t *testing.T) {
	props := ParseProperties([]byte("name=TestPackage   \t\r\n"))
	require.Equal(t, "TestPackage", propString(props, "name"))
}

func TestParsePropertiesDuplicateKeyLastWins(t *testing.T) {
	props := ParseProperties([]byte("name=first\nname=second\n"))
	require.Equal(t, 1, props.Size())
	require.Equal(t, "second", propString(props, "name"))
}

func TestParsePropertiesBackslashIsNotContinuation(t *testing.T) {
	props := ParseProperties([]byte("sentence=line one \\\nparagraph=line two\n"))
	require.Equal(t, "line one \\", propString(props, "sentence"))
	require.Equal(t, "line two", propString(props, "paragraph"))
}

func TestParsePropertiesSkipsMalformedLines(t *testing.T) {
	props := ParseProperties([]byte(`
just some prose without an equals sign
9starts_with_digit=nope
build.flags=-DHELLO
=no key at all
`))

	require.Equal(t, 1, props.Size())
	require.Equal(t, "-DHELLO", propString(props, "build.flags"))
}

func TestPropStringMissingKey(t *testing.T) {
	props := ParseProperties(nil)
	require.Equal(t, "", propString(props, "name"))
}
