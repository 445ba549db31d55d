package manifest

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// propertyLineRe matches one key=value line of the properties grammar. Keys start with a letter or underscore; dots allowed for
// namespaced keys like "build.flags".
var propertyLineRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_.]*)\s*=\s*(.*)$`)

// ParseProperties parses the line-oriented key/value text format into a
// flat, insertion-ordered string map. Comment lines start with "#";
// backslash-newline is not a continuation; duplicate keys overwrite in
// place (their first position in iteration order is kept, last value
// wins), matching a plain last-write-wins map with stable key order.
func ParseProperties(data []byte) *linkedhashmap.Map {
	props := linkedhashmap.New()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := propertyLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := m[1]
		value := strings.TrimRight(m[2], " \t\r")
		props.Put(key, value)
	}
	return props
}

// propString reads a string value out of props, defaulting to "".
func propString(props *linkedhashmap.Map, key string) string {
	v, found := props.Get(key)
	if !found {
		return ""
	}
	s, _ := v.(string)
	return s
}
