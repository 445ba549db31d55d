package manifest

import (
	"encoding/json"
	"strings"
)

// ParsePackageJSON parses a package.json document (the PlatformIO
// tool/toolchain convention).
func ParsePackageJSON(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newParseError(PackageJSON, err)
	}

	rec := NewRecord()

	for key, v := range raw {
		switch key {
		case "name":
			rec.Name = decodeString(v)
		case "version":
			rec.Version = decodeString(v)
		case "description":
			rec.Description = decodeString(v)
		case "url":
			rec.Homepage = decodeString(v)
		case "homepage":
			rec.Homepage = decodeString(v)
		case "license":
			rec.License = decodeString(v)
		case "repository":
			rec.Repository = decodeRepository(v)
		case "system":
			if sys := normalizeSystem(decodeAny(v)); sys != nil {
				rec.System = sys
			}
		default:
			rec.SetExtra(key, decodeAny(v))
		}
	}

	return rec, nil
}

// normalizeSystem filters the "system" field: "*" or "all" mean
// every platform and are dropped rather than kept as a literal one-item
// list; anything else is split into a list of target triples.
func normalizeSystem(v interface{}) []string {
	items := SplitList(v)
	if len(items) == 1 && systemAllTokens[strings.ToLower(items[0])] {
		return nil
	}
	return items
}
