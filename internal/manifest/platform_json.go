package manifest

import (
	"encoding/json"
	"sort"
)

// ParsePlatformJSON parses a platform.json document (the PlatformIO
// chip/board-vendor convention). "frameworks" is a map of
// framework name to its build recipe; only the names survive onto the
// normalized Record, the recipes are kept verbatim in FrameworksDetail.
func ParsePlatformJSON(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newParseError(PlatformJSON, err)
	}

	rec := NewRecord()

	for key, v := range raw {
		switch key {
		case "name":
			rec.Name = decodeString(v)
		case "title":
			rec.Title = decodeString(v)
		case "version":
			rec.Version = decodeString(v)
		case "description":
			rec.Description = decodeString(v)
		case "homepage":
			rec.Homepage = decodeString(v)
		case "license":
			rec.License = decodeString(v)
		case "repository":
			rec.Repository = decodeRepository(v)
		case "frameworks":
			names, detail := decodeFrameworksDetail(v)
			rec.Frameworks = names
			rec.FrameworksDetail = detail
		case "packages":
			rec.Packages = v
		case "engines":
			// PlatformIO-core compatibility pin, not part of the package
			// identity model; dropped outright. Unlike unrecognized fields,
			// which go to Extra, it is not kept, since it never round-trips
			// meaningfully outside the CLI that reads it.
		case "url":
			// A platform.json's "url" names the vendor product page, not
			// the package's own repository/homepage; "homepage" already
			// carries that role for this dialect, so "url" is dropped
			// rather than aliased or kept in Extra.
		default:
			rec.SetExtra(key, decodeAny(v))
		}
	}

	return rec, nil
}

func decodeFrameworksDetail(v json.RawMessage) ([]string, map[string]json.RawMessage) {
	var detail map[string]json.RawMessage
	if err := json.Unmarshal(v, &detail); err != nil {
		return nil, nil
	}
	names := make([]string, 0, len(detail))
	for name := range detail {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, detail
}
