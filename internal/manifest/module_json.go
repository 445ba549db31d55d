package manifest

import "encoding/json"

// ParseModuleJSON parses a module.json document (the Yotta/mbed
// convention). Platforms and frameworks are fixed: Yotta modules
// don't declare either, they always target mbed OS on any board.
func ParseModuleJSON(data []byte) (*Record, json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, newParseError(ModuleJSON, err)
	}

	rec := NewRecord()
	rec.Platforms = moduleJSONDefaultPlatforms
	rec.Frameworks = moduleJSONDefaultFrameworks
	rec.Export = &Export{Exclude: moduleJSONDefaultExclude}
	var rawExamples json.RawMessage

	for key, v := range raw {
		switch key {
		case "name":
			rec.Name = decodeString(v)
		case "version":
			rec.Version = decodeString(v)
		case "description":
			rec.Description = decodeString(v)
		case "homepage":
			rec.Homepage = decodeString(v)
		case "keywords":
			// Unlike library.json/library.properties, Yotta keywords keep
			// their declared case.
			rec.Keywords = SplitList(decodeAny(v))
		case "author":
			rec.Authors = DecomposeAuthorLine(decodeString(v))
		case "licenses":
			rec.License = firstLicenseType(v)
		case "license":
			rec.License = decodeString(v)
		case "repository":
			rec.Repository = decodeRepository(v)
		case "dependencies":
			rec.Dependencies = decodeDependencies(v)
		case "examples":
			rawExamples = v
		default:
			rec.SetExtra(key, decodeAny(v))
		}
	}

	return rec, rawExamples, nil
}

// firstLicenseType extracts the "type" of the first entry of a Yotta
// "licenses" array: [{"type": "Apache-2.0", "url": "..."}].
func firstLicenseType(v json.RawMessage) string {
	var licenses []struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(v, &licenses); err != nil || len(licenses) == 0 {
		return ""
	}
	return licenses[0].Type
}
