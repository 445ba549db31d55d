package manifest

import (
	"encoding/json"
	"strings"
)

// ParseLibraryJSON parses a library.json document. A
// legacy top-level "url" becomes the homepage unless it carries a ".git"
// suffix and no explicit repository exists, in which case it is really a
// clone URL and folds into repository instead. remoteURL, when it resolves
// via DeriveFromRemoteURL and the manifest declares no repository of its
// own, supplies one.
func ParseLibraryJSON(data []byte, remoteURL string) (*Record, json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, newParseError(LibraryJSON, err)
	}

	rec := NewRecord()
	var rawExamples json.RawMessage
	var legacyURL string

	exportField := &Export{}
	haveExport := false

	for key, v := range raw {
		switch key {
		case "name":
			rec.Name = decodeString(v)
		case "version":
			rec.Version = decodeString(v)
		case "description":
			rec.Description = decodeString(v)
		case "url":
			legacyURL = decodeString(v)
		case "homepage":
			rec.Homepage = decodeString(v)
		case "license":
			rec.License = decodeString(v)
		case "keywords":
			rec.Keywords = NormalizeKeywords(decodeAny(v))
		case "platforms":
			rec.Platforms = RemapPlatforms(decodeAny(v), nil)
		case "frameworks":
			rec.Frameworks = SplitList(decodeAny(v))
		case "authors":
			rec.Authors = decodeAuthors(v)
		case "repository":
			rec.Repository = decodeRepository(v)
		case "exclude":
			exportField.Exclude = SplitList(decodeAny(v))
			haveExport = true
		case "include":
			exportField.Include = SplitList(decodeAny(v))
			haveExport = true
		case "export":
			var e struct {
				Include json.RawMessage `json:"include"`
				Exclude json.RawMessage `json:"exclude"`
			}
			if err := json.Unmarshal(v, &e); err == nil {
				if e.Include != nil {
					exportField.Include = SplitList(decodeAny(e.Include))
				}
				if e.Exclude != nil {
					exportField.Exclude = SplitList(decodeAny(e.Exclude))
				}
				haveExport = true
			}
		case "dependencies":
			rec.Dependencies = decodeDependencies(v)
		case "examples":
			rawExamples = v
		default:
			rec.SetExtra(key, decodeAny(v))
		}
	}

	if haveExport {
		rec.Export = exportField
	}

	if legacyURL != "" {
		if rec.Repository == nil && strings.HasSuffix(legacyURL, ".git") {
			rec.Repository = RepositoryFromURL(legacyURL, nil)
		} else if rec.Homepage == "" {
			rec.Homepage = legacyURL
		}
	}
	if rec.Repository == nil {
		if info := DeriveFromRemoteURL(remoteURL); info != nil {
			rec.Repository = info.Repository
		}
	}

	return rec, rawExamples, nil
}
