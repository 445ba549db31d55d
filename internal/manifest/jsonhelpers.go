package manifest

import (
	"encoding/json"
	"sort"
)

// decodeAny decodes v into a generic interface{}, returning nil on error.
func decodeAny(v json.RawMessage) interface{} {
	var out interface{}
	if err := json.Unmarshal(v, &out); err != nil {
		return nil
	}
	return out
}

// decodeString decodes v as a JSON string, returning "" for any other shape.
func decodeString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// decodeAuthors accepts either a single author object or a list of author
// objects (library.json accepts both shapes for "authors"). A list
// element that is a bare scalar (e.g. a plain string) rather than a record
// is kept as a ScalarInput-marked Author instead of being silently dropped,
// so the schema validator can flag it with "Invalid input type", the same
// way a malformed library.properties author line is still recorded for the
// validator to reject.
func decodeAuthors(v json.RawMessage) []Author {
	var rawList []json.RawMessage
	if err := json.Unmarshal(v, &rawList); err == nil {
		authors := make([]Author, 0, len(rawList))
		for _, raw := range rawList {
			var a Author
			if err := json.Unmarshal(raw, &a); err == nil {
				authors = append(authors, a)
				continue
			}
			var scalar string
			if err := json.Unmarshal(raw, &scalar); err != nil {
				scalar = string(raw)
			}
			authors = append(authors, Author{Name: scalar, ScalarInput: true})
		}
		return authors
	}
	var single Author
	if err := json.Unmarshal(v, &single); err == nil {
		return []Author{single}
	}
	return nil
}

// decodeRepository accepts either a repository object or a bare URL string.
func decodeRepository(v json.RawMessage) *Repository {
	var obj Repository
	if err := json.Unmarshal(v, &obj); err == nil && (obj.URL != "" || obj.Type != "") {
		return &obj
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return RepositoryFromURL(s, nil)
	}
	return nil
}

// decodeDependencies accepts either a {"name": "version"} map or a list of
// {"name":..., "version":...} objects.
func decodeDependencies(v json.RawMessage) []Dependency {
	var list []Dependency
	if err := json.Unmarshal(v, &list); err == nil && len(list) > 0 {
		return list
	}
	var asMap map[string]string
	if err := json.Unmarshal(v, &asMap); err == nil {
		deps := make([]Dependency, 0, len(asMap))
		for name, version := range asMap {
			deps = append(deps, Dependency{Name: name, Version: version})
		}
		sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
		return deps
	}
	return nil
}
