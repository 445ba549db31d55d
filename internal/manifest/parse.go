package manifest

import (
	"encoding/json"
	"os"
)

// ParseFromBytes parses a single manifest document of the given dialect,
// without directory context. Example discovery never runs here: there's no
// directory to walk, and a declared glob-pattern examples field can't be
// resolved without one, so it's honored only when it is already a list of
// records; otherwise Examples stays nil.
func ParseFromBytes(data []byte, kind DialectKind, remoteURL string) (*Record, error) {
	rec, rawExamples, err := parseDialect(data, kind, remoteURL)
	if err != nil {
		return nil, err
	}
	if rawExamples != nil {
		if examples, ok := decodeExampleRecords(rawExamples); ok {
			rec.Examples = examples
		}
	}
	return rec, nil
}

// ParseFromDir detects the manifest dialect in dir, parses it, and runs
// example discovery against the directory. It always falls back to the
// full directory probe when remoteURL doesn't pin an exact file; callers
// carrying a config.Config should use ParseFromDirWithConfig, which honors
// FallbackToSniff instead.
func ParseFromDir(dir string, remoteURL string) (*Record, error) {
	return parseFromDir(dir, remoteURL, true)
}

func parseFromDir(dir, remoteURL string, fallbackToSniff bool) (*Record, error) {
	kind, path, err := DetectDialectWithFallback(dir, remoteURL, fallbackToSniff)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(kind, err)
	}

	rec, rawExamples, err := parseDialect(data, kind, remoteURL)
	if err != nil {
		return nil, err
	}

	examples, err := resolveExamples(dir, rawExamples)
	if err != nil {
		return nil, err
	}
	rec.Examples = examples
	return rec, nil
}

// parseDialect dispatches to the dialect-specific parser. rawExamples is
// non-nil only for the JSON dialects that carry a top-level "examples"
// field (in practice, LIBRARY_JSON and MODULE_JSON).
func parseDialect(data []byte, kind DialectKind, remoteURL string) (*Record, json.RawMessage, error) {
	switch kind {
	case LibraryJSON:
		return ParseLibraryJSON(data, remoteURL)
	case ModuleJSON:
		return ParseModuleJSON(data)
	case LibraryProperties:
		rec, err := ParseLibraryProperties(data, remoteURL)
		return rec, nil, err
	case PlatformJSON:
		rec, err := ParsePlatformJSON(data)
		return rec, nil, err
	case PackageJSON:
		rec, err := ParsePackageJSON(data)
		return rec, nil, err
	default:
		return nil, nil, newParseError(kind, errUnknownDialect(kind))
	}
}

// resolveExamples decides between: a declared list of example records
// (used verbatim), a declared list of glob patterns
// (expanded, falling back to the heuristic walker when no file matches any
// pattern), and no declaration at all (the heuristic walker runs outright).
func resolveExamples(dir string, rawExamples json.RawMessage) ([]Example, error) {
	if rawExamples != nil {
		if examples, ok := decodeExampleRecords(rawExamples); ok {
			return examples, nil
		}
		if patterns, ok := decodeStringList(rawExamples); ok {
			expanded, err := ExpandGlobExamples(dir, patterns)
			if err != nil {
				return nil, err
			}
			if len(expanded) > 0 {
				return expanded, nil
			}
		}
	}
	return WalkExamples(dir)
}

// decodeExampleRecords decodes a declared list of example records. A list
// mixing glob strings with records is treated as a record list: any
// non-string element switches to record-mode and the strings are ignored.
// A list made only of strings is not a record list.
func decodeExampleRecords(raw json.RawMessage) ([]Example, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	examples := make([]Example, 0, len(items))
	globs := 0
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			globs++
			continue
		}
		var ex Example
		if err := json.Unmarshal(item, &ex); err != nil || (ex.Name == "" && ex.Base == "") {
			return nil, false
		}
		examples = append(examples, ex)
	}
	if len(items) > 0 && globs == len(items) {
		return nil, false
	}
	return examples, true
}

func decodeStringList(raw json.RawMessage) ([]string, bool) {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

type unknownDialectError struct{ kind DialectKind }

func (e unknownDialectError) Error() string { return "unknown manifest dialect: " + string(e.kind) }

func errUnknownDialect(kind DialectKind) error { return unknownDialectError{kind: kind} }
