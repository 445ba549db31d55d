// Package manifest ingests package manifests written in one of five
// embedded-ecosystem conventions (library.json, module.json,
// library.properties, platform.json, package.json) and normalizes them into
// a single Record, which the schema validator then checks or coerces.
package manifest

import (
	"encoding/json"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// DialectKind identifies which manifest convention a document follows.
type DialectKind string

const (
	LibraryJSON       DialectKind = "LIBRARY_JSON"
	ModuleJSON        DialectKind = "MODULE_JSON"
	LibraryProperties DialectKind = "LIBRARY_PROPERTIES"
	PlatformJSON      DialectKind = "PLATFORM_JSON"
	PackageJSON       DialectKind = "PACKAGE_JSON"
)

// manifestFilenames maps the on-disk filename that identifies each dialect,
// in the detector's probe-order priority.
var manifestFilenames = []struct {
	name    string
	dialect DialectKind
}{
	{"library.json", LibraryJSON},
	{"library.properties", LibraryProperties},
	{"module.json", ModuleJSON},
	{"package.json", PackageJSON},
	{"platform.json", PlatformJSON},
}

// Author is one entry of Record.Authors.
type Author struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	URL        string `json:"url,omitempty"`
	Maintainer bool   `json:"maintainer,omitempty"`

	// ScalarInput marks an authors-list entry that arrived as a bare scalar
	// (e.g. a JSON string) rather than a record. It has no normalized shape
	// of its own; Validate rejects it with "Invalid input type" the same
	// way library.properties's unparseable author lines are recorded
	// and left for the validator to flag.
	ScalarInput bool `json:"-"`
}

// Repository describes where a package's source lives.
type Repository struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Branch string `json:"branch,omitempty"`
}

// Export governs which paths are packaged.
type Export struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// Example is one runnable demonstration project discovered under examples/.
type Example struct {
	Name  string   `json:"name"`
	Base  string   `json:"base"`
	Files []string `json:"files"`
}

// Dependency is one entry of Record.Dependencies.
type Dependency struct {
	Name       string   `json:"name"`
	Version    string   `json:"version,omitempty"`
	Platforms  []string `json:"platforms,omitempty"`
	Frameworks []string `json:"frameworks,omitempty"`
	Authors    []Author `json:"authors,omitempty"`
}

// Record is the normalized manifest all five dialects map to.
type Record struct {
	Name         string       `json:"name,omitempty"`
	Title        string       `json:"title,omitempty"`
	Version      string       `json:"version,omitempty"`
	Description  string       `json:"description,omitempty"`
	Homepage     string       `json:"homepage,omitempty"`
	License      string       `json:"license,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	Platforms    []string     `json:"platforms,omitempty"`
	Frameworks   []string     `json:"frameworks,omitempty"`
	Authors      []Author     `json:"authors,omitempty"`
	Repository   *Repository  `json:"repository,omitempty"`
	Export       *Export      `json:"export,omitempty"`
	Examples     []Example    `json:"examples,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
	System       []string     `json:"system,omitempty"`

	// Sentence is a library.properties-only passthrough field.
	Sentence string `json:"sentence,omitempty"`

	// FrameworksDetail is platform.json's framework->record mapping,
	// retained verbatim after only the names were lifted into Frameworks.
	FrameworksDetail map[string]json.RawMessage `json:"frameworks_detail,omitempty"`

	// Packages is platform.json's passthrough "packages" object.
	Packages json.RawMessage `json:"packages,omitempty"`

	// Extra holds unrecognized top-level fields and library.properties
	// keys with no normalized home (dot_a_linkage, includes, ...),
	// preserved in first-seen order.
	Extra *linkedhashmap.Map `json:"-"`
}

// NewRecord returns an empty Record with its ordered side-bags initialized.
func NewRecord() *Record {
	return &Record{Extra: linkedhashmap.New()}
}

// SetExtra records a forward-compatible field under key, preserving the
// order in which distinct keys were first seen.
func (r *Record) SetExtra(key string, value interface{}) {
	if r.Extra == nil {
		r.Extra = linkedhashmap.New()
	}
	r.Extra.Put(key, value)
}

// MarshalJSON flattens Extra's keys alongside the Record's declared fields,
// so unknown manifest fields survive serialization without callers having
// to special-case a side-bag.
func (r *Record) MarshalJSON() ([]byte, error) {
	type alias Record
	base, err := json.Marshal((*alias)(r))
	if err != nil {
		return nil, err
	}
	if r.Extra == nil || r.Extra.Empty() {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	if merged == nil {
		merged = map[string]json.RawMessage{}
	}
	it := r.Extra.Iterator()
	for it.Next() {
		key, _ := it.Key().(string)
		raw, err := json.Marshal(it.Value())
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}
