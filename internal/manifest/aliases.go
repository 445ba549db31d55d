package manifest

import "regexp"

// platformAliases maps legacy/short platform identifiers to their canonical
// form. Read-only after package init; callers wanting to extend it pass
// their own table to RemapPlatforms instead of mutating this one.
var platformAliases = map[string]string{
	"avr":       "atmelavr",
	"sam":       "atmelsam",
	"esp8266":   "espressif8266",
	"esp32":     "espressif32",
	"espressif": "espressif8266",
}

// knownForgeHosts lists well-known source-hosting sites recognized for
// type="git" inference.
var knownForgeHosts = map[string]bool{
	"github.com":    true,
	"gitlab.com":    true,
	"bitbucket.org": true,
}

// repositoryTypes are the only values Record.Repository.Type may hold.
var repositoryTypes = map[string]bool{
	"git": true,
	"hg":  true,
	"svn": true,
}

// moduleJSONDefaultExclude is module.json's fixed export.exclude default.
var moduleJSONDefaultExclude = []string{"tests", "test", "*.doxyfile", "*.pdf"}

// libraryPropertiesDefaultExclude is library.properties's fixed
// export.exclude default.
var libraryPropertiesDefaultExclude = []string{"extras", "docs", "tests", "test", "*.doxyfile", "*.pdf"}

// moduleJSONDefaultPlatforms and moduleJSONDefaultFrameworks are fixed since
// module.json (Yotta) manifests never name a platform/framework themselves:
// every Yotta module targets mbed OS on any board.
var moduleJSONDefaultPlatforms = []string{"*"}
var moduleJSONDefaultFrameworks = []string{"mbed"}

// libraryPropertiesDefaultFrameworks is fixed for the same reason: every
// library.properties manifest describes an Arduino library.
var libraryPropertiesDefaultFrameworks = []string{"arduino"}

// defaultKeyword is used when a library.properties manifest has no
// "category" field to derive keywords from.
var defaultKeyword = "uncategorized"

// systemAllTokens mark a package.json "system" value that means "every
// platform", which is dropped rather than normalized to a one-item list.
var systemAllTokens = map[string]bool{"*": true, "all": true}

// libraryPropertiesKnownKeys are the keys the library.properties parser
// handles explicitly; anything else (dot_a_linkage, includes, custom
// fields) ends up in Extra verbatim, matching "unknown fields flow
// through".
var libraryPropertiesKnownKeys = map[string]bool{
	"name":          true,
	"version":       true,
	"sentence":      true,
	"paragraph":     true,
	"author":        true,
	"maintainer":    true,
	"architectures": true,
	"category":      true,
	"url":           true,
}

var (
	nameRe         = regexp.MustCompile(`^[a-zA-Z0-9][\w\-. ]*$`)
	versionRe      = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[\w.]+)?(?:\+[\w.]+)?$`)
	keywordRe      = regexp.MustCompile(`^[a-z0-9][a-z0-9 /+-]*$`)
	licenseRe      = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .()+\-]*$`)
	emailRe        = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	authorLineRe   = regexp.MustCompile(`^\s*([^<(]+?)\s*(?:<([^>]*)>)?\s*(?:\(([^)]*)\))?\s*$`)
	rawGithubURLRe = regexp.MustCompile(`^https?://raw\.githubusercontent\.com/([^/]+)/([^/]+)/[^/]+/(.+)$`)

	// caseInsensitiveAt matches the literal " AT " token (with surrounding
	// spaces) used by some LIBRARY_PROPERTIES authors to obfuscate emails.
	caseInsensitiveAt = regexp.MustCompile(`(?i) AT `)
)
