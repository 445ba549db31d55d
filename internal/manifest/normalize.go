package manifest

import (
	"net/url"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerFold = cases.Lower(language.Und)

// SplitList passes a sequence
// through untouched, or split a comma-separated string into trimmed,
// non-empty elements. extraSeps lets callers split on additional characters (the
// LIBRARY_PROPERTIES category field also splits on "/").
func SplitList(v interface{}, extraSeps ...string) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitTrimmed(val, extraSeps...)
	default:
		return nil
	}
}

func splitTrimmed(s string, extraSeps ...string) []string {
	seps := append([]string{","}, extraSeps...)
	replaced := s
	for _, sep := range seps[1:] {
		replaced = strings.ReplaceAll(replaced, sep, seps[0])
	}
	parts := strings.Split(replaced, seps[0])
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeKeywords splits, Unicode-lowercases, and dedupes keywords,
// preserving first occurrence.
func NormalizeKeywords(v interface{}, extraSeps ...string) []string {
	items := SplitList(v, extraSeps...)
	seen := linkedhashset.New()
	for _, kw := range items {
		seen.Add(lowerFold.String(strings.TrimSpace(kw)))
	}
	out := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(string))
	}
	return out
}

// RemapPlatforms applies the platform alias table. extra overrides/extends
// the built-in alias table (internal/config.ExtraPlatformAliases).
func RemapPlatforms(v interface{}, extra map[string]string) []string {
	items := SplitList(v)
	for _, item := range items {
		if strings.TrimSpace(item) == "*" {
			return []string{"*"}
		}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if alias, ok := extra[item]; ok {
			out = append(out, alias)
			continue
		}
		if alias, ok := platformAliases[item]; ok {
			out = append(out, alias)
			continue
		}
		out = append(out, item)
	}
	return out
}

// DecomposeAuthorLine splits a free-form author line of the shape
// `NAME [<EMAIL>] [(URL)]`, with the literal " AT " substituted for "@" in
// the email. Multiple authors separated by "," are only split when no
// email/URL brackets are present in the line, since a raw comma can appear
// inside a free-form name.
func DecomposeAuthorLine(line string) []Author {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.ContainsAny(line, "<(") && strings.Contains(line, ",") && looksLikeNameList(line) {
		var authors []Author
		for _, part := range strings.Split(line, ",") {
			authors = append(authors, decomposeOneAuthor(part))
		}
		return authors
	}
	return []Author{decomposeOneAuthor(line)}
}

// looksLikeNameList guards the comma-split path against free-form prose
// ("Foo and contributors as documented in source, and at <url>") that
// happens to contain a comma but is really one author's description, not a
// list of several short names.
func looksLikeNameList(line string) bool {
	for _, part := range strings.Split(line, ",") {
		if len(strings.TrimSpace(part)) > 40 {
			return false
		}
	}
	return true
}

func decomposeOneAuthor(s string) Author {
	s = strings.TrimSpace(s)
	m := authorLineRe.FindStringSubmatch(s)
	if m == nil {
		return Author{Name: s}
	}
	a := Author{Name: strings.TrimSpace(m[1])}
	if email := strings.TrimSpace(m[2]); email != "" {
		a.Email = substituteAtToken(email)
	}
	if u := strings.TrimSpace(m[3]); u != "" {
		a.URL = u
	}
	return a
}

func substituteAtToken(email string) string {
	re := caseInsensitiveAt
	return re.ReplaceAllString(email, "@")
}

// RepositoryFromURL builds a Repository from a raw URL, inferring
// type="git" when the host is a known forge.
func RepositoryFromURL(raw string, extraForgeHosts []string) *Repository {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	repo := &Repository{URL: raw}
	if isKnownForge(raw, extraForgeHosts) {
		repo.Type = "git"
	}
	return repo
}

// HomepageFromRepositoryURL strips a trailing ".git" when a repository URL
// is instead being used to infer a homepage.
func HomepageFromRepositoryURL(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ".git")
}

func isKnownForge(rawURL string, extra []string) bool {
	u, err := url.Parse(rawURL)
	host := ""
	if err == nil {
		host = u.Host
	} else {
		// Git SCP-like syntax, e.g. git@github.com:user/repo.git
		if idx := strings.Index(rawURL, "@"); idx >= 0 {
			rest := rawURL[idx+1:]
			if c := strings.Index(rest, ":"); c >= 0 {
				host = rest[:c]
			}
		}
	}
	host = strings.ToLower(host)
	if knownForgeHosts[host] {
		return true
	}
	for _, h := range extra {
		if strings.EqualFold(h, host) {
			return true
		}
	}
	return false
}

// RemoteManifestInfo is the derived repository/export info for a manifest
// fetched from a raw.githubusercontent.com-style URL.
type RemoteManifestInfo struct {
	Repository *Repository
	Include    string
}

// DeriveFromRemoteURL parses a raw manifest URL of the form
// https://raw.githubusercontent.com/<owner>/<repo>/<ref>/<path> into a
// repository root URL and the export.include entry for the path's
// directory, or returns nil if remoteURL doesn't match that shape.
func DeriveFromRemoteURL(remoteURL string) *RemoteManifestInfo {
	m := rawGithubURLRe.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if m == nil {
		return nil
	}
	owner, repo, path := m[1], m[2], m[3]
	dir := dirnameOf(path)
	info := &RemoteManifestInfo{
		Repository: &Repository{
			Type: "git",
			URL:  "https://github.com/" + owner + "/" + repo,
		},
	}
	if dir != "" && dir != "." {
		info.Include = dir
	}
	return info
}

func dirnameOf(p string) string {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return ""
	}
	return p[:idx]
}
