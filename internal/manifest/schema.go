package manifest

import "strings"

// Validate checks rec against the package manifest schema. In strict
// mode, any failure returns a *ManifestError wrapping every field that
// failed. In lenient mode, invalid list entries (authors, keywords)
// are dropped rather than rejecting the whole record, and the same
// failures are returned as a non-nil ErrorMap alongside the coerced
// Record, never as the returned error.
func Validate(rec *Record, strict bool) (*Record, ErrorMap, error) {
	errs := ErrorMap{}

	if strings.TrimSpace(rec.Name) == "" {
		errs.Add("name", "Missing data for required field")
	} else if !nameRe.MatchString(rec.Name) {
		errs.Add("name", "Invalid value")
	}
	if strings.TrimSpace(rec.Version) == "" {
		errs.Add("version", "Missing data for required field")
	} else if !versionRe.MatchString(rec.Version) {
		errs.Add("version", "Invalid semantic versioning format")
		if !strict {
			rec.Version = ""
		}
	}

	if rec.License != "" && !licenseRe.MatchString(rec.License) {
		errs.Add("license", "Invalid SPDX license expression format")
		if !strict {
			rec.License = ""
		}
	}

	if rec.Repository != nil && rec.Repository.Type != "" && !repositoryTypes[rec.Repository.Type] {
		errs.Add("repository", "Invalid value, must be one of: git, hg, svn")
	}

	validKeywords := make([]string, 0, len(rec.Keywords))
	for _, kw := range rec.Keywords {
		if keywordRe.MatchString(kw) {
			validKeywords = append(validKeywords, kw)
		} else {
			errs.Add("keywords", "Invalid input type: "+kw)
		}
	}
	rec.Keywords = validKeywords

	validAuthors := make([]Author, 0, len(rec.Authors))
	for _, a := range rec.Authors {
		if reason := invalidAuthorReason(a); reason != "" {
			errs.Add("authors", reason)
			continue
		}
		validAuthors = append(validAuthors, a)
	}
	rec.Authors = validAuthors

	if len(errs) == 0 {
		return rec, nil, nil
	}
	if strict {
		return nil, errs, newValidationError(errs)
	}
	return rec, errs, nil
}

// invalidAuthorReason reports why an Author entry fails validation, or ""
// if it's valid. A name embedding a URL is the signature of a garbled
// free-form author line that DecomposeAuthorLine couldn't cleanly split.
func invalidAuthorReason(a Author) string {
	if a.ScalarInput {
		return "Invalid input type"
	}
	name := strings.TrimSpace(a.Name)
	switch {
	case name == "":
		return "Missing data for required field"
	case strings.Contains(name, "://"):
		return "Invalid input type"
	case len(name) > 80:
		return "Invalid input type"
	case a.Email != "" && !emailRe.MatchString(a.Email):
		return "Invalid input type"
	}
	return ""
}
