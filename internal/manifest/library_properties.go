package manifest

import (
	"strings"
)

// ParseLibraryProperties parses a library.properties document (the Arduino
// convention). remoteURL, when it resolves via DeriveFromRemoteURL,
// supplies export.include, and supplies repository whenever the "url"
// field did not already produce one (it is absent, or names a host that
// is not a known forge and so became the homepage).
func ParseLibraryProperties(data []byte, remoteURL string) (*Record, error) {
	props := ParseProperties(data)
	rec := NewRecord()

	rec.Name = propString(props, "name")
	rec.Version = propString(props, "version")
	rec.Frameworks = libraryPropertiesDefaultFrameworks

	sentence := propString(props, "sentence")
	paragraph := propString(props, "paragraph")
	rec.Sentence = sentence
	rec.Description = joinSentenceParagraph(sentence, paragraph)

	if arch, found := props.Get("architectures"); found {
		rec.Platforms = RemapPlatforms(arch, nil)
	} else {
		rec.Platforms = []string{"*"}
	}

	if category, found := props.Get("category"); found {
		rec.Keywords = NormalizeKeywords(category, "/", " ")
	} else {
		rec.Keywords = []string{defaultKeyword}
	}

	rec.Authors = mergeAuthorAndMaintainer(propString(props, "author"), propString(props, "maintainer"))

	exclude := append([]string{}, libraryPropertiesDefaultExclude...)
	export := &Export{Exclude: exclude}

	var repoURL string
	if u, found := props.Get("url"); found {
		if s, ok := u.(string); ok && s != "" {
			repoURL = s
		}
	}
	if repoURL != "" {
		if isKnownForge(repoURL, nil) {
			rec.Repository = RepositoryFromURL(repoURL, nil)
		} else {
			rec.Homepage = HomepageFromRepositoryURL(repoURL)
		}
	}
	if info := DeriveFromRemoteURL(remoteURL); info != nil {
		if rec.Repository == nil {
			rec.Repository = info.Repository
		}
		if info.Include != "" {
			export.Include = []string{info.Include}
		}
	}
	rec.Export = export

	// Everything else, including dot_a_linkage and includes, lands in
	// Extra verbatim.
	it := props.Iterator()
	for it.Next() {
		key, _ := it.Key().(string)
		if libraryPropertiesKnownKeys[key] {
			continue
		}
		rec.SetExtra(key, it.Value())
	}

	return rec, nil
}

// joinSentenceParagraph builds the description: "sentence" and "paragraph"
// are two halves of one text, joined with a single space; a period is
// injected between them only when sentence doesn't already end in terminal
// punctuation.
func joinSentenceParagraph(sentence, paragraph string) string {
	sentence = strings.TrimSpace(sentence)
	paragraph = strings.TrimSpace(paragraph)
	switch {
	case sentence == "":
		return paragraph
	case paragraph == "":
		return sentence
	case strings.HasSuffix(sentence, ".") || strings.HasSuffix(sentence, "!") || strings.HasSuffix(sentence, "?"):
		return sentence + " " + paragraph
	default:
		return sentence + ". " + paragraph
	}
}

// mergeAuthorAndMaintainer decomposes both fields and folds the maintainer
// entry into a matching author entry (by name+email) rather than emitting a
// duplicate, marking it Maintainer: true either way.
func mergeAuthorAndMaintainer(authorLine, maintainerLine string) []Author {
	authors := DecomposeAuthorLine(authorLine)
	maintainers := DecomposeAuthorLine(maintainerLine)

	for _, m := range maintainers {
		matched := false
		for i := range authors {
			if strings.EqualFold(authors[i].Name, m.Name) && strings.EqualFold(authors[i].Email, m.Email) {
				authors[i].Maintainer = true
				matched = true
				break
			}
		}
		if !matched {
			m.Maintainer = true
			authors = append(authors, m)
		}
	}
	return authors
}
