// Package names formats " and "-joined author lists for display and for
// BibTeX citation keys.
package names

import "strings"

// Format joins an author list for display: one name is returned unchanged,
// two become "A and B", three or more become "A, B, ..., and Z".
func Format(authors string) string {
	names := split(authors)
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}

// CitationKey builds a bare identifier for a BibTeX stanza from an author
// list and a four-digit year: Surname2007, SteinJoyner2005, or NameEtAl2010
// for three or more authors. LaTeX markup characters are stripped so the
// result is a valid key token.
func CitationKey(authors, year string) string {
	names := split(authors)
	var key string
	switch len(names) {
	case 0:
		key = year
	case 1:
		key = Surname(names[0]) + year
	case 2:
		key = Surname(names[0]) + Surname(names[1]) + year
	default:
		key = Surname(names[0]) + "EtAl" + year
	}
	return stripSpecial(key)
}

// Surname returns the last whitespace-delimited token of the first author in
// the given name list. This heuristic mishandles multi-word surnames and
// "Last, First" order; it is kept because the historical sort order and
// citation keys depend on it.
func Surname(authors string) string {
	first := strings.TrimSpace(strings.SplitN(authors, " and ", 2)[0])
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

func split(authors string) []string {
	parts := strings.Split(authors, " and ")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// stripSpecial deletes LaTeX markup characters outright rather than
// substituting them, leaving a bare identifier.
var stripSpecial = strings.NewReplacer(
	"{", "",
	"\\", "",
	"'", "",
	`"`, "",
	"}", "",
).Replace
