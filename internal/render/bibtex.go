package render

import (
	"fmt"
	"strings"

	"github.com/sagemath/pubparse/internal/names"
	"github.com/sagemath/pubparse/internal/record"
)

// BibTeX renders a record as a BibTeX stanza. The citation key is generated
// from the author list and year, the kind-specific fields follow author and
// title in a fixed order, and any download URL is emitted as a note field
// (the url attribute taking precedence over note).
func BibTeX(rec record.Record) (string, error) {
	year, err := rec.PubYear()
	if err != nil {
		return "", err
	}

	var fields []field
	switch rec.Kind {
	case record.Article:
		if rec.Journal == "" {
			return "", missing(rec, "journal")
		}
		fields = []field{
			{"journal", rec.Journal},
			{"volume", rec.Volume},
			{"number", rec.Number},
			{"pages", rec.Pages},
		}
	case record.Book:
		if rec.Publisher == "" {
			return "", missing(rec, "publisher")
		}
		fields = []field{
			{"edition", rec.Edition},
			{"publisher", rec.Publisher},
		}
	case record.InCollection:
		if rec.Booktitle == "" {
			return "", missing(rec, "booktitle")
		}
		fields = []field{
			{"editor", rec.Editor},
			{"booktitle", rec.Booktitle},
			{"publisher", rec.Publisher},
			{"pages", rec.Pages},
		}
	case record.InProceedings:
		if rec.Booktitle == "" {
			return "", missing(rec, "booktitle")
		}
		fields = []field{
			{"editor", rec.Editor},
			{"booktitle", rec.Booktitle},
			{"publisher", rec.Publisher},
			{"series", rec.Series},
			{"volume", rec.Volume},
			{"pages", rec.Pages},
		}
	case record.MastersThesis, record.PhDThesis:
		if rec.School == "" {
			return "", missing(rec, "school")
		}
		fields = []field{
			{"school", rec.School},
			{"address", rec.Address},
		}
	case record.Misc:
		fields = []field{
			{"howpublished", rec.Howpublished},
		}
	case record.TechReport:
		if rec.Institution == "" {
			return "", missing(rec, "institution")
		}
		fields = []field{
			{"institution", rec.Institution},
			{"address", rec.Address},
			{"number", rec.Number},
		}
	case record.Unpublished:
		fields = []field{
			{"month", rec.Month},
		}
	default:
		return "", &record.UnsupportedKindError{Kind: string(rec.Kind)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", rec.Kind, names.CitationKey(rec.Author, year))
	writeField(&b, "author", rec.Author)
	writeField(&b, "title", rec.Title)
	for _, f := range fields {
		writeField(&b, f.name, f.value)
	}
	writeField(&b, "year", year)
	if url := noteURL(rec); url != "" {
		writeField(&b, "note", url)
	}
	b.WriteString("}")
	return b.String(), nil
}

type field struct {
	name, value string
}

// writeField emits one "  name = {value}," line, skipping absent values.
func writeField(b *strings.Builder, name, value string) {
	if value != "" {
		fmt.Fprintf(b, "  %s = {%s},\n", name, value)
	}
}

// noteURL picks the value for the BibTeX note field: the url attribute when
// present, otherwise the note attribute.
func noteURL(rec record.Record) string {
	if rec.URL != "" {
		return rec.URL
	}
	return rec.Note
}
