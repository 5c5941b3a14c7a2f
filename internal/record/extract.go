package record

import (
	"strings"

	"github.com/sagemath/pubparse/internal/parse"
)

// Extract normalizes a raw parsed entry into a Record. Scalar attributes are
// copied verbatim (already trimmed by the parser); the structured author and
// editor lists are flattened back into " and "-joined display strings. An
// entry without at least one author is rejected, since a missing author
// would corrupt every downstream sort and citation.
func Extract(e parse.Entry) (Record, error) {
	kind, err := ParseKind(e.Kind)
	if err != nil {
		return Record{}, err
	}
	if len(e.Authors) == 0 {
		return Record{}, &MissingAuthorError{Key: e.Key, Title: e.Fields["title"]}
	}

	rec := Record{
		Kind:   kind,
		Key:    e.Key,
		Author: strings.Join(e.Authors, " and "),
		Editor: strings.Join(e.Editors, " and "),
	}
	for name, value := range e.Fields {
		switch name {
		case "title":
			rec.Title = value
		case "year":
			rec.Year = value
		case "date":
			rec.Date = value
		case "journal", "journaltitle":
			rec.Journal = value
		case "booktitle":
			rec.Booktitle = value
		case "volume":
			rec.Volume = value
		case "number":
			rec.Number = value
		case "pages":
			rec.Pages = value
		case "publisher":
			rec.Publisher = value
		case "series":
			rec.Series = value
		case "school":
			rec.School = value
		case "address":
			rec.Address = value
		case "institution":
			rec.Institution = value
		case "edition":
			rec.Edition = value
		case "howpublished":
			rec.Howpublished = value
		case "month":
			rec.Month = value
		case "type":
			rec.Type = value
		case "note":
			rec.Note = value
		case "url":
			rec.URL = value
		}
	}
	return rec, nil
}

// BuildSet extracts every entry and groups the records by kind, preserving
// database order. The first extraction failure aborts the whole build; a
// database with a broken entry gets no output at all.
func BuildSet(entries []parse.Entry) (*Set, error) {
	set := &Set{}
	for _, e := range entries {
		rec, err := Extract(e)
		if err != nil {
			return nil, err
		}
		if err := set.Add(rec); err != nil {
			return nil, err
		}
	}
	return set, nil
}
