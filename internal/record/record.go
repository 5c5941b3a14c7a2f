// Package record defines the core domain types for publication entries.
package record

import "regexp"

// Kind identifies the category of a publication entry. It determines which
// attributes are mandatory, which are optional, and how the entry is rendered.
type Kind string

// The supported publication kinds. The names match the BibTeX entry types
// used in the source databases.
const (
	Article       Kind = "article"
	Book          Kind = "book"
	InCollection  Kind = "incollection"
	InProceedings Kind = "inproceedings"
	MastersThesis Kind = "mastersthesis"
	Misc          Kind = "misc"
	PhDThesis     Kind = "phdthesis"
	TechReport    Kind = "techreport"
	Unpublished   Kind = "unpublished"
)

// Kinds lists every supported kind in the order sections appear in the
// generated BibTeX file.
var Kinds = []Kind{
	Article, InCollection, InProceedings, MastersThesis,
	PhDThesis, Book, Unpublished, Misc, TechReport,
}

// ParseKind validates a kind keyword read from a source database.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Article, Book, InCollection, InProceedings, MastersThesis,
		Misc, PhDThesis, TechReport, Unpublished:
		return k, nil
	}
	return "", &UnsupportedKindError{Kind: s}
}

// Record is a single publication entry. Author, Title and a year (Year or
// Date) are always present after extraction; every other field is optional
// and an empty string means the attribute was absent from the source.
type Record struct {
	Kind  Kind
	Key   string // citation key from the source database, if any
	Title string

	// Author holds the full author list joined with " and ", each name in
	// "First Last" form. Editor uses the same convention.
	Author string
	Editor string

	Year string // four-digit year
	Date string // alternative to Year, e.g. "2021-03-15"

	Journal      string
	Booktitle    string
	Volume       string
	Number       string
	Pages        string
	Publisher    string
	Series       string
	School       string
	Address      string
	Institution  string
	Edition      string
	Howpublished string
	Month        string
	Type         string // thesis type label override, e.g. "Diploma thesis"

	// Note usually carries a download URL, possibly followed by free text.
	// URL, when present, takes precedence over Note as the link source.
	Note string
	URL  string
}

var yearRe = regexp.MustCompile(`\d{4}`)

// PubYear returns the four-digit publication year, taking Year when set and
// otherwise extracting the first four-digit run from Date.
func (r Record) PubYear() (string, error) {
	if r.Year != "" {
		return r.Year, nil
	}
	if y := yearRe.FindString(r.Date); y != "" {
		return y, nil
	}
	return "", &MissingYearError{Title: r.Title}
}

// Set groups extracted records by kind, preserving database order within
// each kind. It is built once per run and read-only thereafter.
type Set struct {
	Articles      []Record
	Books         []Record
	InCollections []Record
	InProceedings []Record
	MastersTheses []Record
	Miscs         []Record
	PhDTheses     []Record
	TechReports   []Record
	Unpublisheds  []Record
}

// Add appends a record to the slice for its kind.
func (s *Set) Add(rec Record) error {
	switch rec.Kind {
	case Article:
		s.Articles = append(s.Articles, rec)
	case Book:
		s.Books = append(s.Books, rec)
	case InCollection:
		s.InCollections = append(s.InCollections, rec)
	case InProceedings:
		s.InProceedings = append(s.InProceedings, rec)
	case MastersThesis:
		s.MastersTheses = append(s.MastersTheses, rec)
	case Misc:
		s.Miscs = append(s.Miscs, rec)
	case PhDThesis:
		s.PhDTheses = append(s.PhDTheses, rec)
	case TechReport:
		s.TechReports = append(s.TechReports, rec)
	case Unpublished:
		s.Unpublisheds = append(s.Unpublisheds, rec)
	default:
		return &UnsupportedKindError{Kind: string(rec.Kind)}
	}
	return nil
}

// ByKind returns the records of the given kind, in database order.
func (s *Set) ByKind(k Kind) []Record {
	switch k {
	case Article:
		return s.Articles
	case Book:
		return s.Books
	case InCollection:
		return s.InCollections
	case InProceedings:
		return s.InProceedings
	case MastersThesis:
		return s.MastersTheses
	case Misc:
		return s.Miscs
	case PhDThesis:
		return s.PhDTheses
	case TechReport:
		return s.TechReports
	case Unpublished:
		return s.Unpublisheds
	}
	return nil
}

// Len returns the total number of records across all kinds.
func (s *Set) Len() int {
	n := 0
	for _, k := range Kinds {
		n += len(s.ByKind(k))
	}
	return n
}
