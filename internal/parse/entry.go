// Package parse reads bibliography databases into raw entries. Two input
// forms are supported: the line-oriented flat format historically used for
// the publications database, and standard BibTeX.
package parse

import "fmt"

// Entry is one raw parsed entry: the kind keyword from the source, a
// key/value map of scalar attributes (keys lowercased, values trimmed),
// and ordered author and editor name lists in "First Last" form.
//
// Entries are an intermediate shape only; record.Extract turns them into
// typed publication records.
type Entry struct {
	Kind    string
	Key     string // citation key, when the source has one
	Fields  map[string]string
	Authors []string
	Editors []string
}

// Format selects the input parser for a database file.
type Format string

const (
	// FormatFlat is the custom line-oriented format: a kind keyword line,
	// one attribute value per line in a fixed per-kind order, "<BLANK>" for
	// absent values, blank lines between entries.
	FormatFlat Format = "flat"
	// FormatBibTeX is a standard BibTeX database.
	FormatBibTeX Format = "bibtex"
)

// ParseFormat validates a format name from configuration.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatFlat, FormatBibTeX:
		return f, nil
	}
	return "", fmt.Errorf("unknown database format %q (want flat or bibtex)", s)
}

// MalformedInputError wraps a failure from one of the input parsers. It is
// fatal for the database being parsed.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed database %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed database: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
