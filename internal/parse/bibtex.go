package parse

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/nickng/bibtex"
)

// ParseBibTeX reads a BibTeX database. The underlying grammar handling is
// delegated to the bibtex library; this wrapper only normalizes the parsed
// entries into the Entry shape shared with the flat parser.
func ParseBibTeX(r io.Reader) ([]Entry, error) {
	db, err := bibtex.Parse(r)
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	entries := make([]Entry, 0, len(db.Entries))
	for _, e := range db.Entries {
		entry := Entry{
			Kind:   strings.ToLower(strings.TrimSpace(e.Type)),
			Key:    e.CiteName,
			Fields: make(map[string]string, len(e.Fields)),
		}
		for name, value := range e.Fields {
			key := strings.ToLower(strings.TrimSpace(name))
			val := strings.TrimSpace(value.String())
			switch key {
			case "author":
				entry.Authors = normalizeNames(val)
			case "editor":
				entry.Editors = normalizeNames(val)
			default:
				entry.Fields[key] = val
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseFile reads the database at path using the given format.
func ParseFile(path string, format Format) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	switch format {
	case FormatBibTeX:
		entries, err = ParseBibTeX(f)
	default:
		entries, err = ParseFlat(f)
	}
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return entries, nil
}

// normalizeNames splits a BibTeX name list and rewrites each name into
// "First Last" display form. BibTeX allows "Last, First"; the comma form is
// swapped, anything else is passed through as written.
func normalizeNames(s string) []string {
	names := splitNames(s)
	for i, name := range names {
		if last, first, ok := strings.Cut(name, ","); ok {
			first = strings.TrimSpace(first)
			last = strings.TrimSpace(last)
			if first != "" {
				names[i] = first + " " + last
			} else {
				names[i] = last
			}
		}
	}
	return names
}
