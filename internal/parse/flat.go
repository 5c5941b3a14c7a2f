package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Blank is the sentinel value marking an absent attribute in the flat format.
const Blank = "<BLANK>"

// flatAttributes gives the fixed attribute order of each kind in the flat
// database format. Every attribute has exactly one line per entry, with the
// Blank sentinel standing in for absent values.
var flatAttributes = map[string][]string{
	"article":       {"author", "title", "journal", "volume", "number", "pages", "year", "note", "url"},
	"book":          {"author", "title", "edition", "publisher", "year", "url"},
	"incollection":  {"author", "title", "editor", "booktitle", "pages", "publisher", "year", "url"},
	"inproceedings": {"author", "title", "editor", "booktitle", "publisher", "series", "volume", "pages", "year", "note", "url"},
	"mastersthesis": {"author", "title", "school", "address", "year", "url"},
	"misc":          {"author", "title", "howpublished", "year", "note", "url"},
	"phdthesis":     {"author", "title", "school", "address", "year", "url"},
	"techreport":    {"author", "title", "number", "institution", "address", "year", "note", "url"},
	"unpublished":   {"author", "title", "note", "month", "year", "url"},
}

// ParseFlat reads a flat-format publications database. Entries are returned
// in file order.
func ParseFlat(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	lineno := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineno++
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}

		attrs, known := flatAttributes[line]
		if !known {
			return nil, &MalformedInputError{
				Err: fmt.Errorf("line %d: unknown entry kind %q", lineno, line),
			}
		}
		kind := line

		entry := Entry{Kind: kind, Fields: make(map[string]string)}
		for _, attr := range attrs {
			value, ok := next()
			if !ok {
				return nil, &MalformedInputError{
					Err: fmt.Errorf("line %d: unexpected end of file in %s entry", lineno, kind),
				}
			}
			if value == Blank {
				continue
			}
			switch attr {
			case "author":
				entry.Authors = splitNames(value)
			case "editor":
				entry.Editors = splitNames(value)
			default:
				entry.Fields[attr] = value
			}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return entries, nil
}

// splitNames splits a " and "-separated name list, trimming each name.
func splitNames(s string) []string {
	parts := strings.Split(s, " and ")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
