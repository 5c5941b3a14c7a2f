// Package render builds the HTML display string and the BibTeX stanza for a
// publication record. Optional attributes are included only when present;
// missing mandatory attributes are an error, never silently blank.
package render

import (
	"strings"

	"github.com/sagemath/pubparse/internal/names"
	"github.com/sagemath/pubparse/internal/record"
)

// HTML renders a record as a one-line HTML fragment: formatted author list,
// hyperlinked title when a URL is known, kind-specific fields, year, closing
// period. The result has been passed through ReplaceSpecial.
func HTML(rec record.Record) (string, error) {
	switch rec.Kind {
	case record.Article:
		return htmlArticle(rec)
	case record.Book:
		return htmlBook(rec)
	case record.InCollection:
		return htmlInCollection(rec)
	case record.InProceedings:
		return htmlInProceedings(rec)
	case record.MastersThesis:
		return htmlThesis(rec, "Masters thesis")
	case record.PhDThesis:
		return htmlThesis(rec, "PhD thesis")
	case record.Misc:
		return HTMLMisc(rec, false)
	case record.TechReport:
		return htmlTechReport(rec)
	case record.Unpublished:
		return htmlUnpublished(rec)
	}
	return "", &record.UnsupportedKindError{Kind: string(rec.Kind)}
}

func htmlArticle(rec record.Record) (string, error) {
	if rec.Journal == "" {
		return "", missing(rec, "journal")
	}
	var b strings.Builder
	writeHead(&b, rec)
	b.WriteString(rec.Journal + ", ")
	for _, f := range []struct{ name, value string }{
		{"volume", rec.Volume},
		{"number", rec.Number},
		{"pages", rec.Pages},
	} {
		if f.value != "" {
			b.WriteString(f.name + " " + f.value + ", ")
		}
	}
	return finishHTML(&b, rec)
}

func htmlBook(rec record.Record) (string, error) {
	if rec.Publisher == "" {
		return "", missing(rec, "publisher")
	}
	var b strings.Builder
	writeHead(&b, rec)
	if rec.Edition != "" {
		b.WriteString(rec.Edition + " edition, ")
	}
	b.WriteString(rec.Publisher + ", ")
	return finishHTML(&b, rec)
}

func htmlInCollection(rec record.Record) (string, error) {
	if rec.Booktitle == "" {
		return "", missing(rec, "booktitle")
	}
	var b strings.Builder
	writeHead(&b, rec)
	if rec.Editor != "" {
		b.WriteString("In " + names.Format(rec.Editor) + " (ed.). ")
	}
	b.WriteString(rec.Booktitle + ". ")
	if rec.Publisher != "" {
		b.WriteString(rec.Publisher + ", ")
	}
	if rec.Pages != "" {
		b.WriteString("pages " + rec.Pages + ", ")
	}
	return finishHTML(&b, rec)
}

func htmlInProceedings(rec record.Record) (string, error) {
	if rec.Booktitle == "" {
		return "", missing(rec, "booktitle")
	}
	var b strings.Builder
	writeHead(&b, rec)
	if rec.Editor != "" {
		b.WriteString("In " + names.Format(rec.Editor) + " (ed.). ")
	}
	b.WriteString(rec.Booktitle + ". ")
	if rec.Publisher != "" {
		b.WriteString(rec.Publisher + ", ")
	}
	if rec.Series != "" {
		b.WriteString(rec.Series + ", ")
	}
	if rec.Volume != "" {
		b.WriteString("volume " + rec.Volume + ", ")
	}
	if rec.Pages != "" {
		// Capitalize when pages directly follow the booktitle period.
		if strings.HasSuffix(strings.TrimSpace(b.String()), ".") {
			b.WriteString("Pages " + rec.Pages + ", ")
		} else {
			b.WriteString("pages " + rec.Pages + ", ")
		}
	}
	return finishHTML(&b, rec)
}

func htmlThesis(rec record.Record, label string) (string, error) {
	if rec.School == "" {
		return "", missing(rec, "school")
	}
	if rec.Type != "" {
		label = rec.Type
	}
	var b strings.Builder
	writeHead(&b, rec)
	b.WriteString(label + ", ")
	b.WriteString(rec.School + ", ")
	if rec.Address != "" {
		b.WriteString(rec.Address + ", ")
	}
	return finishHTML(&b, rec)
}

// HTMLMisc renders a misc record. With thesis set, the entry is an
// undergraduate thesis and its note text is included after the leading URL
// has been stripped off.
func HTMLMisc(rec record.Record, thesis bool) (string, error) {
	var b strings.Builder
	writeHead(&b, rec)
	if rec.Howpublished != "" {
		b.WriteString(rec.Howpublished + ", ")
	}
	if thesis {
		if note := noteText(rec.Note); note != "" {
			b.WriteString(note + ", ")
		}
	}
	return finishHTML(&b, rec)
}

func htmlTechReport(rec record.Record) (string, error) {
	if rec.Institution == "" {
		return "", missing(rec, "institution")
	}
	var b strings.Builder
	writeHead(&b, rec)
	b.WriteString(rec.Institution + ", ")
	if rec.Address != "" {
		b.WriteString(rec.Address + ", ")
	}
	if rec.Number != "" {
		b.WriteString("technical report number " + rec.Number + ", ")
	}
	return finishHTML(&b, rec)
}

func htmlUnpublished(rec record.Record) (string, error) {
	var b strings.Builder
	writeHead(&b, rec)
	if rec.Month != "" {
		b.WriteString(rec.Month + ", ")
	}
	return finishHTML(&b, rec)
}

// writeHead writes the formatted author list and the (possibly hyperlinked)
// title, each followed by ". ".
func writeHead(b *strings.Builder, rec record.Record) {
	b.WriteString(names.Format(rec.Author) + ". ")
	b.WriteString(htmlTitle(rec))
}

// htmlTitle wraps the title in a hyperlink when the record carries a URL.
// The note field may hold a URL as its first token; an explicit url field
// overrides it.
func htmlTitle(rec record.Record) string {
	url := ""
	if rec.Note != "" {
		url = ReplaceSpecialURL(firstToken(rec.Note))
	}
	if rec.URL != "" {
		url = ReplaceSpecialURL(firstToken(rec.URL))
	}
	if strings.Contains(url, "http://") || strings.Contains(url, "https://") {
		return `<a href="` + url + `">` + rec.Title + "</a>. "
	}
	return rec.Title + ". "
}

// finishHTML appends the year and closing period, then applies the special
// character pass.
func finishHTML(b *strings.Builder, rec record.Record) (string, error) {
	year, err := rec.PubYear()
	if err != nil {
		return "", err
	}
	b.WriteString(year + ".")
	return ReplaceSpecial(strings.TrimSpace(b.String())), nil
}

// noteText strips the leading URL from an undergraduate thesis note,
// handling the "<url> Bachelor thesis" convention.
func noteText(note string) string {
	note = strings.TrimSpace(note)
	if strings.Contains(note, "http://") || strings.Contains(note, "https://") {
		if _, rest, ok := strings.Cut(note, " "); ok {
			return strings.TrimSpace(rest)
		}
		return ""
	}
	return note
}

func firstToken(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func missing(rec record.Record, field string) error {
	return &record.MissingFieldError{Field: field, Kind: rec.Kind, Title: rec.Title}
}
