package assemble

import (
	"fmt"
	"strings"
)

// Marker tokens delimiting the replaceable sections of an existing HTML
// publications page. Each appears on its own comment line in the template;
// the lines themselves survive splicing, only the content between a pair is
// regenerated.
const (
	StartArticles  = "START_TOKEN_ARTICLES"
	EndArticles    = "END_TOKEN_ARTICLES"
	StartTheses    = "START_TOKEN_THESES"
	EndTheses      = "END_TOKEN_THESES"
	StartBooks     = "START_TOKEN_BOOKS"
	EndBooks       = "END_TOKEN_BOOKS"
	StartPreprints = "START_TOKEN_PREPRINTS"
	EndPreprints   = "END_TOKEN_PREPRINTS"
)

// SpliceMarkers replaces the content between each marker pair in template
// with a freshly rendered ordered list. Every byte outside the marker pairs
// is preserved exactly.
func SpliceMarkers(template []byte, s *SectionSet) ([]byte, error) {
	content := string(template)
	for _, sec := range []struct {
		start, end string
		section    Section
	}{
		{StartArticles, EndArticles, s.Papers},
		{StartTheses, EndTheses, s.Theses},
		{StartBooks, EndBooks, s.Books},
		{StartPreprints, EndPreprints, s.Preprints},
	} {
		var err error
		content, err = spliceOne(content, sec.start, sec.end, sec.section)
		if err != nil {
			return nil, err
		}
	}
	return []byte(content), nil
}

// spliceOne rewrites the span between the line holding startTok and the line
// holding endTok.
func spliceOne(content, startTok, endTok string, section Section) (string, error) {
	si := strings.Index(content, startTok)
	if si < 0 {
		return "", fmt.Errorf("template is missing marker %s", startTok)
	}

	// Keep the start marker through the end of its line.
	insertAt := len(content)
	if nl := strings.IndexByte(content[si:], '\n'); nl >= 0 {
		insertAt = si + nl + 1
	}

	rel := strings.Index(content[insertAt:], endTok)
	if rel < 0 {
		return "", fmt.Errorf("template is missing marker %s", endTok)
	}
	ei := insertAt + rel

	// Keep the end marker from the start of its line.
	keepFrom := strings.LastIndexByte(content[:ei], '\n') + 1

	return content[:insertAt] + orderedList(section) + content[keepFrom:], nil
}

// orderedList renders a section as the <ol> block inserted between markers.
func orderedList(section Section) string {
	var b strings.Builder
	b.WriteString("  <ol>\n")
	for _, item := range section.Items {
		b.WriteString("    <li>" + item.HTML + "</li>\n")
	}
	b.WriteString("  </ol>\n\n")
	return b.String()
}
