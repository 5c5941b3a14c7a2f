package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/sagemath/pubparse/internal/record"
	"github.com/sagemath/pubparse/internal/render"
)

// bibtexSections maps each kind to its banner label, in file order.
var bibtexSections = []struct {
	kind   record.Kind
	banner string
}{
	{record.Article, "articles"},
	{record.InCollection, "collections"},
	{record.InProceedings, "proceedings"},
	{record.MastersThesis, "Master's theses"},
	{record.PhDThesis, "PhD theses"},
	{record.Book, "books"},
	{record.Unpublished, "unpublished manuscripts"},
	{record.Misc, "preprints"},
	{record.TechReport, "technical reports"},
}

// BibTeXFile renders the whole record set as a BibTeX database: a dated
// header comment, then one banner-delimited section per kind with stanzas in
// database order.
func BibTeXFile(set *record.Set, title string, now time.Time) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%% $%s $\n", title)
	fmt.Fprintf(&b, "%% $Last updated: %s $\n\n", now.Format("2006-01-02"))

	for _, sec := range bibtexSections {
		fmt.Fprintf(&b, "--- %s ----------------------------------------\n\n", sec.banner)
		for _, rec := range set.ByKind(sec.kind) {
			stanza, err := render.BibTeX(rec)
			if err != nil {
				return "", err
			}
			b.WriteString(stanza + "\n\n")
		}
	}
	return b.String(), nil
}
