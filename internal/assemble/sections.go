// Package assemble merges rendered publications into the output artifacts:
// the four ordered HTML display sections, the marker-spliced HTML page, the
// template-macro file, and the BibTeX database file.
package assemble

import (
	"github.com/sagemath/pubparse/internal/order"
	"github.com/sagemath/pubparse/internal/record"
	"github.com/sagemath/pubparse/internal/render"
)

// Item is one publication in display order: the raw record plus its rendered
// HTML string.
type Item struct {
	Record record.Record
	HTML   string
}

// Section is an ordered display section of the publications page.
type Section struct {
	Name  string
	Items []Item
}

// SectionSet holds the four display sections: papers (articles, collection
// chapters, proceedings papers, technical reports), theses (Master's, PhD,
// undergraduate), books (published and unpublished manuscripts), and
// preprints.
type SectionSet struct {
	Papers    Section
	Theses    Section
	Books     Section
	Preprints Section
}

// All returns the sections in page order.
func (s *SectionSet) All() []Section {
	return []Section{s.Papers, s.Theses, s.Books, s.Preprints}
}

// Sections renders every record and arranges each section in citation order:
// year ascending, then first-author surname.
func Sections(set *record.Set) (*SectionSet, error) {
	preprints, undergrad := record.SplitMisc(set.Miscs)

	papers, err := buildSection("papers",
		group{recs: set.Articles},
		group{recs: set.InCollections},
		group{recs: set.InProceedings},
		group{recs: set.TechReports},
	)
	if err != nil {
		return nil, err
	}
	theses, err := buildSection("thesis",
		group{recs: set.MastersTheses},
		group{recs: set.PhDTheses},
		group{recs: undergrad, undergradThesis: true},
	)
	if err != nil {
		return nil, err
	}
	books, err := buildSection("books",
		group{recs: set.Books},
		group{recs: set.Unpublisheds},
	)
	if err != nil {
		return nil, err
	}
	pre, err := buildSection("preprints",
		group{recs: preprints},
	)
	if err != nil {
		return nil, err
	}

	return &SectionSet{Papers: papers, Theses: theses, Books: books, Preprints: pre}, nil
}

// group is a run of records sharing a rendering mode.
type group struct {
	recs            []record.Record
	undergradThesis bool
}

func buildSection(name string, groups ...group) (Section, error) {
	var items []Item
	for _, g := range groups {
		for _, rec := range g.recs {
			var html string
			var err error
			if g.undergradThesis {
				html, err = render.HTMLMisc(rec, true)
			} else {
				html, err = render.HTML(rec)
			}
			if err != nil {
				return Section{}, err
			}
			items = append(items, Item{Record: rec, HTML: html})
		}
	}

	recs := make([]record.Record, len(items))
	for i, it := range items {
		recs[i] = it.Record
	}
	perm, err := order.Sort(recs)
	if err != nil {
		return Section{}, err
	}

	ordered := make([]Item, len(items))
	for i, idx := range perm {
		ordered[i] = items[idx]
	}
	return Section{Name: name, Items: ordered}, nil
}
