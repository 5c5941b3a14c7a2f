// Package order establishes the citation display order of publications:
// chronological by year, then alphabetical by first-author surname.
package order

import (
	"sort"

	"github.com/sagemath/pubparse/internal/names"
	"github.com/sagemath/pubparse/internal/record"
)

// Sort returns a permutation of the indices of recs establishing display
// order: ascending four-digit year (compared as strings), then first-author
// surname in case-sensitive lexicographic order, with ties keeping their
// original relative order. The input may span multiple kinds.
func Sort(recs []record.Record) ([]int, error) {
	keys := make([]struct{ year, surname string }, len(recs))
	for i, rec := range recs {
		year, err := rec.PubYear()
		if err != nil {
			return nil, err
		}
		keys[i].year = year
		keys[i].surname = names.Surname(rec.Author)
	}

	perm := make([]int, len(recs))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := keys[perm[a]], keys[perm[b]]
		if ka.year != kb.year {
			return ka.year < kb.year
		}
		return ka.surname < kb.surname
	})
	return perm, nil
}
