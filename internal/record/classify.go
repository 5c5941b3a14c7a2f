package record

import "strings"

// SplitMisc partitions misc records into preprints and undergraduate theses.
// The misc kind doubles for both: an undergraduate thesis is a misc entry
// whose note holds a URL followed by free text containing the word "thesis".
// That substring check is a fragility inherited from the source format, kept
// as-is so existing databases do not silently reclassify.
//
// Relative order within each partition matches the input order.
func SplitMisc(miscs []Record) (preprints, undergradTheses []Record) {
	for _, rec := range miscs {
		if strings.Contains(rec.Note, "thesis") {
			undergradTheses = append(undergradTheses, rec)
		} else {
			preprints = append(preprints, rec)
		}
	}
	return preprints, undergradTheses
}
