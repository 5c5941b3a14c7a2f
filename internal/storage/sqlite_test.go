package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "pubs.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRows() []Row {
	return []Row{
		{Section: "papers", Position: 0, Kind: "article", CitationKey: "Brown1999",
			Author: "Adam Brown", Title: "Early Article", Year: "1999", HTML: "Adam Brown. Early Article. 1999."},
		{Section: "papers", Position: 1, Kind: "article", CitationKey: "Adams2005",
			Author: "Zed Adams", Title: "Late Article", Year: "2005", HTML: "Zed Adams. Late Article. 2005."},
		{Section: "books", Position: 0, Kind: "book", CitationKey: "Stein2007",
			Author: "William Stein", Title: "A Book", Year: "2007", HTML: "William Stein. A Book. AMS, 2007."},
	}
}

func TestReplaceDatabaseAndList(t *testing.T) {
	db := openTestDB(t)
	if err := db.ReplaceDatabase("sage", sampleRows()); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}

	rows, err := db.List(Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// books sorts before papers, then by position
	if rows[0].Section != "books" || rows[1].Title != "Early Article" || rows[2].Title != "Late Article" {
		t.Errorf("unexpected order: %+v", rows)
	}
	if rows[0].Database != "sage" {
		t.Errorf("Database = %q, want sage", rows[0].Database)
	}
}

func TestReplaceDatabase_Swap(t *testing.T) {
	db := openTestDB(t)
	if err := db.ReplaceDatabase("sage", sampleRows()); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}

	// A second run replaces the previous rows completely.
	replacement := []Row{
		{Section: "papers", Position: 0, Kind: "article", CitationKey: "New2020",
			Author: "New Author", Title: "Only Paper", Year: "2020", HTML: "New Author. Only Paper. 2020."},
	}
	if err := db.ReplaceDatabase("sage", replacement); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}

	rows, err := db.List(Filter{Database: "sage"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Only Paper" {
		t.Errorf("stale rows survived the swap: %+v", rows)
	}
}

func TestReplaceDatabase_Isolated(t *testing.T) {
	db := openTestDB(t)
	if err := db.ReplaceDatabase("sage", sampleRows()); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}
	if err := db.ReplaceDatabase("combinat", sampleRows()[:1]); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}
	// Re-indexing one database leaves the other untouched.
	if err := db.ReplaceDatabase("combinat", nil); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}

	rows, err := db.List(Filter{Database: "sage"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("sage rows = %d, want 3", len(rows))
	}
}

func TestList_Filters(t *testing.T) {
	db := openTestDB(t)
	if err := db.ReplaceDatabase("sage", sampleRows()); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"by section", Filter{Section: "papers"}, 2},
		{"by kind", Filter{Kind: "book"}, 1},
		{"by year", Filter{Year: "2005"}, 1},
		{"combined", Filter{Section: "papers", Year: "1999"}, 1},
		{"no match", Filter{Year: "1234"}, 0},
		{"unknown database", Filter{Database: "other"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.List(tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(rows) != tt.want {
				t.Errorf("got %d rows, want %d", len(rows), tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	db := openTestDB(t)
	if err := db.ReplaceDatabase("sage", sampleRows()); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}
	if err := db.ReplaceDatabase("combinat", sampleRows()[:1]); err != nil {
		t.Fatalf("ReplaceDatabase() error = %v", err)
	}

	counts, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if counts["sage"] != 3 || counts["combinat"] != 1 {
		t.Errorf("Count() = %v", counts)
	}
}
