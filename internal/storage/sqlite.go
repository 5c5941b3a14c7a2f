// Package storage maintains a queryable SQLite index of extracted
// publications. The index is derived data, rebuilt from the source databases
// on every generate run; the source files stay authoritative.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Row is one indexed publication.
type Row struct {
	Database    string `json:"database"`
	Section     string `json:"section"`
	Position    int    `json:"position"` // display order within the section
	Kind        string `json:"kind"`
	CitationKey string `json:"citation_key"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	HTML        string `json:"html"`
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Database string
	Section  string
	Kind     string
	Year     string
}

const selectFields = `db, section, pos, kind, citation_key, author, title, year, html`

// OpenDB opens or creates the index at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS publications (
			db TEXT NOT NULL,
			section TEXT NOT NULL,
			pos INTEGER NOT NULL,
			kind TEXT NOT NULL,
			citation_key TEXT NOT NULL,
			author TEXT NOT NULL,
			title TEXT NOT NULL,
			year TEXT NOT NULL,
			html TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_publications_db ON publications(db);
		CREATE INDEX IF NOT EXISTS idx_publications_year ON publications(year);
	`
	_, err := db.Exec(schema)
	return err
}

// ReplaceDatabase atomically swaps the indexed rows for one source database.
func (d *DB) ReplaceDatabase(name string, rows []Row) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM publications WHERE db = ?`, name); err != nil {
		return fmt.Errorf("clearing index for %s: %w", name, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO publications (` + selectFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(name, r.Section, r.Position, r.Kind,
			r.CitationKey, r.Author, r.Title, r.Year, r.HTML)
		if err != nil {
			return fmt.Errorf("indexing %q: %w", r.Title, err)
		}
	}
	return tx.Commit()
}

// List returns indexed publications matching the filter, ordered by database,
// section and display position.
func (d *DB) List(f Filter) ([]Row, error) {
	var conds []string
	var args []interface{}
	for _, c := range []struct {
		col, val string
	}{
		{"db", f.Database},
		{"section", f.Section},
		{"kind", f.Kind},
		{"year", f.Year},
	} {
		if c.val != "" {
			conds = append(conds, c.col+" = ?")
			args = append(args, c.val)
		}
	}

	query := `SELECT ` + selectFields + ` FROM publications`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY db, section, pos`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var r Row
		err := rows.Scan(&r.Database, &r.Section, &r.Position, &r.Kind,
			&r.CitationKey, &r.Author, &r.Title, &r.Year, &r.HTML)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Count returns the number of indexed publications per source database.
func (d *DB) Count() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT db, COUNT(*) FROM publications GROUP BY db`)
	if err != nil {
		return nil, fmt.Errorf("counting index: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[name] = n
	}
	return counts, rows.Err()
}
