package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sagemath/pubparse/internal/config"
)

const flatArticle = `article
William Stein and David Joyner
SAGE: System for Algebra and Geometry Experimentation
ACM SIGSAM Bulletin
39
2
61--64
2005
<BLANK>
<BLANK>
`

func TestSelectDatabases(t *testing.T) {
	cfg := &config.Config{Databases: []config.Database{
		{Name: "sage", Input: "a.txt", Format: "flat", HTML: "a.html"},
		{Name: "combinat", Input: "b.bib", Format: "bibtex", BibTeX: "b.bib.out"},
	}}

	tests := []struct {
		name      string
		args      []string
		wantNames []string
		wantErr   bool
	}{
		{name: "no args selects all", args: nil, wantNames: []string{"sage", "combinat"}},
		{name: "single name", args: []string{"combinat"}, wantNames: []string{"combinat"}},
		{name: "order follows arguments", args: []string{"combinat", "sage"}, wantNames: []string{"combinat", "sage"}},
		{name: "unknown name", args: []string{"mupad"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbs, err := selectDatabases(cfg, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("selectDatabases() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("selectDatabases() error = %v", err)
			}
			if len(dbs) != len(tt.wantNames) {
				t.Fatalf("got %d databases, want %d", len(dbs), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if dbs[i].Name != want {
					t.Errorf("database %d = %q, want %q", i, dbs[i].Name, want)
				}
			}
		})
	}
}

func TestGenerateDatabase(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "pubs.txt")
	if err := os.WriteFile(input, []byte(flatArticle), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	db := config.Database{
		Name:      "sage",
		Input:     input,
		Format:    "flat",
		HTML:      filepath.Join(dir, "pubs.html"),
		HTMLStyle: config.StyleMacros,
		BibTeX:    filepath.Join(dir, "pubs.bib"),
	}
	cfg := &config.Config{Databases: []config.Database{db}}

	result := generateDatabase(db, cfg, nil)
	if result.Status != "ok" {
		t.Fatalf("Status = %q (%s), want ok", result.Status, result.Error)
	}
	if result.Records != 1 {
		t.Errorf("Records = %d, want 1", result.Records)
	}
	if len(result.Outputs) != 2 {
		t.Fatalf("Outputs = %v, want both artifacts", result.Outputs)
	}

	bib, err := os.ReadFile(db.BibTeX)
	if err != nil {
		t.Fatalf("reading BibTeX output: %v", err)
	}
	if !strings.Contains(string(bib), "@article{SteinJoyner2005,") {
		t.Errorf("BibTeX output missing stanza:\n%s", bib)
	}

	html, err := os.ReadFile(db.HTML)
	if err != nil {
		t.Fatalf("reading HTML output: %v", err)
	}
	if !strings.Contains(string(html), "{% macro papers() %}") {
		t.Errorf("HTML output missing papers macro:\n%s", html)
	}
}

// A database that fails to parse is reported in its result and leaves the
// other databases untouched.
func TestGenerateDatabase_FailureIsolated(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "pubs.txt")
	if err := os.WriteFile(input, []byte(flatArticle), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	broken := config.Database{
		Name:   "broken",
		Input:  filepath.Join(dir, "missing.txt"),
		Format: "flat",
		BibTeX: filepath.Join(dir, "broken.bib"),
	}
	good := config.Database{
		Name:   "good",
		Input:  input,
		Format: "flat",
		BibTeX: filepath.Join(dir, "good.bib"),
	}
	cfg := &config.Config{Databases: []config.Database{broken, good}}

	var summary RunSummary
	for _, db := range cfg.Databases {
		result := generateDatabase(db, cfg, nil)
		if result.Status != "ok" {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	if summary.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", summary.Failed)
	}
	if summary.Results[0].Status != "error" || summary.Results[0].Error == "" {
		t.Errorf("broken database should report its error, got %+v", summary.Results[0])
	}
	if summary.Results[1].Status != "ok" {
		t.Errorf("good database should still generate, got %+v", summary.Results[1])
	}
	if _, err := os.Stat(good.BibTeX); err != nil {
		t.Errorf("good database output missing: %v", err)
	}
	if _, err := os.Stat(broken.BibTeX); !os.IsNotExist(err) {
		t.Error("broken database should produce no output")
	}
}

// A malformed entry is a data error for its database, not a crash.
func TestGenerateDatabase_MalformedEntry(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "pubs.txt")
	if err := os.WriteFile(input, []byte("patent\nnot a known kind\n"), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	db := config.Database{
		Name:   "sage",
		Input:  input,
		Format: "flat",
		BibTeX: filepath.Join(dir, "pubs.bib"),
	}
	cfg := &config.Config{Databases: []config.Database{db}}

	result := generateDatabase(db, cfg, nil)
	if result.Status != "error" {
		t.Fatalf("Status = %q, want error", result.Status)
	}
	if !strings.Contains(result.Error, "patent") {
		t.Errorf("error should name the offending kind, got %q", result.Error)
	}
}
