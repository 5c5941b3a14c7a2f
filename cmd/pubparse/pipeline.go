package main

import (
	"github.com/joho/godotenv"

	"github.com/sagemath/pubparse/internal/assemble"
	"github.com/sagemath/pubparse/internal/config"
	"github.com/sagemath/pubparse/internal/names"
	"github.com/sagemath/pubparse/internal/parse"
	"github.com/sagemath/pubparse/internal/record"
	"github.com/sagemath/pubparse/internal/storage"
)

// loadConfig reads the run configuration, letting a .env file supply
// PUBPARSE_CONFIG.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// selectDatabases resolves the database names given on the command line, or
// all configured databases when none are named.
func selectDatabases(cfg *config.Config, args []string) ([]config.Database, error) {
	if len(args) == 0 {
		return cfg.Databases, nil
	}
	dbs := make([]config.Database, 0, len(args))
	for _, name := range args {
		db, err := cfg.Find(name)
		if err != nil {
			return nil, err
		}
		dbs = append(dbs, *db)
	}
	return dbs, nil
}

// buildArtifacts runs the in-memory part of the pipeline for one database:
// parse, extract, classify, render and sort. Nothing is written.
func buildArtifacts(db config.Database) (*record.Set, *assemble.SectionSet, error) {
	format, err := parse.ParseFormat(db.Format)
	if err != nil {
		return nil, nil, err
	}
	entries, err := parse.ParseFile(db.Input, format)
	if err != nil {
		return nil, nil, err
	}
	set, err := record.BuildSet(entries)
	if err != nil {
		return nil, nil, err
	}
	sections, err := assemble.Sections(set)
	if err != nil {
		return nil, nil, err
	}
	return set, sections, nil
}

// indexRows flattens the ordered sections into index rows for one database.
func indexRows(sections *assemble.SectionSet) ([]storage.Row, error) {
	var rows []storage.Row
	for _, sec := range sections.All() {
		for pos, item := range sec.Items {
			rec := item.Record
			year, err := rec.PubYear()
			if err != nil {
				return nil, err
			}
			rows = append(rows, storage.Row{
				Section:     sec.Name,
				Position:    pos,
				Kind:        string(rec.Kind),
				CitationKey: names.CitationKey(rec.Author, year),
				Author:      rec.Author,
				Title:       rec.Title,
				Year:        year,
				HTML:        item.HTML,
			})
		}
	}
	return rows, nil
}

// reportSummary prints per-database results and returns the process exit
// code: data error when any database failed, success otherwise.
func reportSummary(summary RunSummary) int {
	if jsonOutput {
		outputJSON(summary)
	} else {
		for _, r := range summary.Results {
			if r.Status == "ok" {
				outputHuman("%s: %d publications", r.Database, r.Records)
				for _, out := range r.Outputs {
					outputHuman(" -> %s", out)
				}
				outputHuman("\n")
			} else {
				outputError(0, "%s: %s", r.Database, r.Error)
			}
		}
	}
	if summary.Failed > 0 {
		return ExitDataError
	}
	return ExitSuccess
}
