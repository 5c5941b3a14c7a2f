package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagemath/pubparse/internal/assemble"
	"github.com/sagemath/pubparse/internal/config"
	"github.com/sagemath/pubparse/internal/storage"
)

var generateSkipIndex bool

func init() {
	generateCmd.Flags().BoolVar(&generateSkipIndex, "no-index", false, "Skip refreshing the SQLite publication index")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [database...]",
	Short: "Regenerate the HTML and BibTeX artifacts",
	Long: `Regenerate the HTML and BibTeX artifacts for the named databases, or
for every configured database when none are named.

A database that fails to parse or render is reported and skipped; the
remaining databases are still regenerated.

Examples:
  pubparse generate
  pubparse generate sage combinat
  pubparse generate --no-index mupad`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	dbs, err := selectDatabases(cfg, args)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	var index *storage.DB
	if !generateSkipIndex {
		index, err = storage.OpenDB(cfg.IndexPath())
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		defer index.Close()
	}

	var summary RunSummary
	for _, db := range dbs {
		result := generateDatabase(db, cfg, index)
		if result.Status != "ok" {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	os.Exit(reportSummary(summary))
	return nil
}

// generateDatabase processes one database end to end. All errors are folded
// into the result so a broken database cannot abort the run.
func generateDatabase(db config.Database, cfg *config.Config, index *storage.DB) DatabaseResult {
	result := DatabaseResult{Database: db.Name, Status: "ok"}
	fail := func(err error) DatabaseResult {
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	set, sections, err := buildArtifacts(db)
	if err != nil {
		return fail(err)
	}
	result.Records = set.Len()

	if db.BibTeX != "" {
		content, err := assemble.BibTeXFile(set, db.HeaderTitle(), time.Now())
		if err != nil {
			return fail(err)
		}
		if err := assemble.WriteFile(db.BibTeX, []byte(content), cfg.FileMode(), cfg.Chmod); err != nil {
			return fail(err)
		}
		result.Outputs = append(result.Outputs, db.BibTeX)
	}

	if db.HTML != "" {
		var page []byte
		switch db.Style() {
		case config.StyleMacros:
			page = assemble.MacroFile(sections)
		default:
			template, err := os.ReadFile(db.HTML)
			if err != nil {
				return fail(fmt.Errorf("reading HTML template: %w", err))
			}
			page, err = assemble.SpliceMarkers(template, sections)
			if err != nil {
				return fail(err)
			}
		}
		if err := assemble.WriteFile(db.HTML, page, cfg.FileMode(), cfg.Chmod); err != nil {
			return fail(err)
		}
		result.Outputs = append(result.Outputs, db.HTML)
	}

	if index != nil {
		rows, err := indexRows(sections)
		if err != nil {
			return fail(err)
		}
		if err := index.ReplaceDatabase(db.Name, rows); err != nil {
			return fail(err)
		}
	}
	return result
}
