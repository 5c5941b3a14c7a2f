package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [database...]",
	Short: "Validate databases without writing any output",
	Long: `Run the full pipeline (parse, extract, classify, render, sort) for the
named databases without touching the output files. Errors name the failing
entry and the missing attribute so the source database can be fixed.

Examples:
  pubparse check
  pubparse check sage`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	dbs, err := selectDatabases(cfg, args)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	var summary RunSummary
	for _, db := range dbs {
		result := DatabaseResult{Database: db.Name, Status: "ok"}
		set, _, err := buildArtifacts(db)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
			summary.Failed++
		} else {
			result.Records = set.Len()
		}
		summary.Results = append(summary.Results, result)
	}

	os.Exit(reportSummary(summary))
	return nil
}
