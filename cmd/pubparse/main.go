// Package main provides the pubparse CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput switches command output from human-readable text to JSON.
var jsonOutput bool

// configPath overrides the configuration file location.
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubparse",
	Short: "Generate publication listings from bibliography databases",
	Long: `pubparse converts bibliography databases into the artifacts served on
the website: a BibTeX file grouped by publication kind and an HTML page
section listing publications in citation order (by year, then by first
author's surname).

Databases are declared in pubparse.yml. Each can be the historical flat
format or standard BibTeX, and each failure is isolated: a broken database
never blocks regeneration of the others.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default pubparse.yml)")
	rootCmd.Version = Version
}
