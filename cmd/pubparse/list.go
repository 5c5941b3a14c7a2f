package main

import (
	"github.com/spf13/cobra"

	"github.com/sagemath/pubparse/internal/storage"
)

var listFilter storage.Filter

func init() {
	listCmd.Flags().StringVar(&listFilter.Database, "db", "", "Only list publications from this database")
	listCmd.Flags().StringVar(&listFilter.Section, "section", "", "Only list one section (papers, thesis, books, preprints)")
	listCmd.Flags().StringVar(&listFilter.Kind, "kind", "", "Only list one publication kind (article, book, ...)")
	listCmd.Flags().StringVar(&listFilter.Year, "year", "", "Only list publications from this year")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed publications",
	Long: `List publications from the SQLite index built by generate, in display
order.

Examples:
  pubparse list --db sage --year 2007
  pubparse list --kind phdthesis --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	db, err := storage.OpenDB(cfg.IndexPath())
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	rows, err := db.List(listFilter)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		return outputJSON(rows)
	}
	for _, r := range rows {
		outputHuman("%s/%s #%d [%s] %s: %s (%s)\n",
			r.Database, r.Section, r.Position+1, r.Kind, r.CitationKey, r.Title, r.Year)
	}
	return nil
}
