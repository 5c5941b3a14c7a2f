package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagemath/pubparse/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

const starterConfig = `# pubparse configuration
#
# Each database is processed independently: a failure in one never blocks
# regeneration of the others.
databases:
  - name: sage
    title: Publications citing Sage
    input: bibliography-sage.bib
    format: bibtex
    html: publications-sage.html
    html_style: macros
    bibtex: bibliography.bib

# Enforce permission bits on the generated files.
chmod: true
mode: "0755"
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		exitWithError(ExitError, "%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", path, err)
	}
	if jsonOutput {
		return outputJSON(map[string]string{"status": "created", "path": path})
	}
	outputHuman("wrote %s\n", path)
	return nil
}
