package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Preview a CSV or Excel name list",
	Long: `Read a name list from a CSV, TXT, or XLSX file and show what would
be imported. Columns are matched by header (Name, Count) with
automatic delimiter detection; a plain one-name-per-line file works
too.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	result := importer.ImportFile(args[0])

	for _, w := range result.Warnings {
		warnColor.Printf("warning: %s\n", w)
	}
	for _, e := range result.Errors {
		errorColor.Printf("error: %s\n", e)
	}
	if len(result.Errors) > 0 && len(result.Names) == 0 {
		return fmt.Errorf("import failed")
	}

	headerColor.Printf("%d names imported from %s\n", len(result.Names), args[0])
	for _, name := range result.Names {
		fmt.Printf("  %s\n", name)
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d rows failed to import", len(result.Errors))
	}
	return nil
}
