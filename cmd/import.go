package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/parser"
)

var importCmd = &cobra.Command{
	Use:   "import <export.json>...",
	Short: "Import rounds and shots from JSON export files",
	Long: `Import one or more JSON export files into the database.

Files are identified by a SHA-256 of their content, so importing the same file
twice is a no-op. Each file is stored in a single transaction.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, path := range args {
		exp, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		exists, err := db.ImportExists(exp.Hash)
		if err != nil {
			return fmt.Errorf("check import: %w", err)
		}
		if exists {
			lg.Info("already imported, skipping", "file", path, "hash", exp.Hash[:12])
			fmt.Fprintf(os.Stdout, "%s: already imported (%s), skipped.\n", path, exp.Hash[:12])
			continue
		}
		if err := db.InsertImport(exp.Hash, path, exp.Rounds, exp.Shots); err != nil {
			return fmt.Errorf("%s: store: %w", path, err)
		}
		lg.Info("imported", "file", path, "rounds", len(exp.Rounds), "shots", len(exp.Shots))
		fmt.Fprintf(os.Stdout, "%s: imported %d rounds, %d shots.\n", path, len(exp.Rounds), len(exp.Shots))
	}
	return nil
}
