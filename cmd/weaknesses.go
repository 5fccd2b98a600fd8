package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/report"
)

var weaknessesFilter *filterFlags

var weaknessesCmd = &cobra.Command{
	Use:   "weaknesses",
	Short: "Rank the most severe recurring faults",
	Long: `Check slice and hook tendency, strike quality, fat strikes, accuracy,
distance control and mental state, and list up to five by severity.

Filter flags narrow the shots first, e.g. --club Driver.`,
	Args: cobra.NoArgs,
	RunE: runWeaknesses,
}

func init() {
	weaknessesFilter = addFilterFlags(weaknessesCmd)
}

func runWeaknesses(cmd *cobra.Command, args []string) error {
	c, err := weaknessesFilter.criteria()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	shots, rounds, err := loadAll(db)
	if err != nil {
		return err
	}
	filtered := aggregator.Filter(shots, rounds, c)
	if c.HasActive() {
		fmt.Fprintf(os.Stdout, "%d of %d shots match the filter\n", len(filtered), len(shots))
	}
	report.PrintWeaknesses(os.Stdout, aggregator.Weaknesses(filtered))
	return nil
}
