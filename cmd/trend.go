package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/report"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Compare the last 5 rounds against the 5 before them",
	Long: `Compare pure-strike rate, straight-at-target rate and the average distance
of the most used club between the five most recent rounds and the five before
them. Needs at least ten rounds.`,
	Args: cobra.NoArgs,
	RunE: runTrend,
}

func runTrend(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	shots, rounds, err := loadAll(db)
	if err != nil {
		return err
	}
	report.PrintTrend(os.Stdout, aggregator.Trend(shots, rounds), units())
	return nil
}
