package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/report"
)

var shotsFilter *filterFlags

var shotsCmd = &cobra.Command{
	Use:   "shots",
	Short: "Analyse a filtered subset of shots",
	Long: `Show distance and elevation statistics, a distance histogram and one
distribution per categorical attribute for the shots matching every given
filter flag. Attributes used as filters are left out of the distributions.

Example:
  golfstats shots --club "7 Iron" --lie fairway --from 2025-04-01`,
	Args: cobra.NoArgs,
	RunE: runShots,
}

func init() {
	shotsFilter = addFilterFlags(shotsCmd)
}

func runShots(cmd *cobra.Command, args []string) error {
	c, err := shotsFilter.criteria()
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
	lg.Debug("filter applied", "active", c.ActiveCount(), "matched", len(filtered))

	if c.HasActive() {
		fmt.Fprintf(os.Stdout, "%d filter(s) active\n", c.ActiveCount())
	}
	a := aggregator.ShotAnalysisWithBuckets(shots, filtered, c, cfg.HistogramBuckets)
	report.PrintShotAnalysis(os.Stdout, a, units())
	return nil
}
