package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/model"
)

var (
	exportOut    string
	exportFilter *filterFlags
)

// exportDoc is the top-level JSON written by export. Distances are metres
// regardless of the display units setting.
type exportDoc struct {
	GeneratedAt string             `json:"generated_at"`
	Filters     map[string]string  `json:"filters"`
	Dashboard   model.Dashboard    `json:"dashboard"`
	Analysis    model.ShotAnalysis `json:"analysis"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dashboard and a filtered analysis as JSON",
	Long: `Write the unfiltered dashboard and the shot analysis for the given filter
flags as one JSON document. Distances are always in metres.

Example:
  golfstats export --club Driver --out driver.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
	exportFilter = addFilterFlags(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	c, err := exportFilter.criteria()
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
	doc := buildExport(shots, rounds, c, exportFilter.active())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	return nil
}

func buildExport(shots []model.Shot, rounds []model.Round, c model.FilterCriteria, filters map[string]string) exportDoc {
	filtered := aggregator.Filter(shots, rounds, c)
	return exportDoc{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Filters:     filters,
		Dashboard:   aggregator.Dashboard(shots, rounds),
		Analysis:    aggregator.ShotAnalysisWithBuckets(shots, filtered, c, cfg.HistogramBuckets),
	}
}
