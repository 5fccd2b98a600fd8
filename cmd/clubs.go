package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/model"
	"github.com/pable/golfstats/internal/report"
)

var (
	clubsDispersion string
	clubsFilter     *filterFlags
)

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "Per-club distance summaries and dispersion",
	Long: `Show average, min, max and spread of distance for every club with at least
two measured shots. With --dispersion, also tally one attribute per club, e.g.
--dispersion direction_to_target shows where each club's shots finish.`,
	Args: cobra.NoArgs,
	RunE: runClubs,
}

func init() {
	clubsCmd.Flags().StringVar(&clubsDispersion, "dispersion", "", "attribute to tally per club (e.g. direction_to_target, ball_direction)")
	clubsFilter = addFilterFlags(clubsCmd)
}

// attrCode carries a raw attribute code through the generic per-club tally.
type attrCode uint8

func (c attrCode) String() string { return strconv.Itoa(int(c)) }

func runClubs(cmd *cobra.Command, args []string) error {
	var attr model.Attribute
	if clubsDispersion != "" {
		a, err := model.ParseAttribute(clubsDispersion)
		if err != nil {
			return fmt.Errorf("--dispersion: %w", err)
		}
		attr = a
	}
	c, err := clubsFilter.criteria()
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
	shots = aggregator.Filter(shots, rounds, c)

	u := units()
	report.PrintClubSummaries(os.Stdout, aggregator.ClubSummaries(shots), u)
	if clubsDispersion != "" {
		groups := aggregator.GroupByClub(shots, func(s *model.Shot) attrCode { return attrCode(attr.ShotCode(s)) })
		report.PrintDispersion(os.Stdout, attr, groups)
	}
	return nil
}
