package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var roundsLimit int

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "List stored rounds, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&roundsLimit, "last", 0, "only show the N most recent rounds")
}

func runRounds(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rounds, err := db.ListRounds()
	if err != nil {
		return fmt.Errorf("list rounds: %w", err)
	}
	if len(rounds) == 0 {
		fmt.Fprintln(os.Stdout, "No rounds stored yet. Run 'golfstats import <export.json>' to add some.")
		return nil
	}
	if roundsLimit > 0 && roundsLimit < len(rounds) {
		rounds = rounds[:roundsLimit]
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("ID", "DATE", "COURSE", "WEATHER", "TEMP", "WIND", "START", "SHOTS")
	for _, r := range rounds {
		temp := "—"
		if r.Temperature != nil {
			temp = fmt.Sprintf("%d°C", *r.Temperature)
		}
		table.Append(
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			orDash(r.CourseName),
			orDash(r.Weather.String()),
			temp,
			orDash(r.WindCondition),
			strconv.Itoa(r.StartingHole),
			strconv.Itoa(r.ShotCount),
		)
	}
	table.Render()
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
