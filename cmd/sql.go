package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the shot database",
	Long: `Run an arbitrary SQL query against the shot database and print results as a table.

Schema overview:
  imports(hash, source, round_count, shot_count, imported_at)
  rounds(id, import_hash, course_name, weather, temperature, wind_condition,
    starting_hole, created_at)
  shots(id, round_id, hole_number, shot_number, club, distance, carry_distance,
    elevation_change, carry_elevation_change, target_distance, power_pct,
    club_direction, ball_direction, lie, lie_direction, shot_type, strike,
    mental_state, ball_flight, direction_to_target, distance_to_target,
    wind_direction, wind_strength, fairway_hit, green_in_regulation,
    mental_state_note, notes, ignore_for_analytics, created_at)

Distances are metres. Categorical columns hold names ('Pure', 'FarLeft', ...);
an empty string means not recorded. Example:
  golfstats sql "SELECT club, COUNT(*), AVG(distance) FROM shots GROUP BY club"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	lg.Debug("raw query", "sql", query)
	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}

