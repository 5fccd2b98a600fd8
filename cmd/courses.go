package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the distinct course names, for use with --course",
	Args:  cobra.NoArgs,
	RunE:  runCourses,
}

func runCourses(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rounds, err := db.AllRounds()
	if err != nil {
		return fmt.Errorf("load rounds: %w", err)
	}
	names := aggregator.CourseNames(rounds)
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "No courses recorded yet.")
		return nil
	}
	for _, n := range names {
		if n == "" {
			n = "(unnamed)"
		}
		fmt.Fprintln(os.Stdout, n)
	}
	return nil
}
