package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/model"
	"github.com/pable/golfstats/internal/report"
	"github.com/pable/golfstats/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive filtering session",
	Long: `Open a persistent session against the database. Shots are loaded once;
build up a filter with 'set', then 'show' the analysis. Type 'help' for
available commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// shellSession is the state of one interactive session.
type shellSession struct {
	db       *storage.DB
	shots    []model.Shot
	rounds   []model.Round
	criteria model.FilterCriteria
	// raw keeps the values as typed, for 'filters'.
	raw map[string]string
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	s := &shellSession{db: db, raw: make(map[string]string)}
	if err := s.reload(); err != nil {
		return err
	}

	cGreeting.Println("golfstats shell")
	cMuted.Printf("%d shots, %d rounds loaded; type 'help' or 'exit'\n", len(s.shots), len(s.rounds))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("golfstats")
		if n := s.criteria.ActiveCount(); n > 0 {
			cWarn.Printf("[%d]", n)
		}
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "set":
			if len(args) < 2 {
				cError.Fprintln(os.Stderr, "usage: set <name> <value>")
				continue
			}
			s.set(args[0], strings.Join(args[1:], " "))
		case "unset":
			if len(args) != 1 {
				cError.Fprintln(os.Stderr, "usage: unset <name>")
				continue
			}
			s.set(args[0], "")
		case "clear":
			s.criteria = model.FilterCriteria{}
			s.raw = make(map[string]string)
		case "filters":
			s.printFilters()
		case "show":
			filtered := aggregator.Filter(s.shots, s.rounds, s.criteria)
			report.PrintShotAnalysis(os.Stdout, aggregator.ShotAnalysisWithBuckets(s.shots, filtered, s.criteria, cfg.HistogramBuckets), units())
		case "weaknesses":
			report.PrintWeaknesses(os.Stdout, aggregator.Weaknesses(aggregator.Filter(s.shots, s.rounds, s.criteria)))
		case "clubs":
			report.PrintClubSummaries(os.Stdout, aggregator.ClubSummaries(aggregator.Filter(s.shots, s.rounds, s.criteria)), units())
		case "dashboard":
			report.PrintDashboard(os.Stdout, aggregator.Dashboard(s.shots, s.rounds), units())
		case "courses":
			for _, n := range aggregator.CourseNames(s.rounds) {
				fmt.Println(n)
			}
		case "reload":
			if err := s.reload(); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			cMuted.Printf("%d shots, %d rounds loaded\n", len(s.shots), len(s.rounds))
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q: type 'help'\n", cmd)
		}
	}
	return nil
}

func (s *shellSession) reload() error {
	shots, rounds, err := loadAll(s.db)
	if err != nil {
		return err
	}
	s.shots, s.rounds = shots, rounds
	return nil
}

// set applies one criterion by name; an empty value clears it.
func (s *shellSession) set(name, value string) {
	next := s.criteria
	if err := setCriterion(&next, name, value); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	s.criteria = next
	key := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	if value == "" {
		delete(s.raw, key)
	} else {
		s.raw[key] = value
	}
	n := len(aggregator.Filter(s.shots, s.rounds, s.criteria))
	cMuted.Printf("%d of %d shots match\n", n, len(s.shots))
}

func (s *shellSession) printFilters() {
	if len(s.raw) == 0 {
		cMuted.Println("no filters set")
		return
	}
	names := make([]string, 0, len(s.raw))
	for n := range s.raw {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Print("  ")
		cCmd.Printf("%-22s", n)
		fmt.Println(s.raw[n])
	}
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"set <name> <value>", "add a filter: club, course, weather, from, to, or an attribute"},
		{"unset <name>", "remove one filter"},
		{"clear", "remove all filters"},
		{"filters", "list active filters"},
		{"show", "shot analysis for the current filter"},
		{"weaknesses", "weaknesses within the current filter"},
		{"clubs", "club distances within the current filter"},
		{"dashboard", "unfiltered overview"},
		{"courses", "list course names"},
		{"reload", "re-read shots from the database"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-24s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
	cMuted.Println("  attributes: " + attributeList())
	fmt.Println()
}

func attributeList() string {
	names := make([]string, len(model.Attributes))
	for i, a := range model.Attributes {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
