package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/pable/golfstats/internal/model"
)

var (
	upColor   = color.New(color.FgGreen, color.Bold)
	downColor = color.New(color.FgRed, color.Bold)
	highColor = color.New(color.FgRed, color.Bold)
	midColor  = color.New(color.FgYellow)
	headColor = color.New(color.FgCyan, color.Bold)
)

// PrintDashboard prints the unfiltered overview: totals, headline rates,
// club usage, club distances, trend and weaknesses.
func PrintDashboard(w io.Writer, d model.Dashboard, u Units) {
	headColor.Fprintf(w, "\nShots: %d  |  Rounds: %d  |  Courses: %d  |  Most used: %s\n",
		d.TotalShots, d.TotalRounds, d.UniqueCourses, orDash(d.MostUsedClub))
	if d.TotalShots == 0 {
		fmt.Fprintln(w, "\nNo shots recorded yet. Run 'golfstats import <file>' first.")
		return
	}

	section(w, "Headline rates")
	table := newTable(w)
	table.Header("METRIC", "RATE")
	table.Append("Pure strike", pctPtr(d.PureStrikeRate))
	table.Append("Straight at target", pctPtr(d.StraightRate))
	table.Append("On-pin length", pctPtr(d.OnPinRate))
	table.Append("Fairway hit", pctPtr(d.FairwayHitRate))
	table.Append("Green in regulation", pctPtr(d.GreenInRegulationRate))
	table.Render()

	PrintClubUsage(w, d.ClubUsage)
	PrintClubSummaries(w, d.ClubDistanceOverview, u)
	if d.Trend != nil {
		PrintTrend(w, *d.Trend, u)
	}
	PrintWeaknesses(w, d.Weaknesses)
}

// PrintClubUsage prints how often each club was used, most used first.
func PrintClubUsage(w io.Writer, usage []model.ClubUsage) {
	if len(usage) == 0 {
		return
	}
	section(w, "Club usage")
	table := newTable(w)
	table.Header("CLUB", "SHOTS", "SHARE")
	for _, c := range usage {
		table.Append(c.Club, strconv.Itoa(c.Count), pct(c.Fraction))
	}
	table.Render()
}

// PrintTrend prints the recent-vs-prior comparison.
func PrintTrend(w io.Writer, t model.TrendResult, u Units) {
	section(w, "Trend (last 5 rounds vs previous 5)")
	if !t.HasEnoughData {
		fmt.Fprintln(w, "(needs at least 10 rounds)")
		return
	}
	table := newTable(w)
	table.Header("METRIC", "PRIOR", "RECENT", "CHANGE")
	table.Append("Pure strike", pctPtr(t.PriorPureStrikeRate), pctPtr(t.RecentPureStrikeRate),
		arrow(t.PriorPureStrikeRate, t.RecentPureStrikeRate, func(d float64) string { return fmt.Sprintf("%+.0fpp", d*100) }))
	table.Append("Straight at target", pctPtr(t.PriorStraightRate), pctPtr(t.RecentStraightRate),
		arrow(t.PriorStraightRate, t.RecentStraightRate, func(d float64) string { return fmt.Sprintf("%+.0fpp", d*100) }))
	club := "Avg distance"
	if t.ComparisonClub != "" {
		club += " (" + t.ComparisonClub + ")"
	}
	table.Append(club, u.distPtr(t.PriorAvgDistance), u.distPtr(t.RecentAvgDistance),
		arrow(t.PriorAvgDistance, t.RecentAvgDistance, func(d float64) string {
			return fmt.Sprintf("%+.1f%s", u.Distance(d), u.distanceSuffix())
		}))
	table.Render()
}

// arrow renders recent-prior as a coloured delta; "—" when either side is missing.
func arrow(prior, recent *float64, format func(float64) string) string {
	if prior == nil || recent == nil {
		return "—"
	}
	d := *recent - *prior
	switch {
	case d > 0:
		return upColor.Sprint("▲ " + format(d))
	case d < 0:
		return downColor.Sprint("▼ " + format(d))
	}
	return "= " + format(0)
}

// PrintWeaknesses prints the ranked weakness list with a severity bar.
func PrintWeaknesses(w io.Writer, items []model.WeaknessItem) {
	section(w, "Weaknesses")
	if len(items) == 0 {
		fmt.Fprintln(w, "(nothing stands out; rules need at least 10 tagged shots)")
		return
	}
	table := newTable(w)
	table.Header("#", "AREA", "DETAIL", "SEVERITY")
	for i, it := range items {
		table.Append(strconv.Itoa(i+1), it.Label, it.Detail, severity(it.Severity))
	}
	table.Render()
}

func severity(s float64) string {
	bar := fmt.Sprintf("%-10s %3.0f%%", strings.Repeat("■", int(s*10+0.5)), s*100)
	switch {
	case s >= 0.7:
		return highColor.Sprint(bar)
	case s >= 0.4:
		return midColor.Sprint(bar)
	}
	return bar
}

// PrintShotAnalysis prints the filtered detail view. Distributions for
// filtered attributes are absent from a and so are skipped.
func PrintShotAnalysis(w io.Writer, a model.ShotAnalysis, u Units) {
	headColor.Fprintf(w, "\nShowing %d of %d shots\n", a.FilteredCount, a.TotalCount)
	if a.FilteredCount == 0 {
		fmt.Fprintln(w, "(no shots match the filter)")
		return
	}
	PrintDistanceStats(w, a.DistanceStats, u)
	PrintElevation(w, a.ElevationStats, u)

	PrintDistribution(w, "Club direction", a.ClubDirection)
	PrintDistribution(w, "Ball direction", a.BallDirection)
	PrintDistribution(w, "Lie", a.Lie)
	PrintDistribution(w, "Lie direction", a.LieDirection)
	PrintDistribution(w, "Shot type", a.ShotType)
	PrintDistribution(w, "Strike", a.Strike)
	PrintDistribution(w, "Mental state", a.MentalState)
	PrintDistribution(w, "Ball flight", a.BallFlight)
	PrintDistribution(w, "Direction to target", a.DirectionToTarget)
	PrintDistribution(w, "Distance to target", a.DistanceToTarget)
	PrintDistribution(w, "Wind direction", a.WindDirection)
	PrintDistribution(w, "Wind strength", a.WindStrength)
	PrintDistribution(w, "Fairway hit", a.FairwayHit)
	PrintDistribution(w, "Green in regulation", a.GreenInRegulation)

	if len(a.ClubStats) > 0 {
		PrintClubSummaries(w, a.ClubStats, u)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
