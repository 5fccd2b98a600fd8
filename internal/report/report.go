package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/golfstats/internal/model"
)

// Units selects how distances and elevations are displayed. Stored values
// are always metres.
type Units int

const (
	Metric Units = iota
	Imperial
)

const (
	yardsPerMetre = 1.0936133
	feetPerMetre  = 3.2808399
)

// ParseUnits maps a config value to Units; anything but "imperial" is metric.
func ParseUnits(s string) Units {
	if strings.EqualFold(s, "imperial") {
		return Imperial
	}
	return Metric
}

// Distance converts metres to the display unit.
func (u Units) Distance(m float64) float64 {
	if u == Imperial {
		return m * yardsPerMetre
	}
	return m
}

// Elevation converts metres to the display unit.
func (u Units) Elevation(m float64) float64 {
	if u == Imperial {
		return m * feetPerMetre
	}
	return m
}

func (u Units) distanceSuffix() string {
	if u == Imperial {
		return "yd"
	}
	return "m"
}

func (u Units) elevationSuffix() string {
	if u == Imperial {
		return "ft"
	}
	return "m"
}

func (u Units) dist(m float64) string {
	return fmt.Sprintf("%.1f%s", u.Distance(m), u.distanceSuffix())
}

func (u Units) distPtr(m *float64) string {
	if m == nil {
		return "—"
	}
	return u.dist(*m)
}

func (u Units) elev(m float64) string {
	return fmt.Sprintf("%+.1f%s", u.Elevation(m), u.elevationSuffix())
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func pct(f float64) string { return fmt.Sprintf("%.0f%%", f*100) }

func pctPtr(f *float64) string {
	if f == nil {
		return "—"
	}
	return pct(*f)
}

// sampleFlag grades how far a sample count can be trusted.
func sampleFlag(n int) string {
	switch {
	case n >= 20:
		return "OK"
	case n >= 5:
		return "LOW"
	default:
		return "VERY_LOW"
	}
}

// wilsonCI computes the 95% Wilson score confidence interval for a proportion.
// Returns (lo, hi) as fractions in [0, 1].
func wilsonCI(hits, n int) (lo, hi float64) {
	if n == 0 {
		return 0, 1
	}
	z := 1.96
	p := float64(hits) / float64(n)
	nf := float64(n)
	denom := 1 + z*z/nf
	center := (p + z*z/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom
	return math.Max(0, center-half), math.Min(1, center+half)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}

// PrintDistribution prints one categorical distribution. Nil prints nothing.
func PrintDistribution[T model.Category](w io.Writer, title string, d *model.Distribution[T]) {
	if d == nil {
		return
	}
	section(w, fmt.Sprintf("%s (n=%d)", title, d.Total))
	table := newTable(w)
	table.Header("VALUE", "N", "SHARE", "95% CI")
	for _, e := range d.Entries {
		lo, hi := wilsonCI(e.Count, d.Total)
		table.Append(e.Value.String(), strconv.Itoa(e.Count), pct(e.Fraction),
			fmt.Sprintf("%.0f–%.0f%%", lo*100, hi*100))
	}
	table.Render()
}

// PrintDistanceStats prints the numeric summary and its histogram.
func PrintDistanceStats(w io.Writer, s *model.NumericSummary, u Units) {
	if s == nil {
		return
	}
	section(w, "Distance")
	table := newTable(w)
	table.Header("N", "AVG", "MEDIAN", "MIN", "MAX", "STDDEV")
	table.Append(strconv.Itoa(s.Count), u.dist(s.Average), u.dist(s.Median),
		u.dist(s.Min), u.dist(s.Max), u.dist(s.StdDev))
	table.Render()
	PrintHistogram(w, s.Histogram, u)
}

const histogramWidth = 30

// PrintHistogram prints buckets as horizontal bars scaled to the fullest bucket.
func PrintHistogram(w io.Writer, h []model.HistogramBucket, u Units) {
	if len(h) == 0 {
		return
	}
	peak := 0
	for _, b := range h {
		peak = max(peak, b.Count)
	}
	section(w, "Histogram")
	table := newTable(w)
	table.Header("FROM", "TO", "N", " ")
	for _, b := range h {
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", b.Count*histogramWidth/peak)
		}
		table.Append(u.dist(b.Start), u.dist(b.End), strconv.Itoa(b.Count), bar)
	}
	table.Render()
}

// PrintElevation prints elevation extremes and distance by slope band.
func PrintElevation(w io.Writer, e *model.ElevationSummary, u Units) {
	if e == nil {
		return
	}
	section(w, "Elevation")
	table := newTable(w)
	table.Header("AVG_CHANGE", "MAX_UP", "MAX_DOWN", "UPHILL_AVG", "FLAT_AVG", "DOWNHILL_AVG")
	table.Append(u.elev(e.AvgElevationChange), u.elev(e.MaxUphill), u.elev(e.MaxDownhill),
		u.distPtr(e.UphillAvgDistance), u.distPtr(e.FlatAvgDistance), u.distPtr(e.DownhillAvgDistance))
	table.Render()
}

// PrintClubSummaries prints per-club distance statistics.
func PrintClubSummaries(w io.Writer, clubs []model.ClubSummary, u Units) {
	section(w, "Club distances")
	if len(clubs) == 0 {
		fmt.Fprintln(w, "(no club has two or more measured shots)")
		return
	}
	table := newTable(w)
	table.Header("CLUB", "N", "AVG", "MIN", "MAX", "STDDEV", "FLAG")
	for _, c := range clubs {
		table.Append(c.Club, strconv.Itoa(c.Count), u.dist(c.AvgDistance),
			u.dist(c.Min), u.dist(c.Max), u.dist(c.StdDev), sampleFlag(c.Count))
	}
	table.Render()
}

// PrintDispersion prints per-club tallies of one attribute, busiest club first.
func PrintDispersion[T model.Category](w io.Writer, attr model.Attribute, groups map[string]map[T]int) {
	section(w, "Dispersion by club: "+attr.String())
	if len(groups) == 0 {
		fmt.Fprintln(w, "(no shots record both a club and "+attr.String()+")")
		return
	}

	type row struct {
		club  string
		total int
	}
	rows := make([]row, 0, len(groups))
	for club, counts := range groups {
		n := 0
		for _, c := range counts {
			n += c
		}
		rows = append(rows, row{club, n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].total != rows[j].total {
			return rows[i].total > rows[j].total
		}
		return rows[i].club < rows[j].club
	})

	values := attr.Values()
	header := append([]any{"CLUB", "N"}, toAny(values)...)
	table := newTable(w)
	table.Header(header...)
	for _, r := range rows {
		cells := []any{r.club, strconv.Itoa(r.total)}
		byCode := make([]int, len(values)+1)
		for v, c := range groups[r.club] {
			if code := int(uint8(v)); code < len(byCode) {
				byCode[code] = c
			}
		}
		for _, n := range byCode[1:] {
			cells = append(cells, fmt.Sprintf("%d (%s)", n, pct(float64(n)/float64(r.total))))
		}
		table.Append(cells...)
	}
	table.Render()
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
