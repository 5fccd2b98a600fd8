package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/golfstats/internal/model"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func f(v float64) *float64 { return &v }

func TestUnits(t *testing.T) {
	assert.Equal(t, Metric, ParseUnits("metric"))
	assert.Equal(t, Imperial, ParseUnits("Imperial"))
	assert.Equal(t, Metric, ParseUnits(""))

	assert.Equal(t, 100.0, Metric.Distance(100))
	assert.InDelta(t, 109.36, Imperial.Distance(100), 0.01)
	assert.InDelta(t, 32.81, Imperial.Elevation(10), 0.01)
	assert.Equal(t, "150.0m", Metric.dist(150))
	assert.Equal(t, "—", Imperial.distPtr(nil))
	assert.Equal(t, "-3.0m", Metric.elev(-3))
}

func TestWilsonCI(t *testing.T) {
	lo, hi := wilsonCI(0, 0)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	lo, hi = wilsonCI(5, 10)
	assert.Less(t, lo, 0.5)
	assert.Greater(t, hi, 0.5)
	assert.InDelta(t, 0.5, (lo+hi)/2, 1e-9)
}

func TestPrintDistribution(t *testing.T) {
	var buf bytes.Buffer
	PrintDistribution[model.Strike](&buf, "Strike", nil)
	assert.Empty(t, buf.String())

	d := &model.Distribution[model.Strike]{
		Total: 4,
		Entries: []model.DistributionEntry[model.Strike]{
			{Value: model.StrikePure, Count: 3, Fraction: 0.75},
			{Value: model.StrikeFat, Count: 1, Fraction: 0.25},
		},
	}
	PrintDistribution(&buf, "Strike", d)
	out := buf.String()
	assert.Contains(t, out, "Strike (n=4)")
	assert.Contains(t, out, "Pure")
	assert.Contains(t, out, "75%")
	assert.Less(t, strings.Index(out, "Pure"), strings.Index(out, "Fat"))
}

func TestPrintTrend(t *testing.T) {
	var buf bytes.Buffer
	PrintTrend(&buf, model.TrendResult{}, Metric)
	assert.Contains(t, buf.String(), "needs at least 10 rounds")

	buf.Reset()
	PrintTrend(&buf, model.TrendResult{
		HasEnoughData:        true,
		ComparisonClub:       "7 Iron",
		RecentPureStrikeRate: f(0.6), PriorPureStrikeRate: f(0.4),
		RecentStraightRate: f(0.3), PriorStraightRate: f(0.5),
		RecentAvgDistance: f(150),
	}, Metric)
	out := buf.String()
	assert.Contains(t, out, "▲ +20pp")
	assert.Contains(t, out, "▼ -20pp")
	assert.Contains(t, out, "Avg distance (7 Iron)")
}

func TestPrintWeaknesses(t *testing.T) {
	var buf bytes.Buffer
	PrintWeaknesses(&buf, nil)
	assert.Contains(t, buf.String(), "nothing stands out")

	buf.Reset()
	PrintWeaknesses(&buf, []model.WeaknessItem{{Label: "Slice Tendency", Detail: "100% of shots slice", Severity: 1}})
	out := buf.String()
	assert.Contains(t, out, "Slice Tendency")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, strings.Repeat("■", 10))
}

func TestPrintDispersion(t *testing.T) {
	var buf bytes.Buffer
	PrintDispersion(&buf, model.AttrDirectionToTarget, map[string]map[model.DirectionToTarget]int{
		"7 Iron": {model.TargetStraight: 1},
		"Driver": {model.TargetFarLeft: 2, model.TargetStraight: 2},
	})
	out := buf.String()
	require.Contains(t, out, "direction_to_target")
	assert.Less(t, strings.Index(out, "Driver"), strings.Index(out, "7 Iron"), "busiest club first")
	assert.Contains(t, out, "2 (50%)")
	assert.Contains(t, out, "1 (100%)")
}

func TestPrintShotAnalysis_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintShotAnalysis(&buf, model.ShotAnalysis{TotalCount: 12}, Metric)
	assert.Contains(t, buf.String(), "Showing 0 of 12 shots")
	assert.Contains(t, buf.String(), "no shots match")
}

func TestPrintDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintDashboard(&buf, model.Dashboard{}, Metric)
	assert.Contains(t, buf.String(), "Most used: —")
	assert.Contains(t, buf.String(), "No shots recorded yet")
}
