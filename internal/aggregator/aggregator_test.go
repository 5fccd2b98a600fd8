package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/golfstats/internal/model"
)

// baseTime anchors shot and round timestamps in tests.
var baseTime = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

// f returns a pointer to v.
func f(v float64) *float64 { return &v }

// makeShot returns a fully tagged 7 Iron shot of 150m in round 1.
// Callers override fields through opts.
func makeShot(opts ...func(*model.Shot)) model.Shot {
	s := model.Shot{
		RoundID:           1,
		HoleNumber:        1,
		ShotNumber:        1,
		Club:              "7 Iron",
		Distance:          f(150),
		Lie:               model.LieFairway,
		ShotType:          model.ShotFull,
		WindStrength:      model.WindCalm,
		MentalState:       model.MentalCalm,
		BallDirection:     model.BallStraight,
		Strike:            model.StrikePure,
		ClubDirection:     model.ClubStraight,
		BallFlight:        model.FlightMedium,
		DirectionToTarget: model.TargetStraight,
		DistanceToTarget:  model.TargetOnPin,
		CreatedAt:         baseTime,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// repeat returns n copies of shot.
func repeat(n int, shot model.Shot) []model.Shot {
	out := make([]model.Shot, n)
	for i := range out {
		out[i] = shot
	}
	return out
}

func makeRound(id int64, course string, weather model.Weather, created time.Time) model.Round {
	return model.Round{ID: id, CourseName: course, Weather: weather, StartingHole: 1, CreatedAt: created}
}

func club(name string) func(*model.Shot) { return func(s *model.Shot) { s.Club = name } }

func dist(d float64) func(*model.Shot) { return func(s *model.Shot) { s.Distance = f(d) } }

func inRound(id int64) func(*model.Shot) { return func(s *model.Shot) { s.RoundID = id } }

// ---- Dashboard ----

func TestDashboard_Empty(t *testing.T) {
	d := Dashboard(nil, nil)

	assert.Equal(t, 0, d.TotalShots)
	assert.Equal(t, 0, d.TotalRounds)
	assert.Empty(t, d.MostUsedClub)
	assert.Empty(t, d.ClubDistanceOverview)
	assert.Nil(t, d.PureStrikeRate)
	assert.Nil(t, d.Trend)
}

func TestDashboard_SingleShot(t *testing.T) {
	d := Dashboard([]model.Shot{makeShot()}, []model.Round{makeRound(1, "Links", model.WeatherSunny, baseTime)})

	assert.Equal(t, 1, d.TotalShots)
	assert.Equal(t, 1, d.TotalRounds)
	assert.Equal(t, 1, d.UniqueCourses)
	assert.Equal(t, "7 Iron", d.MostUsedClub)
	require.NotNil(t, d.Trend)
	assert.False(t, d.Trend.HasEnoughData)
	// A single distance sample cannot support a club summary.
	assert.Empty(t, d.ClubDistanceOverview)
}

func TestDashboard_MostUsedClubAndRanking(t *testing.T) {
	shots := []model.Shot{
		makeShot(club("Driver")),
		makeShot(club("Driver")),
		makeShot(club("Driver")),
		makeShot(club("7 Iron")),
		makeShot(club("")),
	}
	d := Dashboard(shots, nil)

	assert.Equal(t, "Driver", d.MostUsedClub)
	require.Len(t, d.ClubUsage, 3)
	assert.Equal(t, 3, d.ClubUsage[0].Count)
	assert.InDelta(t, 0.6, d.ClubUsage[0].Fraction, 1e-9)
	// Equal counts break by name.
	assert.Equal(t, "7 Iron", d.ClubUsage[1].Club)
	assert.Equal(t, UnknownClub, d.ClubUsage[2].Club)
	for i := 1; i < len(d.ClubUsage); i++ {
		assert.GreaterOrEqual(t, d.ClubUsage[i-1].Count, d.ClubUsage[i].Count)
	}
}

func TestDashboard_HeadlineRatesIndependentlyNullable(t *testing.T) {
	shots := []model.Shot{
		makeShot(func(s *model.Shot) { s.FairwayHit = model.FairwayYes }),
		makeShot(func(s *model.Shot) { s.FairwayHit = model.FairwayNo; s.Strike = model.StrikeFat }),
	}
	d := Dashboard(shots, nil)

	require.NotNil(t, d.PureStrikeRate)
	assert.InDelta(t, 0.5, *d.PureStrikeRate, 1e-9)
	require.NotNil(t, d.FairwayHitRate)
	assert.InDelta(t, 0.5, *d.FairwayHitRate, 1e-9)
	require.NotNil(t, d.StraightRate)
	assert.InDelta(t, 1.0, *d.StraightRate, 1e-9)
	require.NotNil(t, d.OnPinRate)
	assert.InDelta(t, 1.0, *d.OnPinRate, 1e-9)
	// No shot records GIR.
	assert.Nil(t, d.GreenInRegulationRate)
}

func TestDashboard_UniqueCourses(t *testing.T) {
	rounds := []model.Round{
		makeRound(1, "Links", model.WeatherSunny, baseTime),
		makeRound(2, "Links", model.WeatherCloudy, baseTime),
		makeRound(3, "Parkland", model.WeatherSunny, baseTime),
	}
	d := Dashboard([]model.Shot{makeShot()}, rounds)
	assert.Equal(t, 3, d.TotalRounds)
	assert.Equal(t, 2, d.UniqueCourses)
}

// ---- Shot analysis ----

func TestShotAnalysis_EmptyFiltered(t *testing.T) {
	all := repeat(5, makeShot())
	a := ShotAnalysis(all, nil, model.FilterCriteria{Club: "Driver"})

	assert.Equal(t, 0, a.FilteredCount)
	assert.Equal(t, 5, a.TotalCount)
	assert.Nil(t, a.DistanceStats)
	assert.Nil(t, a.ElevationStats)
	assert.Nil(t, a.Strike)
	assert.Empty(t, a.ClubStats)
}

func TestShotAnalysis_ClubFilterSuppressesClubStats(t *testing.T) {
	all := []model.Shot{
		makeShot(club("Driver"), dist(240)),
		makeShot(club("Driver"), dist(250)),
		makeShot(club("7 Iron"), dist(150)),
		makeShot(club("7 Iron"), dist(155)),
	}
	c := model.FilterCriteria{Club: "Driver"}
	filtered := Filter(all, nil, c)
	a := ShotAnalysis(all, filtered, c)

	assert.Equal(t, 2, a.FilteredCount)
	assert.Equal(t, 4, a.TotalCount)
	assert.NotNil(t, a.ClubStats)
	assert.Empty(t, a.ClubStats)
	require.NotNil(t, a.DistanceStats)
	assert.InDelta(t, 245, a.DistanceStats.Average, 1e-9)
}

func TestShotAnalysis_ActiveAttributeSuppressesDistribution(t *testing.T) {
	all := []model.Shot{
		makeShot(),
		makeShot(func(s *model.Shot) { s.Lie = model.LieBunker }),
	}
	c := model.FilterCriteria{Lie: model.LieFairway, Strike: model.StrikePure}
	a := ShotAnalysis(all, Filter(all, nil, c), c)

	assert.Nil(t, a.Lie)
	assert.Nil(t, a.Strike)
	require.NotNil(t, a.BallFlight)
	assert.Equal(t, 1, a.BallFlight.Total)
	require.NotNil(t, a.ShotType)
	// Nothing recorded for wind direction.
	assert.Nil(t, a.WindDirection)
}

func TestShotAnalysis_NoFiltersComputesEverything(t *testing.T) {
	all := []model.Shot{
		makeShot(club("Driver"), dist(240)),
		makeShot(club("Driver"), dist(260)),
		makeShot(func(s *model.Shot) { s.ElevationChange = f(5) }),
	}
	a := ShotAnalysis(all, all, model.FilterCriteria{})

	assert.Equal(t, 3, a.FilteredCount)
	require.NotNil(t, a.DistanceStats)
	assert.Equal(t, 3, a.DistanceStats.Count)
	require.NotNil(t, a.ElevationStats)
	require.NotNil(t, a.Lie)
	require.NotNil(t, a.Strike)
	require.Len(t, a.ClubStats, 1)
	assert.Equal(t, "Driver", a.ClubStats[0].Club)
}

func TestCourseNames(t *testing.T) {
	rounds := []model.Round{
		makeRound(1, "Parkland", model.WeatherSunny, baseTime),
		makeRound(2, "Links", model.WeatherSunny, baseTime),
		makeRound(3, "Parkland", model.WeatherSunny, baseTime),
	}
	assert.Equal(t, []string{"Links", "Parkland"}, CourseNames(rounds))
	assert.Empty(t, CourseNames(nil))
}
