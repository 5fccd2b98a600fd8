package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/golfstats/internal/model"
)

func shotsWithDistances(ds ...float64) []model.Shot {
	out := make([]model.Shot, len(ds))
	for i, d := range ds {
		out[i] = makeShot(dist(d))
	}
	return out
}

func TestDistanceStats_FourValues(t *testing.T) {
	s := DistanceStats(shotsWithDistances(100, 200, 300, 400))
	require.NotNil(t, s)

	assert.InDelta(t, 250, s.Average, 1e-9)
	assert.InDelta(t, 250, s.Median, 1e-9)
	assert.Equal(t, 100.0, s.Min)
	assert.Equal(t, 400.0, s.Max)
	assert.Equal(t, 4, s.Count)
	// Population standard deviation: sqrt(12500).
	assert.InDelta(t, 111.80339887, s.StdDev, 1e-6)
	assert.Len(t, s.Histogram, DefaultHistogramBuckets)
}

func TestDistanceStats_OddMedian(t *testing.T) {
	s := DistanceStats(shotsWithDistances(300, 100, 200))
	require.NotNil(t, s)
	assert.Equal(t, 200.0, s.Median)
}

func TestDistanceStats_SingleValue(t *testing.T) {
	s := DistanceStats(shotsWithDistances(150))
	require.NotNil(t, s)
	assert.Equal(t, 0.0, s.StdDev)
	require.Len(t, s.Histogram, 1)
	assert.Equal(t, 1, s.Histogram[0].Count)
	assert.Equal(t, "150", s.Histogram[0].Label)
}

func TestDistanceStats_NoDistances(t *testing.T) {
	shots := []model.Shot{makeShot(func(s *model.Shot) { s.Distance = nil })}
	assert.Nil(t, DistanceStats(shots))
	assert.Nil(t, DistanceStats(nil))
}

func TestDistanceStats_IgnoresMissing(t *testing.T) {
	shots := append(shotsWithDistances(100, 200), makeShot(func(s *model.Shot) { s.Distance = nil }))
	s := DistanceStats(shots)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 150, s.Average, 1e-9)
}

func TestDistanceStats_OrderingInvariants(t *testing.T) {
	inputs := [][]float64{
		{1},
		{5, 5, 5},
		{10, 250, 3, 77.7, 140, 141, 142},
		{0.1, 0.2, 0.3, 1000},
	}
	for _, ds := range inputs {
		s := DistanceStats(shotsWithDistances(ds...))
		require.NotNil(t, s)
		assert.LessOrEqual(t, s.Min, s.Median)
		assert.LessOrEqual(t, s.Median, s.Max)
		assert.LessOrEqual(t, s.Min, s.Average)
		assert.LessOrEqual(t, s.Average, s.Max)
	}
}

func TestHistogram_AllSamplesCountedOnce(t *testing.T) {
	values := []float64{0, 12.5, 25, 37.5, 50, 62.5, 75, 87.5, 100, 33.3, 66.6, 99.99}
	h := Histogram(values, 8)
	require.Len(t, h, 8)

	total := 0
	for _, b := range h {
		total += b.Count
	}
	assert.Equal(t, len(values), total)
	assert.Equal(t, 100.0, h[len(h)-1].End)
	assert.Equal(t, 0.0, h[0].Start)

	// [0,12.5) holds only 0; the closed last bucket holds the max.
	assert.Equal(t, 1, h[0].Count)
	assert.Equal(t, 3, h[7].Count) // 87.5, 99.99, 100
	assert.Equal(t, "25", h[2].Label)
}

func TestHistogram_Contiguous(t *testing.T) {
	h := Histogram([]float64{3, 7, 11, 19, 23}, 5)
	require.Len(t, h, 5)
	for i := 1; i < len(h); i++ {
		assert.InDelta(t, h[i-1].End, h[i].Start, 1e-9)
	}
}

func TestHistogram_EqualMinMax(t *testing.T) {
	h := Histogram([]float64{42, 42, 42}, 8)
	require.Len(t, h, 1)
	assert.Equal(t, model.HistogramBucket{Start: 42, End: 42, Count: 3, Label: "42"}, h[0])
}

func TestHistogram_Empty(t *testing.T) {
	assert.Nil(t, Histogram(nil, 8))
}

func TestElevationStats_Bands(t *testing.T) {
	elev := func(dz, d float64) model.Shot {
		return makeShot(func(s *model.Shot) { s.ElevationChange = f(dz); s.Distance = f(d) })
	}
	shots := []model.Shot{
		elev(10, 140),
		elev(4, 150),
		elev(2, 160),  // boundary: flat
		elev(-2, 170), // boundary: flat
		elev(0, 180),
		elev(-8, 200),
		makeShot(), // no elevation
	}
	e := ElevationStats(shots)
	require.NotNil(t, e)

	assert.InDelta(t, 6.0/6.0, e.AvgElevationChange, 1e-9)
	assert.Equal(t, 10.0, e.MaxUphill)
	assert.Equal(t, -8.0, e.MaxDownhill)
	require.NotNil(t, e.UphillAvgDistance)
	assert.InDelta(t, 145, *e.UphillAvgDistance, 1e-9)
	require.NotNil(t, e.FlatAvgDistance)
	assert.InDelta(t, 170, *e.FlatAvgDistance, 1e-9)
	require.NotNil(t, e.DownhillAvgDistance)
	assert.InDelta(t, 200, *e.DownhillAvgDistance, 1e-9)
}

func TestElevationStats_EmptyBandIsNil(t *testing.T) {
	shots := []model.Shot{makeShot(func(s *model.Shot) { s.ElevationChange = f(0.5) })}
	e := ElevationStats(shots)
	require.NotNil(t, e)
	assert.Nil(t, e.UphillAvgDistance)
	assert.Nil(t, e.DownhillAvgDistance)
	require.NotNil(t, e.FlatAvgDistance)
}

func TestElevationStats_NoElevation(t *testing.T) {
	assert.Nil(t, ElevationStats([]model.Shot{makeShot()}))
}
