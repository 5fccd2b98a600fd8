package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/pable/golfstats/internal/model"
)

// DefaultHistogramBuckets is the bucket count used by DistanceStats.
const DefaultHistogramBuckets = 8

// flatBand is the elevation change (metres) within which a shot counts as flat.
const flatBand = 2.0

// DistanceStats summarises the recorded distances of shots, or returns nil
// when no shot has a distance.
func DistanceStats(shots []model.Shot) *model.NumericSummary {
	return DistanceStatsWithBuckets(shots, DefaultHistogramBuckets)
}

// DistanceStatsWithBuckets is DistanceStats with an explicit histogram bucket count.
func DistanceStatsWithBuckets(shots []model.Shot, buckets int) *model.NumericSummary {
	return summarize(collect(shots, func(s *model.Shot) *float64 { return s.Distance }), buckets)
}

// collect returns the non-nil values of one numeric field.
func collect(shots []model.Shot, field func(s *model.Shot) *float64) []float64 {
	var out []float64
	for i := range shots {
		if v := field(&shots[i]); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// summarize computes descriptive stats over values; nil when empty.
func summarize(values []float64, buckets int) *model.NumericSummary {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	// stats only errors on empty input, which is excluded above.
	avg, _ := stats.Mean(sorted)
	med, _ := stats.Median(sorted)
	return &model.NumericSummary{
		Average:   avg,
		Median:    med,
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		StdDev:    popStdDev(sorted),
		Count:     len(sorted),
		Histogram: Histogram(sorted, buckets),
	}
}

// popStdDev divides by n, not n-1, and is zero for fewer than two samples.
func popStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return 0
	}
	return sd
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m, _ := stats.Mean(values)
	return &m
}

// Histogram splits values into equal-width buckets spanning [min, max].
// Every bucket is half-open except the last, which is closed, so every value
// lands in exactly one bucket. When min == max a single bucket holds all values.
func Histogram(values []float64, buckets int) []model.HistogramBucket {
	if len(values) == 0 {
		return nil
	}
	if buckets < 1 {
		buckets = DefaultHistogramBuckets
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []model.HistogramBucket{{Start: lo, End: hi, Count: len(values), Label: bucketLabel(lo)}}
	}

	width := (hi - lo) / float64(buckets)
	out := make([]model.HistogramBucket, buckets)
	for i := range out {
		start := lo + float64(i)*width
		end := lo + float64(i+1)*width
		if i == buckets-1 {
			end = hi
		}
		out[i] = model.HistogramBucket{Start: start, End: end, Label: bucketLabel(start)}
	}
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		// Guard against rounding putting a value just below a bucket start.
		for idx > 0 && v < out[idx].Start {
			idx--
		}
		for idx < buckets-1 && v >= out[idx+1].Start {
			idx++
		}
		out[idx].Count++
	}
	return out
}

func bucketLabel(start float64) string {
	return fmt.Sprintf("%.0f", start)
}

// ElevationStats summarises elevation change and the distance hit in each
// elevation band, or returns nil when no shot has an elevation change.
func ElevationStats(shots []model.Shot) *model.ElevationSummary {
	var all, uphill, flat, downhill []float64
	for i := range shots {
		s := &shots[i]
		if s.ElevationChange == nil {
			continue
		}
		dz := *s.ElevationChange
		all = append(all, dz)
		if s.Distance == nil {
			continue
		}
		switch {
		case dz > flatBand:
			uphill = append(uphill, *s.Distance)
		case dz < -flatBand:
			downhill = append(downhill, *s.Distance)
		default:
			flat = append(flat, *s.Distance)
		}
	}
	if len(all) == 0 {
		return nil
	}
	maxUp, _ := stats.Max(all)
	maxDown, _ := stats.Min(all)
	return &model.ElevationSummary{
		AvgElevationChange:  *mean(all),
		MaxUphill:           maxUp,
		MaxDownhill:         maxDown,
		UphillAvgDistance:   mean(uphill),
		FlatAvgDistance:     mean(flat),
		DownhillAvgDistance: mean(downhill),
	}
}
