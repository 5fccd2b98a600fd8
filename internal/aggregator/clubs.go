package aggregator

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/pable/golfstats/internal/model"
)

// minClubSamples is the fewest distances a club needs before its spread is reported.
const minClubSamples = 2

// ClubSummaries returns the distance spread of every club with at least two
// recorded distances, longest average first.
func ClubSummaries(shots []model.Shot) []model.ClubSummary {
	byClub := make(map[string][]float64)
	for i := range shots {
		s := &shots[i]
		if s.Club == "" || s.Distance == nil {
			continue
		}
		byClub[s.Club] = append(byClub[s.Club], *s.Distance)
	}

	out := make([]model.ClubSummary, 0, len(byClub))
	for club, dists := range byClub {
		if len(dists) < minClubSamples {
			continue
		}
		// stats only errors on empty input.
		avg, _ := stats.Mean(dists)
		lo, _ := stats.Min(dists)
		hi, _ := stats.Max(dists)
		out = append(out, model.ClubSummary{
			Club:        club,
			AvgDistance: avg,
			Min:         lo,
			Max:         hi,
			Count:       len(dists),
			StdDev:      popStdDev(dists),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgDistance != out[j].AvgDistance {
			return out[i].AvgDistance > out[j].AvgDistance
		}
		return out[i].Club < out[j].Club
	})
	return out
}

// ClubUsage ranks clubs by how many shots used them. Shots without a club
// are counted under "Unknown".
func ClubUsage(shots []model.Shot) []model.ClubUsage {
	if len(shots) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for i := range shots {
		club := shots[i].Club
		if club == "" {
			club = UnknownClub
		}
		counts[club]++
	}
	out := make([]model.ClubUsage, 0, len(counts))
	for club, n := range counts {
		out = append(out, model.ClubUsage{
			Club:     club,
			Count:    n,
			Fraction: float64(n) / float64(len(shots)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Club < out[j].Club
	})
	return out
}

// UnknownClub labels shots recorded without a club in usage rankings.
const UnknownClub = "Unknown"

// mostUsedClub returns the club with the most shots that have both a club
// and a distance; ties go to the alphabetically first club.
func mostUsedClub(shots []model.Shot) string {
	counts := make(map[string]int)
	for i := range shots {
		if shots[i].Club != "" && shots[i].Distance != nil {
			counts[shots[i].Club]++
		}
	}
	best, bestN := "", 0
	for club, n := range counts {
		if n > bestN || (n == bestN && club < best) {
			best, bestN = club, n
		}
	}
	return best
}
