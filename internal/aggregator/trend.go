package aggregator

import (
	"sort"

	"github.com/pable/golfstats/internal/model"
)

const (
	// trendWindow is the number of rounds in each of the recent and prior windows.
	trendWindow = 5
	// minTrendRounds is the fewest rounds a trend comparison needs.
	minTrendRounds = 2 * trendWindow
)

// Trend compares the five most recently created rounds against the five
// before them. Older rounds are ignored. With fewer than ten rounds it
// returns HasEnoughData=false and no metrics.
func Trend(shots []model.Shot, rounds []model.Round) model.TrendResult {
	if len(rounds) < minTrendRounds {
		return model.TrendResult{}
	}

	sorted := append([]model.Round(nil), rounds...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	recentIDs := make(map[int64]struct{}, trendWindow)
	priorIDs := make(map[int64]struct{}, trendWindow)
	for i, r := range sorted[:minTrendRounds] {
		if i < trendWindow {
			recentIDs[r.ID] = struct{}{}
		} else {
			priorIDs[r.ID] = struct{}{}
		}
	}

	recent := inRoundSet(shots, recentIDs)
	prior := inRoundSet(shots, priorIDs)

	// Picked once over every shot so both windows compare the same club.
	club := mostUsedClub(shots)

	return model.TrendResult{
		RecentPureStrikeRate: pureStrikeRate(recent),
		PriorPureStrikeRate:  pureStrikeRate(prior),
		RecentStraightRate:   straightRate(recent),
		PriorStraightRate:    straightRate(prior),
		RecentAvgDistance:    clubAvgDistance(recent, club),
		PriorAvgDistance:     clubAvgDistance(prior, club),
		ComparisonClub:       club,
		HasEnoughData:        true,
	}
}

func inRoundSet(shots []model.Shot, ids map[int64]struct{}) []model.Shot {
	var out []model.Shot
	for i := range shots {
		if _, ok := ids[shots[i].RoundID]; ok {
			out = append(out, shots[i])
		}
	}
	return out
}

func clubAvgDistance(shots []model.Shot, club string) *float64 {
	if club == "" {
		return nil
	}
	return mean(collect(shots, func(s *model.Shot) *float64 {
		if s.Club != club {
			return nil
		}
		return s.Distance
	}))
}

// rate returns the fraction of tagged shots that match, or nil when no shot
// is tagged.
func rate(shots []model.Shot, tagged, match func(s *model.Shot) bool) *float64 {
	n, hits := 0, 0
	for i := range shots {
		s := &shots[i]
		if !tagged(s) {
			continue
		}
		n++
		if match(s) {
			hits++
		}
	}
	if n == 0 {
		return nil
	}
	r := float64(hits) / float64(n)
	return &r
}

func pureStrikeRate(shots []model.Shot) *float64 {
	return rate(shots,
		func(s *model.Shot) bool { return s.Strike != model.StrikeUnset },
		func(s *model.Shot) bool { return s.Strike == model.StrikePure })
}

func straightRate(shots []model.Shot) *float64 {
	return rate(shots,
		func(s *model.Shot) bool { return s.DirectionToTarget != model.DirectionToTargetUnset },
		func(s *model.Shot) bool { return s.DirectionToTarget == model.TargetStraight })
}

func onPinRate(shots []model.Shot) *float64 {
	return rate(shots,
		func(s *model.Shot) bool { return s.DistanceToTarget != model.DistanceToTargetUnset },
		func(s *model.Shot) bool { return s.DistanceToTarget == model.TargetOnPin })
}

func fairwayHitRate(shots []model.Shot) *float64 {
	return rate(shots,
		func(s *model.Shot) bool { return s.FairwayHit != model.FairwayHitUnset },
		func(s *model.Shot) bool { return s.FairwayHit == model.FairwayYes })
}

func girRate(shots []model.Shot) *float64 {
	return rate(shots,
		func(s *model.Shot) bool { return s.GreenInRegulation != model.GIRUnset },
		func(s *model.Shot) bool { return s.GreenInRegulation == model.GIRYes })
}
