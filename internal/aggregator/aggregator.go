// Package aggregator turns recorded shots and rounds into statistics.
// Every function is pure: inputs are read, never modified, and results are
// rebuilt from scratch on each call.
package aggregator

import (
	"sort"

	"github.com/pable/golfstats/internal/model"
)

// Dashboard computes the unfiltered overview. shots should already exclude
// shots flagged as ignored for analytics.
func Dashboard(shots []model.Shot, rounds []model.Round) model.Dashboard {
	d := model.Dashboard{
		TotalShots:    len(shots),
		TotalRounds:   len(rounds),
		UniqueCourses: len(CourseNames(rounds)),
	}
	if len(shots) == 0 {
		return d
	}

	d.ClubUsage = ClubUsage(shots)
	if len(d.ClubUsage) > 0 {
		d.MostUsedClub = d.ClubUsage[0].Club
	}

	d.PureStrikeRate = pureStrikeRate(shots)
	d.StraightRate = straightRate(shots)
	d.OnPinRate = onPinRate(shots)
	d.FairwayHitRate = fairwayHitRate(shots)
	d.GreenInRegulationRate = girRate(shots)

	trend := Trend(shots, rounds)
	d.Trend = &trend
	d.Weaknesses = Weaknesses(shots)
	d.ClubDistanceOverview = ClubSummaries(shots)
	return d
}

// ShotAnalysis computes the detail view over filtered, a subset of all
// selected by c. An empty subset yields only the counts.
func ShotAnalysis(all, filtered []model.Shot, c model.FilterCriteria) model.ShotAnalysis {
	return ShotAnalysisWithBuckets(all, filtered, c, DefaultHistogramBuckets)
}

// ShotAnalysisWithBuckets is ShotAnalysis with an explicit histogram bucket count.
func ShotAnalysisWithBuckets(all, filtered []model.Shot, c model.FilterCriteria, buckets int) model.ShotAnalysis {
	a := model.ShotAnalysis{
		FilteredCount: len(filtered),
		TotalCount:    len(all),
	}
	if len(filtered) == 0 {
		return a
	}

	a.DistanceStats = DistanceStatsWithBuckets(filtered, buckets)
	a.ElevationStats = ElevationStats(filtered)

	a.ClubDirection = distributionUnless(c.IsActive(model.AttrClubDirection), filtered,
		func(s *model.Shot) model.ClubDirection { return s.ClubDirection })
	a.BallDirection = distributionUnless(c.IsActive(model.AttrBallDirection), filtered,
		func(s *model.Shot) model.BallDirection { return s.BallDirection })
	a.Lie = distributionUnless(c.IsActive(model.AttrLie), filtered,
		func(s *model.Shot) model.Lie { return s.Lie })
	a.LieDirection = distributionUnless(c.IsActive(model.AttrLieDirection), filtered,
		func(s *model.Shot) model.LieDirection { return s.LieDirection })
	a.ShotType = distributionUnless(c.IsActive(model.AttrShotType), filtered,
		func(s *model.Shot) model.ShotType { return s.ShotType })
	a.Strike = distributionUnless(c.IsActive(model.AttrStrike), filtered,
		func(s *model.Shot) model.Strike { return s.Strike })
	a.MentalState = distributionUnless(c.IsActive(model.AttrMentalState), filtered,
		func(s *model.Shot) model.MentalState { return s.MentalState })
	a.BallFlight = distributionUnless(c.IsActive(model.AttrBallFlight), filtered,
		func(s *model.Shot) model.BallFlight { return s.BallFlight })
	a.DirectionToTarget = distributionUnless(c.IsActive(model.AttrDirectionToTarget), filtered,
		func(s *model.Shot) model.DirectionToTarget { return s.DirectionToTarget })
	a.DistanceToTarget = distributionUnless(c.IsActive(model.AttrDistanceToTarget), filtered,
		func(s *model.Shot) model.DistanceToTarget { return s.DistanceToTarget })
	a.WindDirection = distributionUnless(c.IsActive(model.AttrWindDirection), filtered,
		func(s *model.Shot) model.WindDirection { return s.WindDirection })
	a.WindStrength = distributionUnless(c.IsActive(model.AttrWindStrength), filtered,
		func(s *model.Shot) model.WindStrength { return s.WindStrength })
	a.FairwayHit = distributionUnless(c.IsActive(model.AttrFairwayHit), filtered,
		func(s *model.Shot) model.FairwayHit { return s.FairwayHit })
	a.GreenInRegulation = distributionUnless(c.IsActive(model.AttrGreenInRegulation), filtered,
		func(s *model.Shot) model.GreenInRegulation { return s.GreenInRegulation })

	// Per-club spread is meaningless when only one club is selected.
	if c.Club == "" {
		a.ClubStats = ClubSummaries(filtered)
	} else {
		a.ClubStats = []model.ClubSummary{}
	}
	return a
}

// CourseNames returns the distinct course names of rounds in ascending order.
func CourseNames(rounds []model.Round) []string {
	seen := make(map[string]struct{}, len(rounds))
	var out []string
	for _, r := range rounds {
		if _, ok := seen[r.CourseName]; ok {
			continue
		}
		seen[r.CourseName] = struct{}{}
		out = append(out, r.CourseName)
	}
	sort.Strings(out)
	return out
}
