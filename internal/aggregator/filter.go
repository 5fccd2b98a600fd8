package aggregator

import (
	"github.com/pable/golfstats/internal/model"
)

// predicate reports whether a shot passes one filter criterion.
type predicate func(s *model.Shot) bool

// Filter returns the shots that satisfy every set criterion in c.
// Criteria combine by conjunction, so adding one never grows the result.
// Weather and course criteria resolve through the shot's round; a shot whose
// round is missing from rounds fails them. The input slice is not modified.
func Filter(shots []model.Shot, rounds []model.Round, c model.FilterCriteria) []model.Shot {
	preds := predicates(rounds, c)
	out := make([]model.Shot, 0, len(shots))
	for i := range shots {
		if passes(&shots[i], preds) {
			out = append(out, shots[i])
		}
	}
	return out
}

func passes(s *model.Shot, preds []predicate) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

// predicates builds one closure per set criterion.
func predicates(rounds []model.Round, c model.FilterCriteria) []predicate {
	var preds []predicate

	if from := c.DateFrom; !from.IsZero() {
		preds = append(preds, func(s *model.Shot) bool { return !s.CreatedAt.Before(from) })
	}
	if to := c.DateTo; !to.IsZero() {
		preds = append(preds, func(s *model.Shot) bool { return !s.CreatedAt.After(to) })
	}
	if club := c.Club; club != "" {
		preds = append(preds, func(s *model.Shot) bool { return s.Club == club })
	}

	for _, attr := range model.Attributes {
		want := c.Code(attr)
		if want == 0 {
			continue
		}
		preds = append(preds, func(s *model.Shot) bool { return attr.ShotCode(s) == want })
	}

	// Round-derived: resolve the matching round ids once, then test membership.
	if w := c.Weather; w != model.WeatherUnset {
		ids := roundIDs(rounds, func(r *model.Round) bool { return r.Weather == w })
		preds = append(preds, inRounds(ids))
	}
	if course := c.CourseName; course != "" {
		ids := roundIDs(rounds, func(r *model.Round) bool { return r.CourseName == course })
		preds = append(preds, inRounds(ids))
	}
	return preds
}

func roundIDs(rounds []model.Round, match func(r *model.Round) bool) map[int64]struct{} {
	ids := make(map[int64]struct{})
	for i := range rounds {
		if match(&rounds[i]) {
			ids[rounds[i].ID] = struct{}{}
		}
	}
	return ids
}

func inRounds(ids map[int64]struct{}) predicate {
	return func(s *model.Shot) bool {
		_, ok := ids[s.RoundID]
		return ok
	}
}
