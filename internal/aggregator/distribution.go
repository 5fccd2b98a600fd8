package aggregator

import (
	"sort"

	"github.com/pable/golfstats/internal/model"
)

// Distribution tallies the values selector returns over shots, ignoring
// unrecorded (zero) values. It returns nil when nothing was recorded.
// Entries are sorted by count descending, ties by declaration order.
func Distribution[T model.Category](shots []model.Shot, selector func(s *model.Shot) T) *model.Distribution[T] {
	counts := make(map[T]int)
	total := 0
	for i := range shots {
		v := selector(&shots[i])
		if v == 0 {
			continue
		}
		counts[v]++
		total++
	}
	if total == 0 {
		return nil
	}

	entries := make([]model.DistributionEntry[T], 0, len(counts))
	for v, n := range counts {
		entries = append(entries, model.DistributionEntry[T]{
			Value:    v,
			Count:    n,
			Fraction: float64(n) / float64(total),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})
	return &model.Distribution[T]{Entries: entries, Total: total}
}

// GroupByClub tallies selector values per club, skipping shots without a
// club or without a recorded value. Used for club dispersion views.
func GroupByClub[T model.Category](shots []model.Shot, selector func(s *model.Shot) T) map[string]map[T]int {
	out := make(map[string]map[T]int)
	for i := range shots {
		s := &shots[i]
		v := selector(s)
		if s.Club == "" || v == 0 {
			continue
		}
		if out[s.Club] == nil {
			out[s.Club] = make(map[T]int)
		}
		out[s.Club][v]++
	}
	return out
}

// distributionUnless computes a distribution unless its attribute is being
// filtered on, where it would trivially show a single value.
func distributionUnless[T model.Category](active bool, shots []model.Shot, selector func(s *model.Shot) T) *model.Distribution[T] {
	if active {
		return nil
	}
	return Distribution(shots, selector)
}
