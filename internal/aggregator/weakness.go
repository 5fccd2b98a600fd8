package aggregator

import (
	"fmt"
	"sort"

	"github.com/pable/golfstats/internal/model"
)

const (
	// minWeaknessSamples is the fewest tagged shots a rule needs to fire.
	minWeaknessSamples = 10
	// maxWeaknesses caps the returned list.
	maxWeaknesses = 5
)

// weaknessRule flags one pattern in a single categorical attribute.
type weaknessRule struct {
	label  string
	tagged func(s *model.Shot) bool
	match  func(s *model.Shot) bool
	// above: fire when rate > threshold; otherwise when rate < threshold.
	above     bool
	threshold float64
	scale     float64
	detail    string // fmt verb receives the rate as a percentage
}

func hasBallDirection(s *model.Shot) bool { return s.BallDirection != model.BallDirectionUnset }
func hasStrike(s *model.Shot) bool        { return s.Strike != model.StrikeUnset }

// weaknessRules are evaluated in order; ties in severity keep this order.
var weaknessRules = []weaknessRule{
	{
		label:  "Slice Tendency",
		tagged: hasBallDirection,
		match:  func(s *model.Shot) bool { return s.BallDirection == model.BallSlice },
		above:  true, threshold: 0.30, scale: 0.50,
		detail: "%.0f%% of shots slice",
	},
	{
		label:  "Hook Tendency",
		tagged: hasBallDirection,
		match:  func(s *model.Shot) bool { return s.BallDirection == model.BallHook },
		above:  true, threshold: 0.30, scale: 0.50,
		detail: "%.0f%% of shots hook",
	},
	{
		label:  "Strike Quality",
		tagged: hasStrike,
		match:  func(s *model.Shot) bool { return s.Strike == model.StrikePure },
		above:  false, threshold: 0.50, scale: 0.50,
		detail: "Only %.0f%% pure strikes",
	},
	{
		label:  "Fat Shots",
		tagged: hasStrike,
		match:  func(s *model.Shot) bool { return s.Strike == model.StrikeFat },
		above:  true, threshold: 0.20, scale: 0.40,
		detail: "%.0f%% fat strikes",
	},
	{
		label:  "Accuracy",
		tagged: func(s *model.Shot) bool { return s.DirectionToTarget != model.DirectionToTargetUnset },
		match: func(s *model.Shot) bool {
			return s.DirectionToTarget == model.TargetFarLeft || s.DirectionToTarget == model.TargetFarRight
		},
		above: true, threshold: 0.20, scale: 0.40,
		detail: "%.0f%% far off target",
	},
	{
		label:  "Distance Control",
		tagged: func(s *model.Shot) bool { return s.DistanceToTarget != model.DistanceToTargetUnset },
		match: func(s *model.Shot) bool {
			return s.DistanceToTarget == model.TargetWayLong || s.DistanceToTarget == model.TargetWayShort
		},
		above: true, threshold: 0.20, scale: 0.40,
		detail: "%.0f%% way off distance",
	},
	{
		label:  "Mental Game",
		tagged: func(s *model.Shot) bool { return s.MentalState != model.MentalStateUnset },
		match:  func(s *model.Shot) bool { return s.MentalState != model.MentalCalm },
		above:  true, threshold: 0.40, scale: 0.40,
		detail: "%.0f%% of shots not calm",
	},
}

// Weaknesses scans shots for known faults and returns at most five,
// most severe first. A rule is skipped when fewer than ten shots carry
// the attribute it inspects. Ranking uses the uncapped severity, so a
// fault far past its threshold outranks one just reaching the cap of 1.
func Weaknesses(shots []model.Shot) []model.WeaknessItem {
	type scored struct {
		item model.WeaknessItem
		raw  float64
	}
	var found []scored
	for _, rule := range weaknessRules {
		if item, raw, ok := rule.evaluate(shots); ok {
			found = append(found, scored{item, raw})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].raw > found[j].raw })
	if len(found) > maxWeaknesses {
		found = found[:maxWeaknesses]
	}
	var out []model.WeaknessItem
	for _, f := range found {
		out = append(out, f.item)
	}
	return out
}

// evaluate returns the item with its severity capped at 1, plus the
// uncapped severity used for ranking.
func (r weaknessRule) evaluate(shots []model.Shot) (model.WeaknessItem, float64, bool) {
	n, hits := 0, 0
	for i := range shots {
		s := &shots[i]
		if !r.tagged(s) {
			continue
		}
		n++
		if r.match(s) {
			hits++
		}
	}
	if n < minWeaknessSamples {
		return model.WeaknessItem{}, 0, false
	}
	rt := float64(hits) / float64(n)

	var excess float64
	if r.above {
		if rt <= r.threshold {
			return model.WeaknessItem{}, 0, false
		}
		excess = rt - r.threshold
	} else {
		if rt >= r.threshold {
			return model.WeaknessItem{}, 0, false
		}
		excess = r.threshold - rt
	}
	raw := clamp01(excess) / r.scale
	return model.WeaknessItem{
		Label:    r.label,
		Detail:   fmt.Sprintf(r.detail, rt*100),
		Severity: clamp01(raw),
	}, raw, true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
