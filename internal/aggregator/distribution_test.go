package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/golfstats/internal/model"
)

func strikeOf(s *model.Shot) model.Strike { return s.Strike }

func withStrike(v model.Strike) model.Shot {
	return makeShot(func(s *model.Shot) { s.Strike = v })
}

func TestDistribution_CountsAndOrder(t *testing.T) {
	shots := []model.Shot{
		withStrike(model.StrikeFat),
		withStrike(model.StrikePure),
		withStrike(model.StrikePure),
		withStrike(model.StrikePure),
		withStrike(model.StrikeThin),
		withStrike(model.StrikeFat),
		withStrike(model.StrikeUnset),
	}
	d := Distribution(shots, strikeOf)
	require.NotNil(t, d)

	assert.Equal(t, 6, d.Total)
	require.Len(t, d.Entries, 3)
	assert.Equal(t, model.StrikePure, d.Entries[0].Value)
	assert.Equal(t, 3, d.Entries[0].Count)
	assert.InDelta(t, 0.5, d.Entries[0].Fraction, 1e-9)
	assert.Equal(t, model.StrikeFat, d.Entries[1].Value)
	assert.Equal(t, model.StrikeThin, d.Entries[2].Value)
}

func TestDistribution_SumsToTotal(t *testing.T) {
	lies := []model.Lie{model.LieTee, model.LieFairway, model.LieBunker, model.LieGreen, model.LieFairway}
	var shots []model.Shot
	for i := 0; i < 37; i++ {
		l := lies[i%len(lies)]
		shots = append(shots, makeShot(func(s *model.Shot) { s.Lie = l }))
	}
	d := Distribution(shots, func(s *model.Shot) model.Lie { return s.Lie })
	require.NotNil(t, d)

	sumCount, sumFrac := 0, 0.0
	for i, e := range d.Entries {
		sumCount += e.Count
		sumFrac += e.Fraction
		if i > 0 {
			assert.GreaterOrEqual(t, d.Entries[i-1].Count, e.Count)
		}
	}
	assert.Equal(t, d.Total, sumCount)
	assert.InDelta(t, 1.0, sumFrac, 1e-9)
}

func TestDistribution_TieBreakIsDeterministic(t *testing.T) {
	shots := []model.Shot{withStrike(model.StrikeToe), withStrike(model.StrikeFat), withStrike(model.StrikeShank)}
	for i := 0; i < 5; i++ {
		d := Distribution(shots, strikeOf)
		require.NotNil(t, d)
		assert.Equal(t, []model.Strike{model.StrikeFat, model.StrikeShank, model.StrikeToe},
			[]model.Strike{d.Entries[0].Value, d.Entries[1].Value, d.Entries[2].Value})
	}
}

func TestDistribution_NilWhenNothingRecorded(t *testing.T) {
	assert.Nil(t, Distribution(nil, strikeOf))
	assert.Nil(t, Distribution([]model.Shot{withStrike(model.StrikeUnset)}, strikeOf))
}

func TestGroupByClub(t *testing.T) {
	dtt := func(c string, v model.DirectionToTarget) model.Shot {
		return makeShot(club(c), func(s *model.Shot) { s.DirectionToTarget = v })
	}
	shots := []model.Shot{
		dtt("Driver", model.TargetFarLeft),
		dtt("Driver", model.TargetFarLeft),
		dtt("Driver", model.TargetStraight),
		dtt("7 Iron", model.TargetRight),
		dtt("", model.TargetRight),
		dtt("7 Iron", model.DirectionToTargetUnset),
	}
	got := GroupByClub(shots, func(s *model.Shot) model.DirectionToTarget { return s.DirectionToTarget })

	assert.Equal(t, map[string]map[model.DirectionToTarget]int{
		"Driver": {model.TargetFarLeft: 2, model.TargetStraight: 1},
		"7 Iron": {model.TargetRight: 1},
	}, got)
}
