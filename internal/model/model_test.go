package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnum_CaseInsensitive(t *testing.T) {
	s, err := ParseStrike("pure")
	require.NoError(t, err)
	assert.Equal(t, StrikePure, s)

	s, err = ParseStrike("  FAT ")
	require.NoError(t, err)
	assert.Equal(t, StrikeFat, s)

	s, err = ParseStrike("")
	require.NoError(t, err)
	assert.Equal(t, StrikeUnset, s)
}

func TestParseEnum_ErrorNamesField(t *testing.T) {
	_, err := ParseLieDirection("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lie direction")
	assert.Contains(t, err.Error(), "AboveFeet")
}

func TestEnumText(t *testing.T) {
	type row struct {
		Strike Strike `json:"strike"`
		Lie    Lie    `json:"lie"`
	}
	b, err := json.Marshal(row{Strike: StrikeThin})
	require.NoError(t, err)
	assert.JSONEq(t, `{"strike":"Thin","lie":""}`, string(b))

	var got row
	require.NoError(t, json.Unmarshal([]byte(`{"strike":"toe","lie":"Bunker"}`), &got))
	assert.Equal(t, Strike(5), got.Strike)
	assert.Equal(t, "Bunker", got.Lie.String())

	assert.Error(t, json.Unmarshal([]byte(`{"strike":"Skulled"}`), &got))
}

func TestEnumString_OutOfRange(t *testing.T) {
	assert.Equal(t, "", Strike(200).String())
	assert.Equal(t, "", WeatherUnset.String())
}

func TestAttribute_NamesAndValues(t *testing.T) {
	require.Len(t, Attributes, 14)
	for _, a := range Attributes {
		got, err := ParseAttribute(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
		assert.NotEmpty(t, a.Values(), a.String())
	}
	_, err := ParseAttribute("club")
	assert.Error(t, err)

	assert.Equal(t, []string{"Straight", "Pull", "Push"}, AttrClubDirection.Values())
	assert.Equal(t, "Slice", AttrBallDirection.ValueName(uint8(BallSlice)))
	assert.Equal(t, "", AttrBallDirection.ValueName(0))
}

func TestAttribute_ShotCode(t *testing.T) {
	s := &Shot{Strike: StrikeFat, GreenInRegulation: GIRNo}
	assert.Equal(t, uint8(StrikeFat), AttrStrike.ShotCode(s))
	assert.Equal(t, uint8(GIRNo), AttrGreenInRegulation.ShotCode(s))
	assert.Zero(t, AttrLie.ShotCode(s))
}

func TestFilterCriteria_Set(t *testing.T) {
	var c FilterCriteria
	assert.False(t, c.HasActive())

	require.NoError(t, c.Set(AttrStrike, "fat"))
	require.NoError(t, c.Set(AttrFairwayHit, "Yes"))
	assert.Equal(t, StrikeFat, c.Strike)
	assert.Equal(t, FairwayYes, c.FairwayHit)
	assert.True(t, c.IsActive(AttrStrike))
	assert.False(t, c.IsActive(AttrLie))
	assert.Equal(t, 2, c.ActiveCount())

	err := c.Set(AttrWindStrength, "breezy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wind strength")
	assert.Equal(t, 2, c.ActiveCount(), "failed set leaves criteria unchanged")

	require.NoError(t, c.Set(AttrStrike, ""))
	assert.Equal(t, StrikeUnset, c.Strike)
	assert.Equal(t, 1, c.ActiveCount())
}

func TestFilterCriteria_ActiveCountIncludesRoundAndDate(t *testing.T) {
	c := FilterCriteria{
		DateFrom:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Club:       "7 Iron",
		Weather:    WeatherSunny,
		CourseName: "Links",
	}
	assert.Equal(t, 4, c.ActiveCount())
	assert.True(t, c.HasActive())
}
