package model

import (
	"fmt"
	"strings"
	"time"
)

// Round is one played session at a course.
type Round struct {
	ID            int64
	CourseName    string
	Weather       Weather
	Temperature   *int // Celsius
	WindCondition string
	StartingHole  int
	CreatedAt     time.Time
}

// Shot is one recorded stroke. Distances and elevations are in metres;
// nil means the value was not measured.
type Shot struct {
	ID         int64
	RoundID    int64
	HoleNumber int
	ShotNumber int    // sequence within the hole, starting at 1
	Club       string // "" if not recorded

	Distance             *float64
	CarryDistance        *float64
	ElevationChange      *float64
	CarryElevationChange *float64
	TargetDistance       *float64
	PowerPct             *int

	ClubDirection     ClubDirection
	BallDirection     BallDirection
	Lie               Lie
	LieDirection      LieDirection
	ShotType          ShotType
	Strike            Strike
	MentalState       MentalState
	BallFlight        BallFlight
	DirectionToTarget DirectionToTarget
	DistanceToTarget  DistanceToTarget
	WindDirection     WindDirection
	WindStrength      WindStrength
	FairwayHit        FairwayHit
	GreenInRegulation GreenInRegulation

	MentalStateNote    string
	Notes              string
	IgnoreForAnalytics bool
	CreatedAt          time.Time
}

// Attribute names one categorical shot attribute.
type Attribute int

const (
	AttrClubDirection Attribute = iota
	AttrBallDirection
	AttrLie
	AttrLieDirection
	AttrShotType
	AttrStrike
	AttrMentalState
	AttrBallFlight
	AttrDirectionToTarget
	AttrDistanceToTarget
	AttrWindDirection
	AttrWindStrength
	AttrFairwayHit
	AttrGreenInRegulation
)

// Attributes lists every categorical attribute in display order.
var Attributes = []Attribute{
	AttrClubDirection, AttrBallDirection, AttrLie, AttrLieDirection,
	AttrShotType, AttrStrike, AttrMentalState, AttrBallFlight,
	AttrDirectionToTarget, AttrDistanceToTarget, AttrWindDirection,
	AttrWindStrength, AttrFairwayHit, AttrGreenInRegulation,
}

var attributeNames = map[Attribute]string{
	AttrClubDirection:     "club_direction",
	AttrBallDirection:     "ball_direction",
	AttrLie:               "lie",
	AttrLieDirection:      "lie_direction",
	AttrShotType:          "shot_type",
	AttrStrike:            "strike",
	AttrMentalState:       "mental_state",
	AttrBallFlight:        "ball_flight",
	AttrDirectionToTarget: "direction_to_target",
	AttrDistanceToTarget:  "distance_to_target",
	AttrWindDirection:     "wind_direction",
	AttrWindStrength:      "wind_strength",
	AttrFairwayHit:        "fairway_hit",
	AttrGreenInRegulation: "green_in_regulation",
}

func (a Attribute) String() string { return attributeNames[a] }

// ShotCode returns the raw code of attribute a on shot s (0 = not recorded).
func (a Attribute) ShotCode(s *Shot) uint8 {
	switch a {
	case AttrClubDirection:
		return uint8(s.ClubDirection)
	case AttrBallDirection:
		return uint8(s.BallDirection)
	case AttrLie:
		return uint8(s.Lie)
	case AttrLieDirection:
		return uint8(s.LieDirection)
	case AttrShotType:
		return uint8(s.ShotType)
	case AttrStrike:
		return uint8(s.Strike)
	case AttrMentalState:
		return uint8(s.MentalState)
	case AttrBallFlight:
		return uint8(s.BallFlight)
	case AttrDirectionToTarget:
		return uint8(s.DirectionToTarget)
	case AttrDistanceToTarget:
		return uint8(s.DistanceToTarget)
	case AttrWindDirection:
		return uint8(s.WindDirection)
	case AttrWindStrength:
		return uint8(s.WindStrength)
	case AttrFairwayHit:
		return uint8(s.FairwayHit)
	case AttrGreenInRegulation:
		return uint8(s.GreenInRegulation)
	}
	return 0
}

var attributeValues = map[Attribute][]string{
	AttrClubDirection:     clubDirectionNames,
	AttrBallDirection:     ballDirectionNames,
	AttrLie:               lieNames,
	AttrLieDirection:      lieDirectionNames,
	AttrShotType:          shotTypeNames,
	AttrStrike:            strikeNames,
	AttrMentalState:       mentalStateNames,
	AttrBallFlight:        ballFlightNames,
	AttrDirectionToTarget: directionToTargetNames,
	AttrDistanceToTarget:  distanceToTargetNames,
	AttrWindDirection:     windDirectionNames,
	AttrWindStrength:      windStrengthNames,
	AttrFairwayHit:        yesNoNames,
	AttrGreenInRegulation: yesNoNames,
}

// ValueName returns the canonical name of code for attribute a.
func (a Attribute) ValueName(code uint8) string { return enumName(attributeValues[a], code) }

// Values lists the accepted names for attribute a, without the unset value.
func (a Attribute) Values() []string {
	names := attributeValues[a]
	if len(names) == 0 {
		return nil
	}
	return names[1:]
}

// FilterCriteria is the immutable set of optional predicates applied to shots.
// Zero values mean "no constraint".
type FilterCriteria struct {
	DateFrom time.Time
	DateTo   time.Time
	Club     string

	ClubDirection     ClubDirection
	BallDirection     BallDirection
	Lie               Lie
	LieDirection      LieDirection
	ShotType          ShotType
	Strike            Strike
	MentalState       MentalState
	BallFlight        BallFlight
	DirectionToTarget DirectionToTarget
	DistanceToTarget  DistanceToTarget
	WindDirection     WindDirection
	WindStrength      WindStrength
	FairwayHit        FairwayHit
	GreenInRegulation GreenInRegulation

	// Round-derived.
	Weather    Weather
	CourseName string
}

// Code returns the filtered code of attribute a (0 = not filtered).
func (f *FilterCriteria) Code(a Attribute) uint8 {
	switch a {
	case AttrClubDirection:
		return uint8(f.ClubDirection)
	case AttrBallDirection:
		return uint8(f.BallDirection)
	case AttrLie:
		return uint8(f.Lie)
	case AttrLieDirection:
		return uint8(f.LieDirection)
	case AttrShotType:
		return uint8(f.ShotType)
	case AttrStrike:
		return uint8(f.Strike)
	case AttrMentalState:
		return uint8(f.MentalState)
	case AttrBallFlight:
		return uint8(f.BallFlight)
	case AttrDirectionToTarget:
		return uint8(f.DirectionToTarget)
	case AttrDistanceToTarget:
		return uint8(f.DistanceToTarget)
	case AttrWindDirection:
		return uint8(f.WindDirection)
	case AttrWindStrength:
		return uint8(f.WindStrength)
	case AttrFairwayHit:
		return uint8(f.FairwayHit)
	case AttrGreenInRegulation:
		return uint8(f.GreenInRegulation)
	}
	return 0
}

// Set constrains attribute a to the named value. An empty value clears it.
func (f *FilterCriteria) Set(a Attribute, value string) error {
	code, err := parseEnum[uint8](strings.ReplaceAll(a.String(), "_", " "), attributeValues[a], value)
	if err != nil {
		return err
	}
	switch a {
	case AttrClubDirection:
		f.ClubDirection = ClubDirection(code)
	case AttrBallDirection:
		f.BallDirection = BallDirection(code)
	case AttrLie:
		f.Lie = Lie(code)
	case AttrLieDirection:
		f.LieDirection = LieDirection(code)
	case AttrShotType:
		f.ShotType = ShotType(code)
	case AttrStrike:
		f.Strike = Strike(code)
	case AttrMentalState:
		f.MentalState = MentalState(code)
	case AttrBallFlight:
		f.BallFlight = BallFlight(code)
	case AttrDirectionToTarget:
		f.DirectionToTarget = DirectionToTarget(code)
	case AttrDistanceToTarget:
		f.DistanceToTarget = DistanceToTarget(code)
	case AttrWindDirection:
		f.WindDirection = WindDirection(code)
	case AttrWindStrength:
		f.WindStrength = WindStrength(code)
	case AttrFairwayHit:
		f.FairwayHit = FairwayHit(code)
	case AttrGreenInRegulation:
		f.GreenInRegulation = GreenInRegulation(code)
	default:
		return fmt.Errorf("unknown attribute %d", int(a))
	}
	return nil
}

// IsActive reports whether attribute a is constrained.
func (f *FilterCriteria) IsActive(a Attribute) bool { return f.Code(a) != 0 }

// ActiveCount returns the number of set predicates.
func (f *FilterCriteria) ActiveCount() int {
	n := 0
	for _, set := range []bool{!f.DateFrom.IsZero(), !f.DateTo.IsZero(), f.Club != "", f.Weather != 0, f.CourseName != ""} {
		if set {
			n++
		}
	}
	for _, a := range Attributes {
		if f.IsActive(a) {
			n++
		}
	}
	return n
}

// HasActive reports whether any predicate is set.
func (f *FilterCriteria) HasActive() bool { return f.ActiveCount() > 0 }

// ParseAttribute resolves an attribute by its snake_case name.
func ParseAttribute(name string) (Attribute, error) {
	for a, n := range attributeNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", name)
}
