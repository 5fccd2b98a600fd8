package model

import (
	"fmt"
	"strings"
)

// Category is the constraint satisfied by every categorical shot attribute.
// The zero value of each category means "not recorded".
type Category interface {
	~uint8
	comparable
	fmt.Stringer
}

// enumName returns names[v], or "" when v is unset or out of range.
func enumName[T ~uint8](names []string, v T) string {
	if int(v) >= len(names) {
		return ""
	}
	return names[v]
}

// parseEnum matches s case-insensitively against names (index 0 is the unset
// value and only matches the empty string).
func parseEnum[T ~uint8](field string, names []string, s string) (T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	for i := 1; i < len(names); i++ {
		if strings.EqualFold(names[i], s) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q (want one of %s)", field, s, strings.Join(names[1:], ", "))
}

// ---- Round-level ----

type Weather uint8

const (
	WeatherUnset Weather = iota
	WeatherSunny
	WeatherCloudy
	WeatherOvercast
	WeatherLightRain
	WeatherHeavyRain
)

var weatherNames = []string{"", "Sunny", "Cloudy", "Overcast", "LightRain", "HeavyRain"}

func (v Weather) String() string { return enumName(weatherNames, v) }

func ParseWeather(s string) (Weather, error) { return parseEnum[Weather]("weather", weatherNames, s) }

func (v Weather) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Weather) UnmarshalText(b []byte) (err error) {
	*v, err = ParseWeather(string(b))
	return err
}

// ---- Conditions ----

type WindDirection uint8

const (
	WindDirectionUnset WindDirection = iota
	WindN
	WindNE
	WindE
	WindSE
	WindS
	WindSW
	WindW
	WindNW
)

var windDirectionNames = []string{"", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (v WindDirection) String() string { return enumName(windDirectionNames, v) }

func ParseWindDirection(s string) (WindDirection, error) {
	return parseEnum[WindDirection]("wind direction", windDirectionNames, s)
}

func (v WindDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *WindDirection) UnmarshalText(b []byte) (err error) {
	*v, err = ParseWindDirection(string(b))
	return err
}

type WindStrength uint8

const (
	WindStrengthUnset WindStrength = iota
	WindVeryStrong
	WindStrong
	WindModerate
	WindCalm
	WindNone
)

var windStrengthNames = []string{"", "VeryStrong", "Strong", "Moderate", "Calm", "None"}

func (v WindStrength) String() string { return enumName(windStrengthNames, v) }

func ParseWindStrength(s string) (WindStrength, error) {
	return parseEnum[WindStrength]("wind strength", windStrengthNames, s)
}

func (v WindStrength) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *WindStrength) UnmarshalText(b []byte) (err error) {
	*v, err = ParseWindStrength(string(b))
	return err
}

type Lie uint8

const (
	LieUnset Lie = iota
	LieTee
	LieFairway
	LieFringe
	LieGreen
	LieLightRough
	LieHeavyRough
	LieBunker
)

var lieNames = []string{"", "Tee", "Fairway", "Fringe", "Green", "LightRough", "HeavyRough", "Bunker"}

func (v Lie) String() string { return enumName(lieNames, v) }

func ParseLie(s string) (Lie, error) { return parseEnum[Lie]("lie", lieNames, s) }

func (v Lie) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Lie) UnmarshalText(b []byte) (err error) {
	*v, err = ParseLie(string(b))
	return err
}

type LieDirection uint8

const (
	LieDirectionUnset LieDirection = iota
	LieFlat
	LieUphill
	LieDownhill
	LieAboveFeet
	LieBelowFeet
)

var lieDirectionNames = []string{"", "Flat", "Uphill", "Downhill", "AboveFeet", "BelowFeet"}

func (v LieDirection) String() string { return enumName(lieDirectionNames, v) }

func ParseLieDirection(s string) (LieDirection, error) {
	return parseEnum[LieDirection]("lie direction", lieDirectionNames, s)
}

func (v LieDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *LieDirection) UnmarshalText(b []byte) (err error) {
	*v, err = ParseLieDirection(string(b))
	return err
}

// ---- Shot description ----

type ShotType uint8

const (
	ShotTypeUnset ShotType = iota
	ShotFull
	ShotPitch
	ShotPunch
	ShotFlop
	ShotBumpAndRun
	ShotChip
	ShotBunkerChip
	ShotPutt
)

var shotTypeNames = []string{"", "Full", "Pitch", "Punch", "Flop", "BumpAndRun", "Chip", "BunkerChip", "Putt"}

func (v ShotType) String() string { return enumName(shotTypeNames, v) }

func ParseShotType(s string) (ShotType, error) { return parseEnum[ShotType]("shot type", shotTypeNames, s) }

func (v ShotType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *ShotType) UnmarshalText(b []byte) (err error) {
	*v, err = ParseShotType(string(b))
	return err
}

type Strike uint8

const (
	StrikeUnset Strike = iota
	StrikePure
	StrikeFat
	StrikeThin
	StrikeShank
	StrikeToe
)

var strikeNames = []string{"", "Pure", "Fat", "Thin", "Shank", "Toe"}

func (v Strike) String() string { return enumName(strikeNames, v) }

func ParseStrike(s string) (Strike, error) { return parseEnum[Strike]("strike", strikeNames, s) }

func (v Strike) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Strike) UnmarshalText(b []byte) (err error) {
	*v, err = ParseStrike(string(b))
	return err
}

type ClubDirection uint8

const (
	ClubDirectionUnset ClubDirection = iota
	ClubStraight
	ClubPull
	ClubPush
)

var clubDirectionNames = []string{"", "Straight", "Pull", "Push"}

func (v ClubDirection) String() string { return enumName(clubDirectionNames, v) }

func ParseClubDirection(s string) (ClubDirection, error) {
	return parseEnum[ClubDirection]("club direction", clubDirectionNames, s)
}

func (v ClubDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *ClubDirection) UnmarshalText(b []byte) (err error) {
	*v, err = ParseClubDirection(string(b))
	return err
}

type BallDirection uint8

const (
	BallDirectionUnset BallDirection = iota
	BallStraight
	BallFade
	BallSlice
	BallDraw
	BallHook
)

var ballDirectionNames = []string{"", "Straight", "Fade", "Slice", "Draw", "Hook"}

func (v BallDirection) String() string { return enumName(ballDirectionNames, v) }

func ParseBallDirection(s string) (BallDirection, error) {
	return parseEnum[BallDirection]("ball direction", ballDirectionNames, s)
}

func (v BallDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *BallDirection) UnmarshalText(b []byte) (err error) {
	*v, err = ParseBallDirection(string(b))
	return err
}

type MentalState uint8

const (
	MentalStateUnset MentalState = iota
	MentalCalm
	MentalRushed
	MentalFrustrating
	MentalOverthinking
)

var mentalStateNames = []string{"", "Calm", "Rushed", "Frustrating", "Overthinking"}

func (v MentalState) String() string { return enumName(mentalStateNames, v) }

func ParseMentalState(s string) (MentalState, error) {
	return parseEnum[MentalState]("mental state", mentalStateNames, s)
}

func (v MentalState) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *MentalState) UnmarshalText(b []byte) (err error) {
	*v, err = ParseMentalState(string(b))
	return err
}

type BallFlight uint8

const (
	BallFlightUnset BallFlight = iota
	FlightSky
	FlightHigh
	FlightMedium
	FlightLow
	FlightWormBurner
)

var ballFlightNames = []string{"", "Sky", "High", "Medium", "Low", "WormBurner"}

func (v BallFlight) String() string { return enumName(ballFlightNames, v) }

func ParseBallFlight(s string) (BallFlight, error) {
	return parseEnum[BallFlight]("ball flight", ballFlightNames, s)
}

func (v BallFlight) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *BallFlight) UnmarshalText(b []byte) (err error) {
	*v, err = ParseBallFlight(string(b))
	return err
}

// ---- Outcome ----

type DirectionToTarget uint8

const (
	DirectionToTargetUnset DirectionToTarget = iota
	TargetFarLeft
	TargetLeft
	TargetStraight
	TargetRight
	TargetFarRight
)

var directionToTargetNames = []string{"", "FarLeft", "Left", "Straight", "Right", "FarRight"}

func (v DirectionToTarget) String() string { return enumName(directionToTargetNames, v) }

func ParseDirectionToTarget(s string) (DirectionToTarget, error) {
	return parseEnum[DirectionToTarget]("direction to target", directionToTargetNames, s)
}

func (v DirectionToTarget) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *DirectionToTarget) UnmarshalText(b []byte) (err error) {
	*v, err = ParseDirectionToTarget(string(b))
	return err
}

type DistanceToTarget uint8

const (
	DistanceToTargetUnset DistanceToTarget = iota
	TargetWayLong
	TargetLong
	TargetOnPin
	TargetShort
	TargetWayShort
)

var distanceToTargetNames = []string{"", "WayLong", "Long", "OnPin", "Short", "WayShort"}

func (v DistanceToTarget) String() string { return enumName(distanceToTargetNames, v) }

func ParseDistanceToTarget(s string) (DistanceToTarget, error) {
	return parseEnum[DistanceToTarget]("distance to target", distanceToTargetNames, s)
}

func (v DistanceToTarget) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *DistanceToTarget) UnmarshalText(b []byte) (err error) {
	*v, err = ParseDistanceToTarget(string(b))
	return err
}

type FairwayHit uint8

const (
	FairwayHitUnset FairwayHit = iota
	FairwayYes
	FairwayNo
)

var yesNoNames = []string{"", "Yes", "No"}

func (v FairwayHit) String() string { return enumName(yesNoNames, v) }

func ParseFairwayHit(s string) (FairwayHit, error) { return parseEnum[FairwayHit]("fairway hit", yesNoNames, s) }

func (v FairwayHit) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *FairwayHit) UnmarshalText(b []byte) (err error) {
	*v, err = ParseFairwayHit(string(b))
	return err
}

type GreenInRegulation uint8

const (
	GIRUnset GreenInRegulation = iota
	GIRYes
	GIRNo
)

func (v GreenInRegulation) String() string { return enumName(yesNoNames, v) }

func ParseGreenInRegulation(s string) (GreenInRegulation, error) {
	return parseEnum[GreenInRegulation]("green in regulation", yesNoNames, s)
}

func (v GreenInRegulation) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *GreenInRegulation) UnmarshalText(b []byte) (err error) {
	*v, err = ParseGreenInRegulation(string(b))
	return err
}
