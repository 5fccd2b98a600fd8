package parser

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pable/golfstats/internal/model"
)

// Export is one decoded export file. Round ids are file-local and every
// shot's RoundID names one of them.
type Export struct {
	Hash   string
	Rounds []model.Round
	Shots  []model.Shot
}

type fileExport struct {
	Rounds []fileRound `json:"rounds"`
}

type fileRound struct {
	ID            int64         `json:"id"`
	CourseName    string        `json:"course_name"`
	Weather       model.Weather `json:"weather"`
	Temperature   *int          `json:"temperature"`
	WindCondition string        `json:"wind_condition"`
	StartingHole  int           `json:"starting_hole"`
	CreatedAt     time.Time     `json:"created_at"`
	Shots         []fileShot    `json:"shots"`
}

type fileShot struct {
	HoleNumber int    `json:"hole_number"`
	ShotNumber int    `json:"shot_number"`
	Club       string `json:"club"`

	Distance             *float64 `json:"distance"`
	CarryDistance        *float64 `json:"carry_distance"`
	ElevationChange      *float64 `json:"elevation_change"`
	CarryElevationChange *float64 `json:"carry_elevation_change"`
	TargetDistance       *float64 `json:"target_distance"`
	PowerPct             *int     `json:"power_pct"`

	ClubDirection     model.ClubDirection     `json:"club_direction"`
	BallDirection     model.BallDirection     `json:"ball_direction"`
	Lie               model.Lie               `json:"lie"`
	LieDirection      model.LieDirection      `json:"lie_direction"`
	ShotType          model.ShotType          `json:"shot_type"`
	Strike            model.Strike            `json:"strike"`
	MentalState       model.MentalState       `json:"mental_state"`
	BallFlight        model.BallFlight        `json:"ball_flight"`
	DirectionToTarget model.DirectionToTarget `json:"direction_to_target"`
	DistanceToTarget  model.DistanceToTarget  `json:"distance_to_target"`
	WindDirection     model.WindDirection     `json:"wind_direction"`
	WindStrength      model.WindStrength      `json:"wind_strength"`
	FairwayHit        model.FairwayHit        `json:"fairway_hit"`
	GreenInRegulation model.GreenInRegulation `json:"green_in_regulation"`

	MentalStateNote    string     `json:"mental_state_note"`
	Notes              string     `json:"notes"`
	IgnoreForAnalytics bool       `json:"ignore_for_analytics"`
	CreatedAt          *time.Time `json:"created_at"`
}

// ParseFile decodes the export at path and hashes its content.
func ParseFile(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	// Hash file for idempotency key.
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hash export: %w", err)
	}
	hash := fmt.Sprintf("%x", h.Sum(nil))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek export: %w", err)
	}

	exp, err := Decode(f)
	if err != nil {
		return nil, err
	}
	exp.Hash = hash
	return exp, nil
}

// Decode reads an export document from r. Rounds without an id are numbered
// by position; shots without a timestamp inherit their round's.
func Decode(r io.Reader) (*Export, error) {
	var doc fileExport
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	exp := &Export{}
	seen := make(map[int64]bool, len(doc.Rounds))
	for i, fr := range doc.Rounds {
		id := fr.ID
		if id == 0 {
			id = int64(i + 1)
		}
		if seen[id] {
			return nil, fmt.Errorf("round %d: duplicate id", id)
		}
		seen[id] = true
		if fr.CreatedAt.IsZero() {
			return nil, fmt.Errorf("round %d: missing created_at", id)
		}
		startingHole := fr.StartingHole
		if startingHole == 0 {
			startingHole = 1
		}
		exp.Rounds = append(exp.Rounds, model.Round{
			ID:            id,
			CourseName:    fr.CourseName,
			Weather:       fr.Weather,
			Temperature:   fr.Temperature,
			WindCondition: fr.WindCondition,
			StartingHole:  startingHole,
			CreatedAt:     fr.CreatedAt,
		})

		for j, fs := range fr.Shots {
			if fs.HoleNumber < 1 || fs.ShotNumber < 1 {
				return nil, fmt.Errorf("round %d shot %d: hole_number and shot_number must be positive", id, j+1)
			}
			created := fr.CreatedAt
			if fs.CreatedAt != nil {
				created = *fs.CreatedAt
			}
			exp.Shots = append(exp.Shots, model.Shot{
				RoundID:              id,
				HoleNumber:           fs.HoleNumber,
				ShotNumber:           fs.ShotNumber,
				Club:                 fs.Club,
				Distance:             fs.Distance,
				CarryDistance:        fs.CarryDistance,
				ElevationChange:      fs.ElevationChange,
				CarryElevationChange: fs.CarryElevationChange,
				TargetDistance:       fs.TargetDistance,
				PowerPct:             fs.PowerPct,
				ClubDirection:        fs.ClubDirection,
				BallDirection:        fs.BallDirection,
				Lie:                  fs.Lie,
				LieDirection:         fs.LieDirection,
				ShotType:             fs.ShotType,
				Strike:               fs.Strike,
				MentalState:          fs.MentalState,
				BallFlight:           fs.BallFlight,
				DirectionToTarget:    fs.DirectionToTarget,
				DistanceToTarget:     fs.DistanceToTarget,
				WindDirection:        fs.WindDirection,
				WindStrength:         fs.WindStrength,
				FairwayHit:           fs.FairwayHit,
				GreenInRegulation:    fs.GreenInRegulation,
				MentalStateNote:      fs.MentalStateNote,
				Notes:                fs.Notes,
				IgnoreForAnalytics:   fs.IgnoreForAnalytics,
				CreatedAt:            created,
			})
		}
	}
	return exp, nil
}
