package storage

import (
	"database/sql"
	"encoding"
	"fmt"
	"time"

	"github.com/pable/golfstats/internal/model"
)

// RoundInfo is a stored round with its shot count.
type RoundInfo struct {
	model.Round
	ShotCount int
}

// ImportExists returns true if an export file with the given hash was already imported.
func (db *DB) ImportExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM imports WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertImport stores one export file in a single transaction. Round ids in
// rounds are file-local; each shot's RoundID must name one of them and is
// rewritten to the database id of that round.
func (db *DB) InsertImport(hash, source string, rounds []model.Round, shots []model.Shot) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO imports(hash, source, round_count, shot_count, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		hash, source, len(rounds), len(shots), formatTime(time.Now()),
	); err != nil {
		return fmt.Errorf("insert import: %w", err)
	}

	roundStmt, err := tx.Prepare(`
		INSERT INTO rounds(import_hash, course_name, weather, temperature, wind_condition, starting_hole, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer roundStmt.Close()

	ids := make(map[int64]int64, len(rounds))
	for _, r := range rounds {
		res, err := roundStmt.Exec(
			hash, r.CourseName, r.Weather.String(), nullInt(r.Temperature),
			r.WindCondition, r.StartingHole, formatTime(r.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert round %d: %w", r.ID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		ids[r.ID] = id
	}

	shotStmt, err := tx.Prepare(`
		INSERT INTO shots(
			round_id, hole_number, shot_number, club,
			distance, carry_distance, elevation_change, carry_elevation_change,
			target_distance, power_pct,
			club_direction, ball_direction, lie, lie_direction, shot_type, strike,
			mental_state, ball_flight, direction_to_target, distance_to_target,
			wind_direction, wind_strength, fairway_hit, green_in_regulation,
			mental_state_note, notes, ignore_for_analytics, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer shotStmt.Close()

	for _, s := range shots {
		roundID, ok := ids[s.RoundID]
		if !ok {
			return fmt.Errorf("shot %d/%d references unknown round %d", s.HoleNumber, s.ShotNumber, s.RoundID)
		}
		_, err = shotStmt.Exec(
			roundID, s.HoleNumber, s.ShotNumber, s.Club,
			nullFloat(s.Distance), nullFloat(s.CarryDistance),
			nullFloat(s.ElevationChange), nullFloat(s.CarryElevationChange),
			nullFloat(s.TargetDistance), nullInt(s.PowerPct),
			s.ClubDirection.String(), s.BallDirection.String(), s.Lie.String(),
			s.LieDirection.String(), s.ShotType.String(), s.Strike.String(),
			s.MentalState.String(), s.BallFlight.String(),
			s.DirectionToTarget.String(), s.DistanceToTarget.String(),
			s.WindDirection.String(), s.WindStrength.String(),
			s.FairwayHit.String(), s.GreenInRegulation.String(),
			s.MentalStateNote, s.Notes, boolInt(s.IgnoreForAnalytics), formatTime(s.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert shot %d/%d: %w", s.HoleNumber, s.ShotNumber, err)
		}
	}
	return tx.Commit()
}

const roundColumns = `r.id, r.course_name, r.weather, r.temperature, r.wind_condition, r.starting_hole, r.created_at`

// ListRounds returns all rounds with their shot counts, newest first.
func (db *DB) ListRounds() ([]RoundInfo, error) {
	rows, err := db.conn.Query(`
		SELECT ` + roundColumns + `, COUNT(s.id)
		FROM rounds r LEFT JOIN shots s ON s.round_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoundInfo
	for rows.Next() {
		var ri RoundInfo
		if err := scanRound(rows, &ri.Round, &ri.ShotCount); err != nil {
			return nil, err
		}
		out = append(out, ri)
	}
	return out, rows.Err()
}

// AllRounds returns every stored round in id order.
func (db *DB) AllRounds() ([]model.Round, error) {
	rows, err := db.conn.Query(`SELECT ` + roundColumns + ` FROM rounds r ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Round
	for rows.Next() {
		var r model.Round
		if err := scanRound(rows, &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ShotsForAnalytics returns every shot not flagged as ignored, in id order.
func (db *DB) ShotsForAnalytics() ([]model.Shot, error) {
	rows, err := db.conn.Query(`
		SELECT id, round_id, hole_number, shot_number, club,
		       distance, carry_distance, elevation_change, carry_elevation_change,
		       target_distance, power_pct,
		       club_direction, ball_direction, lie, lie_direction, shot_type, strike,
		       mental_state, ball_flight, direction_to_target, distance_to_target,
		       wind_direction, wind_strength, fairway_hit, green_in_regulation,
		       mental_state_note, notes, ignore_for_analytics, created_at
		FROM shots WHERE ignore_for_analytics = 0 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Shot
	for rows.Next() {
		var (
			s                            model.Shot
			dist, carry, elev, carryElev sql.NullFloat64
			target                       sql.NullFloat64
			power                        sql.NullInt64
			enums                        [14]string
			ignore                       int
			created                      string
		)
		if err := rows.Scan(&s.ID, &s.RoundID, &s.HoleNumber, &s.ShotNumber, &s.Club,
			&dist, &carry, &elev, &carryElev, &target, &power,
			&enums[0], &enums[1], &enums[2], &enums[3], &enums[4], &enums[5], &enums[6],
			&enums[7], &enums[8], &enums[9], &enums[10], &enums[11], &enums[12], &enums[13],
			&s.MentalStateNote, &s.Notes, &ignore, &created); err != nil {
			return nil, err
		}
		s.Distance = floatPtr(dist)
		s.CarryDistance = floatPtr(carry)
		s.ElevationChange = floatPtr(elev)
		s.CarryElevationChange = floatPtr(carryElev)
		s.TargetDistance = floatPtr(target)
		s.PowerPct = intPtr(power)
		s.IgnoreForAnalytics = ignore != 0

		dsts := []encoding.TextUnmarshaler{
			&s.ClubDirection, &s.BallDirection, &s.Lie, &s.LieDirection, &s.ShotType, &s.Strike,
			&s.MentalState, &s.BallFlight, &s.DirectionToTarget, &s.DistanceToTarget,
			&s.WindDirection, &s.WindStrength, &s.FairwayHit, &s.GreenInRegulation,
		}
		for i, dst := range dsts {
			if err := dst.UnmarshalText([]byte(enums[i])); err != nil {
				return nil, fmt.Errorf("shot %d: %w", s.ID, err)
			}
		}
		if s.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("shot %d: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprint(x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRound reads roundColumns into r, followed by any extra destinations.
func scanRound(sc scanner, r *model.Round, extra ...any) error {
	var (
		weather string
		temp    sql.NullInt64
		created string
	)
	dest := append([]any{&r.ID, &r.CourseName, &weather, &temp, &r.WindCondition, &r.StartingHole, &created}, extra...)
	if err := sc.Scan(dest...); err != nil {
		return err
	}
	var err error
	if r.Weather, err = model.ParseWeather(weather); err != nil {
		return fmt.Errorf("round %d: %w", r.ID, err)
	}
	r.Temperature = intPtr(temp)
	if r.CreatedAt, err = parseTime(created); err != nil {
		return fmt.Errorf("round %d: %w", r.ID, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
