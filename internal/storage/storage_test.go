package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/golfstats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var t0 = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func sampleImport() ([]model.Round, []model.Shot) {
	rounds := []model.Round{
		{ID: 1, CourseName: "Links", Weather: model.WeatherSunny, Temperature: ip(18), WindCondition: "breezy", StartingHole: 1, CreatedAt: t0},
		{ID: 2, CourseName: "Parkland", Weather: model.WeatherLightRain, StartingHole: 10, CreatedAt: t0.Add(48 * time.Hour)},
	}
	shots := []model.Shot{
		{RoundID: 1, HoleNumber: 1, ShotNumber: 1, Club: "Driver", Distance: fp(231.5), Strike: model.StrikePure,
			BallDirection: model.BallFade, FairwayHit: model.FairwayYes, PowerPct: ip(90), CreatedAt: t0},
		{RoundID: 1, HoleNumber: 1, ShotNumber: 2, Club: "7 Iron", ElevationChange: fp(-3), Lie: model.LieFairway,
			MentalStateNote: "rushed the swing", MentalState: model.MentalRushed, CreatedAt: t0.Add(time.Minute)},
		{RoundID: 2, HoleNumber: 10, ShotNumber: 1, Club: "Driver", Distance: fp(210), IgnoreForAnalytics: true, CreatedAt: t0.Add(48 * time.Hour)},
		{RoundID: 2, HoleNumber: 10, ShotNumber: 2, Notes: "no club logged", CreatedAt: t0.Add(49 * time.Hour)},
	}
	return rounds, shots
}

func TestImportInsertAndExists(t *testing.T) {
	db := openMemDB(t)
	rounds, shots := sampleImport()

	require.NoError(t, db.InsertImport("abc123", "export.json", rounds, shots))

	exists, err := db.ImportExists("abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = db.ImportExists("nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInsertImportIsAtomic(t *testing.T) {
	db := openMemDB(t)
	rounds, shots := sampleImport()
	shots = append(shots, model.Shot{RoundID: 99, HoleNumber: 1, ShotNumber: 1, CreatedAt: t0})

	err := db.InsertImport("bad", "bad.json", rounds, shots)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown round 99")

	exists, err := db.ImportExists("bad")
	require.NoError(t, err)
	assert.False(t, exists)
	all, err := db.AllRounds()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDuplicateImportRejected(t *testing.T) {
	db := openMemDB(t)
	rounds, shots := sampleImport()
	require.NoError(t, db.InsertImport("h1", "a.json", rounds, shots))
	assert.Error(t, db.InsertImport("h1", "a.json", rounds, shots))
}

func TestListRounds(t *testing.T) {
	db := openMemDB(t)
	rounds, shots := sampleImport()
	require.NoError(t, db.InsertImport("h1", "a.json", rounds, shots))

	list, err := db.ListRounds()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first; the ignored shot still counts toward the round.
	assert.Equal(t, "Parkland", list[0].CourseName)
	assert.Equal(t, 2, list[0].ShotCount)
	assert.Nil(t, list[0].Temperature)
	assert.Equal(t, model.WeatherLightRain, list[0].Weather)

	assert.Equal(t, "Links", list[1].CourseName)
	require.NotNil(t, list[1].Temperature)
	assert.Equal(t, 18, *list[1].Temperature)
	assert.True(t, list[1].CreatedAt.Equal(t0))
}

func TestShotsForAnalyticsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	rounds, shots := sampleImport()
	require.NoError(t, db.InsertImport("h1", "a.json", rounds, shots))

	stored, err := db.AllRounds()
	require.NoError(t, err)
	require.Len(t, stored, 2)

	got, err := db.ShotsForAnalytics()
	require.NoError(t, err)
	require.Len(t, got, 3, "ignored shot must be excluded")

	for _, s := range got {
		assert.False(t, s.IgnoreForAnalytics)
	}

	d := got[0]
	assert.Equal(t, stored[0].ID, d.RoundID, "round id remapped to database id")
	assert.Equal(t, "Driver", d.Club)
	require.NotNil(t, d.Distance)
	assert.Equal(t, 231.5, *d.Distance)
	assert.Nil(t, d.CarryDistance)
	require.NotNil(t, d.PowerPct)
	assert.Equal(t, 90, *d.PowerPct)
	assert.Equal(t, model.StrikePure, d.Strike)
	assert.Equal(t, model.BallFade, d.BallDirection)
	assert.Equal(t, model.FairwayYes, d.FairwayHit)
	assert.Equal(t, model.LieUnset, d.Lie)
	assert.True(t, d.CreatedAt.Equal(t0))

	iron := got[1]
	require.NotNil(t, iron.ElevationChange)
	assert.Equal(t, -3.0, *iron.ElevationChange)
	assert.Nil(t, iron.Distance)
	assert.Equal(t, model.MentalRushed, iron.MentalState)
	assert.Equal(t, "rushed the swing", iron.MentalStateNote)

	noClub := got[2]
	assert.Equal(t, stored[1].ID, noClub.RoundID)
	assert.Empty(t, noClub.Club)
	assert.Equal(t, "no club logged", noClub.Notes)
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	rounds, shots := sampleImport()
	require.NoError(t, db.InsertImport("h1", "a.json", rounds, shots))

	cols, rows, err := db.QueryRaw("SELECT club, distance FROM shots WHERE hole_number = 1 ORDER BY shot_number")
	require.NoError(t, err)
	assert.Equal(t, []string{"club", "distance"}, cols)
	assert.Equal(t, [][]string{{"Driver", "231.5"}, {"7 Iron", "NULL"}}, rows)

	_, _, err = db.QueryRaw("SELECT nope FROM nowhere")
	assert.Error(t, err)
}

func TestDataVersion_ChangesOnOtherConnectionCommit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golfstats.db")
	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()
	writer, err := Open(path)
	require.NoError(t, err)
	defer writer.Close()

	before, err := reader.DataVersion()
	require.NoError(t, err)

	_, err = reader.ListRounds()
	require.NoError(t, err)
	same, err := reader.DataVersion()
	require.NoError(t, err)
	assert.Equal(t, before, same, "reads do not bump the version")

	rounds, shots := sampleImport()
	require.NoError(t, writer.InsertImport("abc123", "export.json", rounds, shots))
	after, err := reader.DataVersion()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}
