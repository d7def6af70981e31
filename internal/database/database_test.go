package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Initialize(filepath.Join(t.TempDir(), "events.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInitializeAndHealthCheck(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.HealthCheck())
}

func TestHealthCheckNilDB(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}

func TestEventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	// The production table comes from the analysis pipeline; tests seed
	// it through gorm directly.
	require.NoError(t, db.DB.AutoMigrate(&models.Event{}))
	require.NoError(t, db.DB.Create(&models.Event{
		ID:       "match_04_event_17",
		Team:     "Bayern",
		Player:   "Musiala",
		Type:     "dribble",
		BodyPart: "right_foot",
		StartX:   34.2,
		StartY:   51.0,
		EndX:     48.9,
		EndY:     44.5,
	}).Error)

	repo := metadata.NewRepository(db.DB)
	events, err := repo.GetEventsByIDs(ctx, []string{"match_04_event_17", "missing"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Bayern", events[0].Team)
	assert.Equal(t, 34.2, events[0].StartX)

	service := metadata.NewService(repo)
	byClip, err := service.EventsForClips(ctx, []string{"match_04_event_17", "missing"})
	require.NoError(t, err)
	assert.Equal(t, "Musiala", byClip["match_04_event_17"].Player)
	assert.Equal(t, models.PlaceholderValue, byClip["missing"].Player)
}
