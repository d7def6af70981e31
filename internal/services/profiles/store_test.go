package profiles

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStoreMissingDirectory(t *testing.T) {
	ctx := context.Background()
	store := NewFilesystemStore(filepath.Join(t.TempDir(), "absent"))

	has, err := store.HasProfile(ctx, "anjo1257")
	require.NoError(t, err)
	assert.False(t, has)

	records, skipped, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, skipped)
}

func TestFilesystemStorePutOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFilesystemStore(dir)

	first := &models.Profile{UserID: "anjo1257", Age: 24, Gender: "female"}
	require.NoError(t, store.PutProfile(ctx, first))

	second := &models.Profile{UserID: "anjo1257", Age: 25, Gender: "female"}
	require.NoError(t, store.PutProfile(ctx, second))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	records, skipped, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, 25, records[0].Age)
	assert.Equal(t, "anjo1257.json", records[0].Filename)
}

func TestFilesystemStoreListSkipsMalformed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFilesystemStore(dir)

	require.NoError(t, store.PutProfile(ctx, &models.Profile{UserID: "anjo1257"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mape22.json"), []byte("<garbage>"), 0644))

	records, skipped, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "anjo1257", records[0].UserID)
}

func TestServiceSaveProfile(t *testing.T) {
	ctx := context.Background()
	store := NewFilesystemStore(t.TempDir())
	service := NewService(store)

	err := service.SaveProfile(ctx, &models.Profile{})
	assert.ErrorIs(t, err, ErrMissingUserID)

	profile := &models.Profile{UserID: "anjo1257", Age: 24}
	require.NoError(t, service.SaveProfile(ctx, profile))
	assert.False(t, profile.SavedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), profile.SavedAt, time.Minute)

	has, err := service.HasProfile(ctx, "anjo1257")
	require.NoError(t, err)
	assert.True(t, has)
}
