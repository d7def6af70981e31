package metadata

import (
	"context"

	"github.com/soccerlab/rater-api/internal/models"
)

// Repository defines the interface for event metadata access. The backing
// table is produced by an upstream analysis pipeline and is read-only here.
type Repository interface {
	GetEventsByIDs(ctx context.Context, ids []string) ([]models.Event, error)
}

// Service defines the interface for metadata lookups as the rating flow
// needs them: keyed by clip ID, with placeholders for unknown clips.
type Service interface {
	// EventsForClips returns one event per requested clip ID. Clips
	// without a metadata row map to a placeholder, never an error.
	EventsForClips(ctx context.Context, clipIDs []string) (map[string]*models.Event, error)

	// EventForClip returns the event for one clip, or its placeholder.
	EventForClip(ctx context.Context, clipID string) (*models.Event, error)
}
