package ratings

import (
	"context"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
)

// StoredRating is a rating record together with its storage metadata.
// ModifiedAt is the file's modification time, which survives copying the
// record directory between machines and is what the export stamps as
// file_created_at.
type StoredRating struct {
	models.Rating
	Filename   string
	ModifiedAt time.Time
}

// Store defines the interface for rating record persistence. The canonical
// implementation keeps one JSON file per (user_id, clip_id) pair in a flat
// directory shared between rater sessions.
type Store interface {
	// HasRating reports whether a record exists for the pair. A missing
	// record directory means "no records yet", not an error.
	HasRating(ctx context.Context, userID, clipID string) (bool, error)

	// PutRating persists a record, creating the directory if needed and
	// overwriting any existing record for the same pair.
	PutRating(ctx context.Context, rating *models.Rating) error

	// CountRatings returns the number of distinct raters with a stored
	// record for the clip, across all users.
	CountRatings(ctx context.Context, clipID string) (int, error)

	// ListRatings returns every decodable record plus the number of
	// malformed files that were skipped.
	ListRatings(ctx context.Context) ([]StoredRating, int, error)
}

// Service defines the interface for rating business logic: validation of
// the completeness invariant and value bounds before anything is stored.
type Service interface {
	SubmitRating(ctx context.Context, rating *models.Rating) error
	HasRating(ctx context.Context, userID, clipID string) (bool, error)
	CountRatings(ctx context.Context, clipID string) (int, error)
	ListRatings(ctx context.Context) ([]StoredRating, int, error)
	Dimensions() []models.RatingDimension
}
