package profiles

import (
	"context"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
)

// StoredProfile is a profile record together with its storage metadata.
type StoredProfile struct {
	models.Profile
	Filename   string
	ModifiedAt time.Time
}

// Store defines the interface for profile persistence: one JSON file per
// rater identity, overwritten wholesale when the questionnaire is
// resubmitted. The record's saved_at field keeps the submission time.
type Store interface {
	HasProfile(ctx context.Context, userID string) (bool, error)
	PutProfile(ctx context.Context, profile *models.Profile) error
	ListProfiles(ctx context.Context) ([]StoredProfile, int, error)
}

// Service defines the interface for profile business logic.
type Service interface {
	SaveProfile(ctx context.Context, profile *models.Profile) error
	HasProfile(ctx context.Context, userID string) (bool, error)
	ListProfiles(ctx context.Context) ([]StoredProfile, int, error)
}
