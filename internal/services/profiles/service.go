package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
)

// ErrMissingUserID is returned when a profile has no rater identifier.
var ErrMissingUserID = errors.New("user id is required")

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	store Store
}

// NewService creates a new profile service
func NewService(store Store) Service {
	return &ServiceImpl{store: store}
}

// SaveProfile stamps the submission time and persists the profile,
// overwriting any earlier questionnaire submission for the same rater.
func (s *ServiceImpl) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile.UserID == "" {
		return ErrMissingUserID
	}
	if profile.SavedAt.IsZero() {
		profile.SavedAt = time.Now().UTC()
	}
	return s.store.PutProfile(ctx, profile)
}

// HasProfile reports whether the rater has submitted the questionnaire.
func (s *ServiceImpl) HasProfile(ctx context.Context, userID string) (bool, error) {
	return s.store.HasProfile(ctx, userID)
}

// ListProfiles returns all stored profiles plus the malformed-file count.
func (s *ServiceImpl) ListProfiles(ctx context.Context) ([]StoredProfile, int, error) {
	return s.store.ListProfiles(ctx)
}
