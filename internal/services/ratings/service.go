package ratings

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	store      Store
	dimensions []models.RatingDimension
}

// NewService creates a new rating service validating against the
// configured rating dimensions.
func NewService(store Store, dimensions []models.RatingDimension) Service {
	return &ServiceImpl{
		store:      store,
		dimensions: dimensions,
	}
}

// SubmitRating validates the record and persists it. Validation failures
// leave the store untouched; storage failures are returned wrapped so the
// caller can retry with the same in-memory record.
func (s *ServiceImpl) SubmitRating(ctx context.Context, rating *models.Rating) error {
	if rating.UserID == "" {
		return ErrMissingUserID
	}
	if rating.ClipID == "" {
		return ErrMissingClipID
	}

	if err := s.validateValues(rating); err != nil {
		return err
	}

	if missing := rating.MissingDimensions(s.dimensions); len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrIncompleteRating, missing)
	}

	if rating.SubmittedAt.IsZero() {
		rating.SubmittedAt = time.Now().UTC()
	}

	return s.store.PutRating(ctx, rating)
}

// HasRating reports whether the rater already has a record for the clip.
func (s *ServiceImpl) HasRating(ctx context.Context, userID, clipID string) (bool, error) {
	return s.store.HasRating(ctx, userID, clipID)
}

// CountRatings returns the distinct-rater count for the clip.
func (s *ServiceImpl) CountRatings(ctx context.Context, clipID string) (int, error) {
	return s.store.CountRatings(ctx, clipID)
}

// ListRatings returns all stored records plus the malformed-file count.
func (s *ServiceImpl) ListRatings(ctx context.Context) ([]StoredRating, int, error) {
	return s.store.ListRatings(ctx)
}

// Dimensions returns the configured rating dimensions.
func (s *ServiceImpl) Dimensions() []models.RatingDimension {
	return s.dimensions
}

// validateValues checks that every provided value belongs to a configured
// dimension, has the type the dimension kind expects, and sits inside the
// configured bounds. Nil values are allowed everywhere; the completeness
// check decides whether a nil is acceptable.
func (s *ServiceImpl) validateValues(rating *models.Rating) error {
	byName := make(map[string]models.RatingDimension, len(s.dimensions))
	for _, dim := range s.dimensions {
		byName[dim.Name] = dim
	}

	for name, value := range rating.Values {
		dim, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownDimension, name)
		}
		if value == nil {
			continue
		}

		switch {
		case dim.IsScale():
			num, ok := toFloat(value)
			if !ok {
				return fmt.Errorf("%w: %s expects a number", ErrInvalidValue, name)
			}
			// Discrete dimensions are integer scales; only sliders
			// accept fractional values.
			if dim.Kind == models.DimensionKindDiscrete && num != math.Trunc(num) {
				return fmt.Errorf("%w: %s expects an integer, got %v", ErrInvalidValue, name, num)
			}
			if !dim.InBounds(num) {
				return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrInvalidValue, name, num, dim.Min, dim.Max)
			}
		case dim.Kind == models.DimensionKindText:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%w: %s expects text", ErrInvalidValue, name)
			}
		}
	}
	return nil
}

// toFloat accepts the numeric types JSON decoding and Go callers produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
