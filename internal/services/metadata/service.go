package metadata

import (
	"context"
	"log"

	"github.com/soccerlab/rater-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new metadata service. A nil repository is allowed
// and means the metadata source was not configured; every lookup then
// returns placeholders, degrading exactly like a missing metadata row.
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// EventsForClips returns one event per clip ID, with placeholders filled
// in for clips the metadata source does not know about.
func (s *ServiceImpl) EventsForClips(ctx context.Context, clipIDs []string) (map[string]*models.Event, error) {
	result := make(map[string]*models.Event, len(clipIDs))
	for _, id := range clipIDs {
		result[id] = models.PlaceholderEvent(id)
	}

	if s.repository == nil || len(clipIDs) == 0 {
		return result, nil
	}

	events, err := s.repository.GetEventsByIDs(ctx, clipIDs)
	if err != nil {
		// A broken metadata source must not block the rating flow.
		log.Printf("[WARN] Metadata lookup failed, rendering placeholders: %v", err)
		return result, nil
	}

	for i := range events {
		event := events[i]
		result[event.ID] = &event
	}
	return result, nil
}

// EventForClip returns the event for one clip, or its placeholder.
func (s *ServiceImpl) EventForClip(ctx context.Context, clipID string) (*models.Event, error) {
	events, err := s.EventsForClips(ctx, []string{clipID})
	if err != nil {
		return nil, err
	}
	return events[clipID], nil
}
