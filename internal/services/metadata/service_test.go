package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetEventsByIDs(ctx context.Context, ids []string) ([]models.Event, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func TestEventsForClipsFillsPlaceholders(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetEventsByIDs", ctx, []string{"clip_a", "clip_b"}).Return([]models.Event{
		{ID: "clip_a", Team: "Bayern", Player: "Musiala", Type: "dribble", BodyPart: "right_foot"},
	}, nil)

	events, err := service.EventsForClips(ctx, []string{"clip_a", "clip_b"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Bayern", events["clip_a"].Team)
	assert.Equal(t, models.PlaceholderValue, events["clip_b"].Team)
	assert.Equal(t, models.PlaceholderValue, events["clip_b"].Player)
	mockRepo.AssertExpectations(t)
}

func TestEventsForClipsRepositoryFailureDegrades(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetEventsByIDs", ctx, []string{"clip_a"}).Return(nil, errors.New("db locked"))

	events, err := service.EventsForClips(ctx, []string{"clip_a"})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderValue, events["clip_a"].Team)
}

func TestEventsForClipsNilRepository(t *testing.T) {
	service := NewService(nil)

	events, err := service.EventsForClips(context.Background(), []string{"clip_a"})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderValue, events["clip_a"].Type)

	event, err := service.EventForClip(context.Background(), "clip_z")
	require.NoError(t, err)
	assert.Equal(t, "clip_z", event.ID)
	assert.Equal(t, float64(10), event.StartX)
}
