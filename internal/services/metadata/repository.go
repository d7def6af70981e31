package metadata

import (
	"context"
	"fmt"

	"github.com/soccerlab/rater-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new event metadata repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetEventsByIDs fetches the rows for the given clip IDs. IDs without a
// row are simply absent from the result.
func (r *RepositoryImpl) GetEventsByIDs(ctx context.Context, ids []string) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var events []models.Event
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	return events, nil
}
