package types

import (
	"github.com/soccerlab/rater-api/internal/database"
	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/clips"
	"github.com/soccerlab/rater-api/internal/services/export"
	"github.com/soccerlab/rater-api/internal/services/metadata"
	"github.com/soccerlab/rater-api/internal/services/profiles"
	"github.com/soccerlab/rater-api/internal/services/ratings"
	"github.com/soccerlab/rater-api/internal/services/sessions"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	RatingService   ratings.Service
	ProfileService  profiles.Service
	SessionService  sessions.Service
	MetadataService metadata.Service
	ExportService   export.Service
	Scanner         *clips.Scanner
	Dimensions      []models.RatingDimension
}
