package types

import (
	"time"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/export"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// DeriveIDResponse for the rater ID derivation endpoint
type DeriveIDResponse struct {
	BaseResponse
	UserID string `json:"user_id"`
}

// RaterResponse for rater lookup and questionnaire submission
type RaterResponse struct {
	BaseResponse
	UserID     string          `json:"user_id"`
	HasProfile bool            `json:"has_profile"`
	Profile    *models.Profile `json:"profile,omitempty"`
}

// SessionResponse for session creation
type SessionResponse struct {
	BaseResponse
	Token       string    `json:"token"`
	UserID      string    `json:"user_id"`
	QueueLength int       `json:"queue_length"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClipEvent carries the match metadata shown alongside a clip
type ClipEvent struct {
	Team         string  `json:"team"`
	Player       string  `json:"player"`
	JerseyNumber int     `json:"jersey_number"`
	Type         string  `json:"type"`
	BodyPart     string  `json:"body_part"`
	StartX       float64 `json:"start_x"`
	StartY       float64 `json:"start_y"`
	EndX         float64 `json:"end_x"`
	EndY         float64 `json:"end_y"`
}

// CurrentClipResponse for the current queue position of a session
type CurrentClipResponse struct {
	BaseResponse
	ClipID    string     `json:"clip_id,omitempty"`
	Filename  string     `json:"filename,omitempty"`
	VideoPath string     `json:"video_path,omitempty"`
	Event     *ClipEvent `json:"event,omitempty"`
	Position  int        `json:"position"`
	Remaining int        `json:"remaining"`
	Exhausted bool       `json:"exhausted"`
}

// DimensionsResponse for the configured rating dimensions
type DimensionsResponse struct {
	BaseResponse
	Dimensions []models.RatingDimension `json:"dimensions"`
	Count      int                      `json:"count"`
}

// ExportResponse for export runs
type ExportResponse struct {
	BaseResponse
	Summary *export.Summary `json:"summary"`
}
