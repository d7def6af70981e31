package types

// ProfileRequest carries the demographic questionnaire answers. The
// experience fields count whole years, matching the stored profile record.
type ProfileRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	License   string `json:"license"`
	PlayerExp int    `json:"player_exp"`
	CoachExp  int    `json:"coach_exp"`
	WatchExp  int    `json:"watch_exp"`
}

// OpenSessionRequest starts a rating session for a rater
type OpenSessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// SubmitRatingRequest carries the rating values for the current clip
type SubmitRatingRequest struct {
	Values        map[string]interface{} `json:"values"`
	NotRecognized bool                   `json:"not_recognized"`
}
