package models

import "time"

// Profile holds one rater's questionnaire answers. One record exists per
// rater identity; resubmitting the questionnaire overwrites it wholesale.
type Profile struct {
	UserID    string    `json:"user_id"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	License   string    `json:"license"`
	PlayerExp int       `json:"player_exp"` // Years played
	CoachExp  int       `json:"coach_exp"`  // Years coached
	WatchExp  int       `json:"watch_exp"`  // Years watching
	SavedAt   time.Time `json:"saved_at"`
}

// Filename returns the profile's filename inside the profiles directory.
func (p Profile) Filename() string {
	return p.UserID + ".json"
}
