package models

// PlaceholderValue is rendered for descriptive attributes of clips that
// exist in the video directory but have no row in the metadata database.
const PlaceholderValue = "unknown"

// Event carries the descriptive metadata for one soccer action, keyed by
// the clip identifier (the video filename with its extension stripped).
// The table is read-only from this application's point of view; rows are
// produced by an upstream analysis pipeline.
type Event struct {
	ID           string  `json:"id" gorm:"primaryKey;column:id"`
	Team         string  `json:"team"`
	Player       string  `json:"player"`
	JerseyNumber int     `json:"jersey_number" gorm:"column:jersey_number"`
	Type         string  `json:"type"`
	BodyPart     string  `json:"body_part" gorm:"column:body_part"`
	StartX       float64 `json:"start_x" gorm:"column:start_x"`
	StartY       float64 `json:"start_y" gorm:"column:start_y"`
	EndX         float64 `json:"end_x" gorm:"column:end_x"`
	EndY         float64 `json:"end_y" gorm:"column:end_y"`
}

// TableName returns the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// PlaceholderEvent returns the metadata rendered when a clip has no row
// in the events table. The trajectory defaults match what the original
// study displayed for unknown actions.
func PlaceholderEvent(clipID string) *Event {
	return &Event{
		ID:       clipID,
		Team:     PlaceholderValue,
		Player:   PlaceholderValue,
		Type:     PlaceholderValue,
		BodyPart: PlaceholderValue,
		StartX:   10,
		StartY:   10,
		EndX:     90,
		EndY:     10,
	}
}
