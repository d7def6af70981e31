package models

import (
	"fmt"
	"time"
)

// Rating represents one rater's judgment of one clip. Exactly one record
// exists per (user_id, clip_id) pair; a resubmission for the same pair
// overwrites the earlier record (last-write-wins, no versioning).
type Rating struct {
	UserID string `json:"user_id"`
	ClipID string `json:"clip_id"`

	// Values maps dimension name to the collected value: a number for
	// discrete/slider dimensions, a string for text dimensions, or nil
	// when the rater left the dimension unanswered.
	Values map[string]any `json:"values"`

	// NotRecognized marks that the rater could not identify the action.
	// A record with this flag set is complete regardless of Values.
	NotRecognized bool `json:"not_recognized"`

	SubmittedAt time.Time `json:"submitted_at"`
}

// Key returns the storage key for this record.
func (r Rating) Key() string {
	return fmt.Sprintf("%s_%s", r.UserID, r.ClipID)
}

// Filename returns the record's filename inside the ratings directory.
func (r Rating) Filename() string {
	return r.Key() + ".json"
}

// Value returns the stored value for a dimension, or nil.
func (r Rating) Value(dimension string) any {
	if r.Values == nil {
		return nil
	}
	return r.Values[dimension]
}

// IsComplete reports whether the record satisfies the completeness
// invariant for the given dimensions: NotRecognized is set, or every
// required dimension holds a non-nil, non-empty value.
func (r Rating) IsComplete(dimensions []RatingDimension) bool {
	if r.NotRecognized {
		return true
	}
	for _, dim := range dimensions {
		if !dim.Required {
			continue
		}
		if isEmptyValue(r.Value(dim.Name)) {
			return false
		}
	}
	return true
}

// MissingDimensions lists the required dimensions a record leaves
// unanswered. Empty when the record is complete or NotRecognized is set.
func (r Rating) MissingDimensions(dimensions []RatingDimension) []string {
	if r.NotRecognized {
		return nil
	}
	var missing []string
	for _, dim := range dimensions {
		if dim.Required && isEmptyValue(r.Value(dim.Name)) {
			missing = append(missing, dim.Name)
		}
	}
	return missing
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
