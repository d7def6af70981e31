package sessions

import (
	"context"

	"github.com/soccerlab/rater-api/internal/services/clips"
)

// ClipSource lists the clips available for rating.
type ClipSource interface {
	Scan() ([]clips.Clip, error)
}

// Service defines the interface for rating sessions: opening a session
// builds the rater's queue snapshot, and submissions advance the cursor
// through it.
type Service interface {
	// OpenSession computes the queue for a rater and returns a new
	// session. The queue is a snapshot; it is not recomputed later.
	OpenSession(ctx context.Context, userID string) (*Session, error)

	// GetSession returns an open session by token.
	GetSession(token string) (*Session, error)

	// SubmitCurrent validates and stores a rating for the session's
	// current clip, advancing on success. Validation errors reject the
	// submission with no state change; storage errors keep the record
	// pending so the rater can retry.
	SubmitCurrent(ctx context.Context, token string, values map[string]any, notRecognized bool) (*Session, error)

	// SkipCurrent advances past the current clip without storing.
	SkipCurrent(token string) (*Session, error)

	// CloseSession discards a session. Stored records stay in place;
	// only the in-memory cursor and any pending record are dropped.
	CloseSession(token string)
}
