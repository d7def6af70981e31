package sessions

import (
	"time"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/clips"
)

// Session is the explicit context object for one rater's pass through the
// queue. It replaces process-wide mutable state: everything the rating
// flow needs to know about "where this rater is" lives here and is passed
// around, not looked up globally.
type Session struct {
	Token     string
	UserID    string
	Queue     []clips.Clip
	Index     int
	CreatedAt time.Time

	// Pending holds the last submitted-but-unstored record after a
	// storage failure, so the rater can retry without re-entering
	// answers. Discarded once a submission succeeds or the session is
	// abandoned.
	Pending *models.Rating
}

// Exhausted reports whether the rater has worked through the whole queue.
func (s *Session) Exhausted() bool {
	return s.Index >= len(s.Queue)
}

// Current returns the clip at the cursor. ok is false once the queue is
// exhausted.
func (s *Session) Current() (clips.Clip, bool) {
	if s.Exhausted() {
		return clips.Clip{}, false
	}
	return s.Queue[s.Index], true
}

// Advance moves the cursor past the current clip and clears any pending
// record. Called after a successful store write or an explicit skip.
func (s *Session) Advance() {
	if !s.Exhausted() {
		s.Index++
	}
	s.Pending = nil
}

// Remaining returns the number of clips left, including the current one.
func (s *Session) Remaining() int {
	if s.Exhausted() {
		return 0
	}
	return len(s.Queue) - s.Index
}
