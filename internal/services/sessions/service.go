package sessions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/ratings"
)

// sessionEntry pairs a session with its own lock. The cursor and the
// pending record are mutable state shared between concurrent requests for
// the same token, so every read or advance happens under entry.mu.
type sessionEntry struct {
	mu      sync.Mutex
	session *Session
}

// ServiceImpl implements the Service interface. Sessions live in memory
// only; abandoning one costs nothing beyond the unsubmitted record.
type ServiceImpl struct {
	ratingService ratings.Service
	clipSource    ClipSource
	maxPerClip    int
	policy        string

	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

// NewService creates a new session service. maxPerClip is the saturation
// cap (0 disables it); policy is one of the queue ordering policies.
func NewService(ratingService ratings.Service, clipSource ClipSource, maxPerClip int, policy string) *ServiceImpl {
	return &ServiceImpl{
		ratingService: ratingService,
		clipSource:    clipSource,
		maxPerClip:    maxPerClip,
		policy:        policy,
		entries:       make(map[string]*sessionEntry),
	}
}

// OpenSession scans the clip directory, builds the rater's queue snapshot
// and registers a new session for it.
func (s *ServiceImpl) OpenSession(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	available, err := s.clipSource.Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning clips: %w", err)
	}

	queue, err := BuildQueue(ctx, available, userID, s.maxPerClip, s.ratingService, s.policy)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		Queue:     queue,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.entries[session.Token] = &sessionEntry{session: session}
	s.mu.Unlock()

	log.Printf("[INFO] Opened session for rater %s: %d clips queued", userID, len(queue))
	return snapshot(session), nil
}

// GetSession returns a point-in-time copy of an open session by token.
func (s *ServiceImpl) GetSession(token string) (*Session, error) {
	entry, err := s.lookup(token)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshot(entry.session), nil
}

// SubmitCurrent validates and stores a rating for the current clip. The
// store write happens under the session lock, so two in-flight submissions
// for the same token serialize instead of double-advancing past a clip.
func (s *ServiceImpl) SubmitCurrent(ctx context.Context, token string, values map[string]any, notRecognized bool) (*Session, error) {
	entry, err := s.lookup(token)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	clip, ok := session.Current()
	if !ok {
		return snapshot(session), ErrSessionExhausted
	}

	rating := &models.Rating{
		UserID:        session.UserID,
		ClipID:        clip.ID,
		Values:        values,
		NotRecognized: notRecognized,
	}

	if err := s.ratingService.SubmitRating(ctx, rating); err != nil {
		if isValidationError(err) {
			// Rejected locally, no state change.
			return snapshot(session), err
		}
		// Storage failure: keep the answers so the rater can retry.
		session.Pending = rating
		return snapshot(session), fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	session.Advance()
	return snapshot(session), nil
}

// SkipCurrent advances past the current clip without storing a record.
func (s *ServiceImpl) SkipCurrent(token string) (*Session, error) {
	entry, err := s.lookup(token)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	if session.Exhausted() {
		return snapshot(session), ErrSessionExhausted
	}
	session.Advance()
	return snapshot(session), nil
}

// CloseSession discards a session.
func (s *ServiceImpl) CloseSession(token string) {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
}

func (s *ServiceImpl) lookup(token string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// snapshot copies the session so callers read a consistent view without
// holding its lock. The queue slice is shared but never mutated after
// OpenSession builds it.
func snapshot(s *Session) *Session {
	c := *s
	return &c
}

func isValidationError(err error) bool {
	return errors.Is(err, ratings.ErrMissingUserID) ||
		errors.Is(err, ratings.ErrMissingClipID) ||
		errors.Is(err, ratings.ErrIncompleteRating) ||
		errors.Is(err, ratings.ErrUnknownDimension) ||
		errors.Is(err, ratings.ErrInvalidValue)
}
