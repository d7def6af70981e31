package sessions

import "errors"

// Sentinel errors returned by the session service.
var (
	ErrMissingUserID    = errors.New("user id is required")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExhausted = errors.New("no more clips to rate")
	ErrStorageFailure   = errors.New("rating could not be stored")
)
