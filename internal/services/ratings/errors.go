package ratings

import "errors"

// Sentinel errors returned by the rating service. Handlers use errors.Is
// to distinguish validation failures (rejected locally, nothing stored)
// from storage failures (retryable, the pending answer is kept in memory).
var (
	ErrMissingUserID    = errors.New("user id is required")
	ErrMissingClipID    = errors.New("clip id is required")
	ErrIncompleteRating = errors.New("rating is incomplete")
	ErrUnknownDimension = errors.New("unknown rating dimension")
	ErrInvalidValue     = errors.New("invalid rating value")
)
