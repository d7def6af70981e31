package sessions

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/ratings"
	"github.com/soccerlab/rater-api/internal/services/sessions"
)

// Open starts a rating session for a rater
// @Summary      Open rating session
// @Description  Build the rater's clip queue (excluding clips they already rated and clips at the rating cap) and return a session token for working through it
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body types.OpenSessionRequest true "Rater identifier"
// @Success      201 {object} types.SessionResponse "Opened session"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/sessions [post]
func Open(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.OpenSessionRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		session, err := deps.SessionService.OpenSession(c.Request.Context(), req.UserID)
		if err != nil {
			if errors.Is(err, sessions.ErrMissingUserID) {
				types.SendBadRequest(c, err.Error())
			} else {
				types.SendInternalError(c, "Failed to open session")
			}
			return
		}

		types.SendCreated(c, types.SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Token:        session.Token,
			UserID:       session.UserID,
			QueueLength:  len(session.Queue),
			CreatedAt:    session.CreatedAt,
		})
	}
}

// Current returns the clip at the session's cursor
// @Summary      Get current clip
// @Description  Return the clip the session cursor points at, with its event metadata and video path. An exhausted queue is reported in the body, not as an error.
// @Tags         sessions
// @Produce      json
// @Param        token path string true "Session token"
// @Success      200 {object} types.CurrentClipResponse "Current queue position"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{token}/current [get]
func Current(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.SessionService.GetSession(c.Param("token"))
		if err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		types.SendSuccess(c, currentClipResponse(c, deps, session))
	}
}

// SubmitRating stores a rating for the session's current clip
// @Summary      Submit rating
// @Description  Validate and store the rating for the current clip, advancing the cursor on success. Validation failures reject the submission with no state change; storage failures keep the answers pending so the same submission can be retried.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        token path string true "Session token"
// @Param        rating body types.SubmitRatingRequest true "Rating values keyed by dimension name"
// @Success      200 {object} types.CurrentClipResponse "Advanced queue position"
// @Failure      400 {object} types.ErrorResponse "Incomplete or out-of-bounds rating"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Queue already exhausted"
// @Failure      500 {object} types.ErrorResponse "Rating could not be stored"
// @Router       /api/v1/sessions/{token}/ratings [post]
func SubmitRating(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SubmitRatingRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		session, err := deps.SessionService.SubmitCurrent(c.Request.Context(), c.Param("token"), req.Values, req.NotRecognized)
		if err != nil {
			switch {
			case errors.Is(err, sessions.ErrSessionNotFound):
				types.SendNotFound(c, "Session not found")
			case errors.Is(err, sessions.ErrSessionExhausted):
				types.SendConflict(c, err.Error())
			case errors.Is(err, sessions.ErrStorageFailure):
				types.SendInternalError(c, "Rating could not be stored, retry the submission")
			case isValidationError(err):
				types.SendBadRequest(c, err.Error())
			default:
				types.SendInternalError(c, "Failed to submit rating")
			}
			return
		}

		types.SendSuccess(c, currentClipResponse(c, deps, session))
	}
}

// Skip advances past the current clip without storing a rating
// @Summary      Skip current clip
// @Description  Move the session cursor past the current clip without storing anything
// @Tags         sessions
// @Produce      json
// @Param        token path string true "Session token"
// @Success      200 {object} types.CurrentClipResponse "Advanced queue position"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Queue already exhausted"
// @Router       /api/v1/sessions/{token}/skip [post]
func Skip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.SessionService.SkipCurrent(c.Param("token"))
		if err != nil {
			switch {
			case errors.Is(err, sessions.ErrSessionNotFound):
				types.SendNotFound(c, "Session not found")
			case errors.Is(err, sessions.ErrSessionExhausted):
				types.SendConflict(c, err.Error())
			default:
				types.SendInternalError(c, "Failed to skip clip")
			}
			return
		}

		types.SendSuccess(c, currentClipResponse(c, deps, session))
	}
}

// Close discards a session
// @Summary      Close session
// @Description  Drop the in-memory session. Stored ratings stay in place.
// @Tags         sessions
// @Produce      json
// @Param        token path string true "Session token"
// @Success      200 {object} types.BaseResponse "Session closed"
// @Router       /api/v1/sessions/{token} [delete]
func Close(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.SessionService.CloseSession(c.Param("token"))
		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Session closed",
		})
	}
}

// currentClipResponse builds the queue-position payload for a session,
// resolving event metadata and the video path for the current clip.
func currentClipResponse(c *gin.Context, deps *types.Dependencies, session *sessions.Session) types.CurrentClipResponse {
	response := types.CurrentClipResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Position:     session.Index,
		Remaining:    session.Remaining(),
		Exhausted:    session.Exhausted(),
	}

	clip, ok := session.Current()
	if !ok {
		return response
	}

	response.ClipID = clip.ID
	response.Filename = clip.Filename
	if deps.Scanner != nil {
		response.VideoPath = deps.Scanner.VideoPath(clip)
	}

	event, err := deps.MetadataService.EventForClip(c.Request.Context(), clip.ID)
	if err != nil || event == nil {
		event = models.PlaceholderEvent(clip.ID)
	}
	response.Event = &types.ClipEvent{
		Team:         event.Team,
		Player:       event.Player,
		JerseyNumber: event.JerseyNumber,
		Type:         event.Type,
		BodyPart:     event.BodyPart,
		StartX:       event.StartX,
		StartY:       event.StartY,
		EndX:         event.EndX,
		EndY:         event.EndY,
	}

	return response
}

// isValidationError reports whether the submission failed the completeness
// or bounds checks, as opposed to infrastructure trouble.
func isValidationError(err error) bool {
	return errors.Is(err, ratings.ErrMissingUserID) ||
		errors.Is(err, ratings.ErrMissingClipID) ||
		errors.Is(err, ratings.ErrIncompleteRating) ||
		errors.Is(err, ratings.ErrUnknownDimension) ||
		errors.Is(err, ratings.ErrInvalidValue)
}
