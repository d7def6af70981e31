package raters

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
	"github.com/soccerlab/rater-api/internal/identity"
	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/profiles"
)

// DeriveID computes a rater identifier from the identity questionnaire
// @Summary      Derive rater identifier
// @Description  Compute the stable pseudonymous identifier from the identity questionnaire answers. Incomplete answers yield the "unknown" sentinel identifier, not an error.
// @Tags         raters
// @Accept       json
// @Produce      json
// @Param        fields body identity.Fields true "Identity questionnaire answers"
// @Success      200 {object} types.DeriveIDResponse "Derived identifier"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/raters/derive-id [post]
func DeriveID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields identity.Fields
		if !types.BindJSONOrError(c, &fields) {
			return // Error response already sent by utility
		}

		userID := identity.DeriveID(fields)

		types.SendSuccess(c, types.DeriveIDResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			UserID:       userID,
		})
	}
}

// GetRater looks up a rater by identifier
// @Summary      Get rater
// @Description  Report whether a demographic profile exists for the identifier, returning the stored profile when it does
// @Tags         raters
// @Produce      json
// @Param        id path string true "Rater identifier"
// @Success      200 {object} types.RaterResponse "Rater state"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/raters/{id} [get]
func GetRater(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		has, err := deps.ProfileService.HasProfile(c.Request.Context(), userID)
		if err != nil {
			types.SendInternalError(c, "Failed to look up rater")
			return
		}

		response := types.RaterResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			UserID:       userID,
			HasProfile:   has,
		}

		if has {
			if profile := findProfile(c, deps, userID); profile != nil {
				response.Profile = profile
			}
		}

		types.SendSuccess(c, response)
	}
}

// CreateProfile stores the demographic questionnaire for a rater
// @Summary      Save rater profile
// @Description  Store the demographic questionnaire answers under the rater identifier, overwriting any previous submission
// @Tags         raters
// @Accept       json
// @Produce      json
// @Param        profile body types.ProfileRequest true "Questionnaire answers"
// @Success      201 {object} types.RaterResponse "Stored profile"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/raters [post]
func CreateProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ProfileRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		profile := models.Profile{
			UserID:    req.UserID,
			Gender:    req.Gender,
			Age:       req.Age,
			License:   req.License,
			PlayerExp: req.PlayerExp,
			CoachExp:  req.CoachExp,
			WatchExp:  req.WatchExp,
		}

		if err := deps.ProfileService.SaveProfile(c.Request.Context(), &profile); err != nil {
			if errors.Is(err, profiles.ErrMissingUserID) {
				types.SendBadRequest(c, err.Error())
			} else {
				types.SendInternalError(c, "Failed to save profile")
			}
			return
		}

		types.SendCreated(c, types.RaterResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			UserID:       profile.UserID,
			HasProfile:   true,
			Profile:      &profile,
		})
	}
}

// findProfile scans the stored profiles for the identifier. The profile
// directory is small (one file per rater), so a linear scan is fine.
func findProfile(c *gin.Context, deps *types.Dependencies, userID string) *models.Profile {
	stored, _, err := deps.ProfileService.ListProfiles(c.Request.Context())
	if err != nil {
		return nil
	}
	for i := range stored {
		if stored[i].UserID == userID {
			return &stored[i].Profile
		}
	}
	return nil
}
