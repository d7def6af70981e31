package dimensions

import (
	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
)

// Get returns the configured rating dimensions
// @Summary      Get rating dimensions
// @Description  Return the rating dimensions the questionnaire renders, in configuration order
// @Tags         dimensions
// @Produce      json
// @Success      200 {object} types.DimensionsResponse "Configured dimensions"
// @Router       /api/v1/dimensions [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.DimensionsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Dimensions:   deps.Dimensions,
			Count:        len(deps.Dimensions),
		})
	}
}
