package raters

import (
	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
)

// RegisterRoutes registers rater identity and profile routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/derive-id", DeriveID(deps))
	router.GET("/:id", GetRater(deps))
	router.POST("", CreateProfile(deps))
}
