package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
)

// RegisterRoutes registers rating session routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Open(deps))
	router.GET("/:token/current", Current(deps))
	router.POST("/:token/ratings", SubmitRating(deps))
	router.POST("/:token/skip", Skip(deps))
	router.DELETE("/:token", Close(deps))
}
