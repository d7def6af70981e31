package dimensions

import (
	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
)

// RegisterRoutes registers rating dimension routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))
}
