package export

import (
	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
)

// RegisterRoutes registers export routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Run(deps))
}
