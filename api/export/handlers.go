package export

import (
	"github.com/gin-gonic/gin"
	"github.com/soccerlab/rater-api/api/types"
)

// Run triggers a data export
// @Summary      Run data export
// @Description  Flatten every stored rating and profile into CSV tables and write the statistics report to the output directory
// @Tags         export
// @Produce      json
// @Success      200 {object} types.ExportResponse "Export summary"
// @Failure      500 {object} types.ErrorResponse "Export failed"
// @Router       /api/v1/export [post]
func Run(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := deps.ExportService.Run(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Export failed: "+err.Error())
			return
		}

		types.SendSuccess(c, types.ExportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Export complete"},
			Summary:      summary,
		})
	}
}
