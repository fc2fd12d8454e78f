package moderation

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	mod := rg.Group("/moderation", guards...)
	{
		mod.GET("/pending", h.GetPendingSpots)
		mod.PUT("/accept/:id", h.AcceptSpot)
		mod.DELETE("/reject/:id", h.RejectSpot)
		mod.POST("/report", h.ReportSpot)

		// both report routes must share the :reportId name or gin's tree
		// rejects them
		mod.GET("/reports", h.GetReports)
		mod.DELETE("/reports/:reportId", h.DismissReport)
		mod.DELETE("/reports/:reportId/spot/:spotId", h.DeleteReportedSpot)
	}
}
