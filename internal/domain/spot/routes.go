package spot

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	spots := rg.Group("/spots")
	{
		spots.GET("", h.GetSpots)
		spots.GET("/countries", h.GetCountries)
		spots.GET("/cities", h.GetCities)
		spots.GET("/count/:userId", h.CountByAuthor)
		spots.GET("/spot/:id", h.GetSpotByID)
		spots.POST("", h.CreateSpot)
		spots.PUT("/spot/:id", h.UpdateSpot)
		spots.DELETE("/:id", h.DeleteSpot)
	}
}
