package favorite

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favourites := rg.Group("/favourites")
	{
		// /check and /count must register before the catch-all :userId
		favourites.GET("/check", h.CheckFavorite)
		favourites.GET("/count/:spotId", h.GetFavoriteCountForSpot)
		favourites.GET("/:userId", h.GetFavoritesForUser)
		favourites.POST("", h.AddFavorite)
		favourites.DELETE("", h.RemoveFavorite)
	}
}
