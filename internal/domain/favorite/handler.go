package favorite

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spotshot/internal/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type favoriteRequest struct {
	UserID string `json:"userId"`
	SpotID string `json:"spotId"`
}

func (h *Handler) GetFavoritesForUser(c *gin.Context) {
	spots, err := h.repo.ListSpotsForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, spots)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.SpotID == "" {
		response.Error(c, http.StatusBadRequest, "Missing userId or spotId")
		return
	}

	if err := h.repo.Add(c.Request.Context(), req.UserID, req.SpotID); err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Spot added to favorites"})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.SpotID == "" {
		response.Error(c, http.StatusBadRequest, "Missing userId or spotId")
		return
	}

	if err := h.repo.Remove(c.Request.Context(), req.UserID, req.SpotID); err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Spot removed from favorites"})
}

func (h *Handler) GetFavoriteCountForSpot(c *gin.Context) {
	count, err := h.repo.CountForSpot(c.Request.Context(), c.Param("spotId"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CheckFavorite reports whether the user favorited the spot. A missing row
// is favorited=false, not an error.
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID := c.Query("userId")
	spotID := c.Query("spotId")
	if userID == "" || spotID == "" {
		response.Error(c, http.StatusBadRequest, "Missing userId or spotId")
		return
	}

	favorited, err := h.repo.Exists(c.Request.Context(), userID, spotID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}
