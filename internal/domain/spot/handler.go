package spot

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spotshot/internal/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type createSpotRequest struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PhotoTips   string  `json:"photo_tips"`
	AuthorID    string  `json:"author_id"`
}

func (h *Handler) CreateSpot(c *gin.Context) {
	var req createSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Country == "" || req.Image == "" || req.AuthorID == "" {
		response.Error(c, http.StatusBadRequest, "Missing required fields: name, country, image, author_id")
		return
	}

	// Submissions always enter moderation unaccepted, whatever the client sent.
	s := &Spot{
		ID:          uuid.NewString(),
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		Image:       req.Image,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PhotoTips:   req.PhotoTips,
		AuthorID:    req.AuthorID,
		Accepted:    false,
	}

	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *Handler) GetSpots(c *gin.Context) {
	f := Filters{
		Country: c.Query("country"),
		City:    c.Query("city"),
	}

	spots, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, spots)
}

func (h *Handler) GetSpotByID(c *gin.Context) {
	s, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Spot not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *Handler) UpdateSpot(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s, err := h.repo.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Spot not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *Handler) DeleteSpot(c *gin.Context) {
	s, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Spot not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *Handler) GetCountries(c *gin.Context) {
	countries, err := h.repo.Countries(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.repo.Cities(c.Request.Context(), c.Query("country"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (h *Handler) CountByAuthor(c *gin.Context) {
	count, err := h.repo.CountByAuthor(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
