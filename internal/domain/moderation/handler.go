package moderation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spotshot/internal/domain/spot"
	"spotshot/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetPendingSpots(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			limit = val
		}
	}

	f := spot.Filters{
		Country: c.Query("country"),
		City:    c.Query("city"),
	}

	pending, err := h.service.ListPending(c.Request.Context(), f, limit)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

func (h *Handler) AcceptSpot(c *gin.Context) {
	accepted, err := h.service.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, spot.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Spot not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "spot": accepted})
}

func (h *Handler) RejectSpot(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Reject(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

type reportRequest struct {
	SpotID     string `json:"spotId"`
	ReporterID string `json:"reporterId"`
	Reason     string `json:"reason"`
}

func (h *Handler) ReportSpot(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SpotID == "" || req.ReporterID == "" || req.Reason == "" {
		response.Error(c, http.StatusBadRequest, "Missing spotId, reporterId or reason")
		return
	}

	reportID, err := h.service.Report(c.Request.Context(), req.SpotID, req.ReporterID, req.Reason)
	if err != nil {
		if errors.Is(err, spot.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Spot not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reportId": reportID})
}

func (h *Handler) GetReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) DismissReport(c *gin.Context) {
	id := c.Param("reportId")
	if err := h.service.DismissReport(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrReportNotFound) {
			response.Error(c, http.StatusNotFound, "Report not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *Handler) DeleteReportedSpot(c *gin.Context) {
	reportID := c.Param("reportId")
	spotID := c.Param("spotId")

	if err := h.service.DeleteReportedSpot(c.Request.Context(), reportID, spotID); err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			response.Error(c, http.StatusNotFound, "Report not found")
		case errors.Is(err, spot.ErrNotFound):
			// the report is already gone at this point; say so
			response.Error(c, http.StatusNotFound, "Report deleted, but spot not found")
		default:
			response.HandleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reportId": reportID, "spotId": spotID})
}
