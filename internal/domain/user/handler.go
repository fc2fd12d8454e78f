package user

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"spotshot/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetUserByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "User id is required")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			log.Printf("user_delete_failed user_id=%s stage=%s error=%q", id, stageErr.Stage, stageErr.Err)
			response.Error(c, http.StatusInternalServerError,
				fmt.Sprintf("Failed to delete user at stage %q; earlier stages are not rolled back", stageErr.Stage))
			return
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "id": id})
}
