package upload

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	cloudinary := rg.Group("/cloudinary")
	{
		cloudinary.GET("/sign", h.GetSignature)
	}
}
