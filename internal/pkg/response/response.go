package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error writes the API error envelope. Every error response in the service
// goes through here so the shape stays {"message": string} everywhere.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// HandleError translates datastore errors that were not already mapped to a
// sentinel by the caller. "No rows" becomes 404; anything else is logged in
// detail and surfaced as a generic 500.
func HandleError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		Error(c, http.StatusNotFound, "Not found")
		return
	}

	log.Printf(
		"upstream_error method=%s path=%s client_ip=%s error=%q",
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		err.Error(),
	)
	Error(c, http.StatusInternalServerError, "Internal server error")
}
