package httpserver

import (
	"errors"
	"net/http"

	"vibe-commerce/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy to the uniform failure envelope.
// short is the caller-facing summary; the error itself becomes the detail.
func respondError(c *gin.Context, err error, short string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   short,
		"message": err.Error(),
	})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}
