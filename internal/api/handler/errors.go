package handler

import (
	"errors"
	"net/http"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses with concise,
// toast-friendly messages. Raw dependency errors are logged server-side
// and never shown to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to perform this action"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "this survey has already been completed"})
	default:
		logger.Errorf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "service temporarily unavailable"})
	}
}
