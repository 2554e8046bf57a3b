package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-service/internal/service"
)

// respondError writes a short human-readable detail string. Internal error
// text never reaches the client.
func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// respondServiceError maps service-level sentinel errors onto status codes.
// Anything unrecognized is a 500 with a generic body.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrConflict):
		respondError(c, http.StatusConflict, service.ErrConflict.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
