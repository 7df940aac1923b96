package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"katechon/internal/commands"
)

// statusForError picks the HTTP status for a failed invocation. The body
// always carries the error message for display.
func statusForError(err error) int {
	var unknown *commands.UnknownCommandError
	var badArgs *commands.ArgumentError
	switch {
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &badArgs):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// POST /invoke/:command
func InvokeHandler(registry *commands.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("command")
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}

		result, err := registry.Invoke(c.Request.Context(), name, body)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": result})
	}
}
