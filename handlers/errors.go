package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sampreeth-sv/smart-attendance-new/models"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

// writeError maps a registry error to its HTTP shape. Unknown errors are
// reported as 500 rather than guessed at.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sessions.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, sessions.ErrInvalidInput), errors.Is(err, sessions.ErrMalformedToken):
		status = http.StatusBadRequest
	case errors.Is(err, sessions.ErrInvalidState), errors.Is(err, sessions.ErrDuplicateCheckIn):
		status = http.StatusConflict
	case errors.Is(err, sessions.ErrSessionClosed):
		status = http.StatusGone
	case errors.Is(err, sessions.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, sessions.ErrServiceUnavailable):
		status = http.StatusServiceUnavailable
	}

	code := sessions.Code(err)
	if code == "" {
		code = "internal_error"
	}
	c.JSON(status, models.ErrorResponse{Error: code, Message: err.Error()})
}
