package response

import (
	"errors"
	"net/http"

	xerrors "vos-erp-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends a success response: {"ok":true, ...fields}.
func OK(c *gin.Context, status int, fields gin.H) {
	if status == 0 {
		status = http.StatusOK
	}

	body := gin.H{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error sends a standardized error response: {"error": message}.
func Error(c *gin.Context, status int, message string) {
	c.Abort()
	c.JSON(status, gin.H{"error": message})
}

// FromError maps application sentinel errors to their HTTP status. Unknown
// errors become a 500 without echoing internals to the client.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrForbidden):
		Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, xerrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, xerrors.ErrSessionMismatch):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, xerrors.ErrRateLimited):
		Error(c, http.StatusTooManyRequests, err.Error())
	default:
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}
