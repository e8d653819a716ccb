package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/common/errs"
)

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:   http.StatusBadRequest,
	errs.KindDuplicate:    http.StatusBadRequest,
	errs.KindNotFound:     http.StatusNotFound,
	errs.KindForbidden:    http.StatusForbidden,
	errs.KindInvalidToken: http.StatusUnauthorized,
	errs.KindNoWorkspace:  http.StatusNotFound,
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	if kind, ok := errs.KindOf(err); ok {
		if status, ok := kindStatus[kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// RespondError aborts the request with the error body clients expect:
// {"detail": ...} plus "missing_fields" for validation errors. Errors outside
// the taxonomy are logged and reported without internals.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)

	e := errs.As(err)
	if e == nil {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	body := gin.H{"detail": e.Message}
	if e.Kind == errs.KindValidation && len(e.Fields) > 0 {
		body["missing_fields"] = e.Fields
	}
	c.AbortWithStatusJSON(StatusFor(err), body)
}
