package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/id"
	"helloteam.app/api/internal/http/middleware"
)

// bindJSON decodes the body into req. An empty body decodes to the zero value
// so the service layer reports the missing fields by name.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
		middleware.RespondError(c, errs.Validation("invalid request body: "+err.Error()))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		middleware.RespondError(c, errs.NotFound("not found"))
		return 0, false
	}
	return v, true
}

func queryID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := id.Parse(raw)
	if err != nil {
		middleware.RespondError(c, errs.Validation("invalid "+name, name))
		return nil, false
	}
	return &v, true
}

// queryInt32 reads a non-negative 32-bit query value; out of range is a 400.
func queryInt32(c *gin.Context, name string, def int32) (int32, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		middleware.RespondError(c, errs.Validation("invalid "+name, name))
		return 0, false
	}
	return int32(v), true
}

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
