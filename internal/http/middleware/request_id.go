package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helloteam.app/api/common/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or mints a request id and tags the logging context with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: &requestID,
			Component: "helloteam.api",
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
