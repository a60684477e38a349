package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestContext tags every request with an id and stores a request-scoped
// logger under "logger" for handlers to pick up.
func RequestContext(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Set("logger", base.With(zap.String("request_id", id)))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
