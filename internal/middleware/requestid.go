package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// RequestIDHeader is the header a caller may set to propagate its own
// correlation id; the middleware generates one when absent.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin.Context key the generated/propagated id is
// stored under for handlers and logging to retrieve.
const RequestIDKey = "request_id"

// RequestID assigns a UUIDv4 correlation id to every request that
// doesn't already carry one, mirroring it back on the response header so
// a caller can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			generated, err := uuid.NewV4()
			if err == nil {
				id = generated.String()
			}
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
