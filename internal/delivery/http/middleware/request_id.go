package middleware

import (
	"talent-sift/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's X-Request-ID when it is a UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
