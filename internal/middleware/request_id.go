package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "repo-mirror/pkg/log"
)

// RequestID tags every request with a delivery id for log correlation.
// GitHub's own delivery GUID is reused when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-GitHub-Delivery")
		if id == "" {
			id = uuid.NewString()
		}

		ctx := pkgLog.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)

		c.Next()
	}
}
