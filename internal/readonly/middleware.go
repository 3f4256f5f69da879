// Package readonly turns a running instance into a read-only mirror.
package readonly

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyReadOnly stores the read-only flag for handlers such as /health.
const ContextKeyReadOnly = "read_only"

// Middleware blocks write operations when read-only mode is on.
// GET, HEAD and OPTIONS are always allowed.
type Middleware struct {
	enabled bool
}

func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that rejects writes with 403.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyReadOnly, m.enabled)
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "This action is disabled in read-only mode",
			"read_only": true,
		})
	}
}
