package middleware

import (
	"github.com/capsule-retail/inventory-dashboard/internal/session"

	"github.com/gin-gonic/gin"
)

// InjectPrincipal resolves the session once per request and puts the
// principal, if any, on the request context. Must run after the sessions
// middleware.
func InjectPrincipal(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := mgr.Current(c); ok {
			c.Request = c.Request.WithContext(session.WithPrincipal(c.Request.Context(), p))
		}
		c.Next()
	}
}
