package middleware

import (
	"net/http"

	"github.com/capsule-retail/inventory-dashboard/internal/session"

	"github.com/gin-gonic/gin"
)

const msgAdminOnly = "Access denied. Admin privileges required."

// RequireAuth sends callers without a session to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.FromContext(c.Request.Context()); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin lets only admins through. Chain it after RequireAuth so
// anonymous callers are redirected rather than refused.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := session.FromContext(c.Request.Context())
		if !ok || !p.IsAdmin() {
			c.String(http.StatusForbidden, msgAdminOnly)
			c.Abort()
			return
		}
		c.Next()
	}
}
