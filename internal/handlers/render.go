package handlers

import (
	"errors"
	"net/http"

	"github.com/capsule-retail/inventory-dashboard/internal/middleware"
	"github.com/capsule-retail/inventory-dashboard/internal/services"
	"github.com/capsule-retail/inventory-dashboard/internal/session"
	"github.com/capsule-retail/inventory-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// fail answers {"success": false, "message": msg}.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// respondError maps a service error to a status and a message the caller
// may see. Anything unrecognised is a storage failure: logged in full and
// answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		fail(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrDuplicateUsername):
		fail(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, services.ErrItemNotFound):
		fail(c, http.StatusNotFound, "Item not found")
	default:
		_ = c.Error(err)
		log := logger.Component("handlers")
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("route", c.FullPath()).
			Msg("request failed")
		fail(c, http.StatusInternalServerError, msgInternal)
	}
}

// principal returns the caller put on the context by InjectPrincipal.
// Only call it behind RequireAuth.
func principal(c *gin.Context) session.Principal {
	p, _ := session.FromContext(c.Request.Context())
	return p
}

func homeFor(p session.Principal) string {
	if p.IsAdmin() {
		return "/admin-dashboard"
	}
	return "/dashboard"
}
