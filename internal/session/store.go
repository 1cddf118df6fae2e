package session

import (
	"net/http"

	"github.com/capsule-retail/inventory-dashboard/internal/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
)

// CookieName is the name of the session cookie.
const CookieName = "capsule_session"

// NewStore builds the session store. "memory" keeps session data in the
// process and only puts a signed id in the cookie; "cookie" puts the signed
// values themselves in the cookie.
func NewStore(cfg config.SessionConfig) sessions.Store {
	var store sessions.Store
	switch cfg.Store {
	case "cookie":
		store = cookie.NewStore([]byte(cfg.Secret))
	default:
		store = memstore.NewStore([]byte(cfg.Secret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Duration().Seconds()),
		Secure:   cfg.SecureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}
