package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserID   = "user_id"
	keyUsername = "username"
	keyRole     = "role"
	keyIssuedAt = "issued_at"
)

// Manager reads and writes the Principal stored in the gin session. The
// store's cookie MaxAge is not enforced server-side by every backend, so the
// manager checks the issue time itself.
type Manager struct {
	store  sessions.Store
	maxAge time.Duration
	now    func() time.Time
}

func NewManager(store sessions.Store, maxAge time.Duration) *Manager {
	return &Manager{store: store, maxAge: maxAge, now: time.Now}
}

// Handler is the gin sessions middleware over the manager's store. It must
// run before anything that calls the manager.
func (m *Manager) Handler() gin.HandlerFunc {
	return sessions.Sessions(CookieName, m.store)
}

// Establish starts a fresh session for p under a new session id. Whatever
// the request carried before is dropped from the store.
func (m *Manager) Establish(c *gin.Context, p Principal) error {
	sess := sessions.Default(c)
	sess.Clear()
	m.rotate(c)
	sess.Set(keyUserID, p.UserID)
	sess.Set(keyUsername, p.Username)
	sess.Set(keyRole, p.Role.String())
	sess.Set(keyIssuedAt, m.now().Unix())
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// rotate deletes the request's stored session and blanks its id, so the
// next save is issued a new one. The expiring cookie goes to a discarded
// writer; the response only carries the new cookie.
func (m *Manager) rotate(c *gin.Context) {
	gs, err := m.store.Get(c.Request, CookieName)
	if err != nil || gs == nil || gs.IsNew || gs.ID == "" || gs.Options == nil {
		return
	}

	live := *gs.Options
	expired := live
	expired.MaxAge = -1
	gs.Options = &expired
	_ = m.store.Save(c.Request, discardWriter{header: http.Header{}}, gs)

	gs.Options = &live
	gs.ID = ""
}

type discardWriter struct {
	header http.Header
}

func (w discardWriter) Header() http.Header         { return w.header }
func (w discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (w discardWriter) WriteHeader(int)             {}

// Current returns the principal of the request's session. Expired or
// malformed sessions are cleared and reported as absent.
func (m *Manager) Current(c *gin.Context) (Principal, bool) {
	sess := sessions.Default(c)

	uid, ok := sess.Get(keyUserID).(uint)
	if !ok || uid == 0 {
		return Principal{}, false
	}

	username, _ := sess.Get(keyUsername).(string)
	roleName, _ := sess.Get(keyRole).(string)
	issued, _ := sess.Get(keyIssuedAt).(int64)

	role, err := models.ParseRole(roleName)
	if err != nil || username == "" || issued == 0 {
		m.Destroy(c)
		return Principal{}, false
	}

	if m.now().Sub(time.Unix(issued, 0)) >= m.maxAge {
		m.Destroy(c)
		return Principal{}, false
	}

	return Principal{UserID: uid, Username: username, Role: role}, true
}

// Destroy clears the session and expires its cookie. It is a no-op apart
// from the cookie header when there is no session.
func (m *Manager) Destroy(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
}
