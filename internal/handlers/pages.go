package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/session"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static HTML pages under <webDir>/html.
type PageHandler struct {
	webDir string
}

func NewPageHandler(webDir string) *PageHandler {
	return &PageHandler{webDir: webDir}
}

func (h *PageHandler) file(c *gin.Context, name string) {
	path := filepath.Join(h.webDir, "html", name+".html")
	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "page not found")
		return
	}
	c.File(path)
}

// Index sends signed-in users to their home page.
func (h *PageHandler) Index(c *gin.Context) {
	if p, ok := session.FromContext(c.Request.Context()); ok {
		c.Redirect(http.StatusFound, homeFor(p))
		return
	}
	h.file(c, "index")
}

// Guest serves a page meant for signed-out visitors, such as login.
func (h *PageHandler) Guest(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.FromContext(c.Request.Context()); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		h.file(c, name)
	}
}

// Page serves a page as is. Gate it with middleware where needed.
func (h *PageHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.file(c, name)
	}
}

type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// Health: GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"uptime":    time.Since(h.started).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
