package handlers

import (
	"net/http"
	"strconv"

	"github.com/capsule-retail/inventory-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard API. Routes are gated with
// RequireAdmin.
type AdminHandler struct {
	dashboard *services.DashboardService
}

func NewAdminHandler(dashboard *services.DashboardService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard}
}

// DashboardStats: GET /api/admin/dashboard-stats
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// ListActivity: GET /api/admin/activity?limit=N
func (h *AdminHandler) ListActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.dashboard.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "activity": entries})
}
