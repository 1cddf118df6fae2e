package handlers

import (
	"net/http"

	"github.com/capsule-retail/inventory-dashboard/internal/services"
	"github.com/capsule-retail/inventory-dashboard/internal/stock"

	"github.com/gin-gonic/gin"
)

// StockHandler serves the classified views of the ledger. Each request
// classifies a fresh listing.
type StockHandler struct {
	inventory *services.InventoryService
}

func NewStockHandler(inventory *services.InventoryService) *StockHandler {
	return &StockHandler{inventory: inventory}
}

// Notifications: GET /notifications-data
func (h *StockHandler) Notifications(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock.Notifications(items))
}

// Trends: GET /trends-data
func (h *StockHandler) Trends(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock.Trends(items))
}
