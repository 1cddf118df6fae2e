package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/capsule-retail/inventory-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventory *services.InventoryService
}

func NewInventoryHandler(inventory *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type addItemRequest struct {
	Name     string      `json:"name" form:"name" binding:"required,max=255"`
	Quantity json.Number `json:"quantity" form:"quantity" binding:"required"`
	Price    json.Number `json:"price" form:"price"`
	Category string      `json:"category" form:"category" binding:"max=100"`
	Supplier string      `json:"supplier" form:"supplier" binding:"max=255"`
}

// Add: POST /inventory
func (h *InventoryHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	qty, err := parseQuantity(req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := h.inventory.Add(c.Request.Context(), principal(c), services.InventoryInput{
		Name:     req.Name,
		Quantity: qty,
		Price:    price,
		Category: req.Category,
		Supplier: req.Supplier,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// List: GET /inventory-data
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete: DELETE /inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.inventory.Delete(c.Request.Context(), principal(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
