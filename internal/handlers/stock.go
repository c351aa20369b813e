package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
)

// ListStock handles GET /api/stock
func (h *Handlers) ListStock(c *gin.Context) {
	rows, err := h.stock.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": rows})
}

// CreateStock handles POST /api/stock
func (h *Handlers) CreateStock(c *gin.Context) {
	var req clients.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rows, err := h.stock.Create(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stock": rows})
}

// UpdateStock handles PUT /api/stock/:id
func (h *Handlers) UpdateStock(c *gin.Context) {
	var req clients.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rows, err := h.stock.Update(c.Request.Context(), sessionFrom(c), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": rows})
}

// DeleteStock handles DELETE /api/stock/:id
func (h *Handlers) DeleteStock(c *gin.Context) {
	if err := h.stock.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Restock handles POST /api/stock/restock. One call restocks every
// product below its limit and returns the refreshed collection.
func (h *Handlers) Restock(c *gin.Context) {
	rows, err := h.stock.Restock(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": rows})
}
