package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListOrders handles GET /api/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// OrderItems handles GET /api/orders/:id/items
func (h *Handlers) OrderItems(c *gin.Context) {
	detail, err := h.orders.Items(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteOrder handles DELETE /api/orders/:id
func (h *Handlers) DeleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Dashboard handles GET /api/dashboard
func (h *Handlers) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
