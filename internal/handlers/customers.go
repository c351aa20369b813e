package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
)

// ListCustomers handles GET /api/customers
func (h *Handlers) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// CreateCustomer handles POST /api/customers. The response carries the
// refreshed collection so the list view replaces its rows wholesale.
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var req clients.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customers, err := h.customers.Create(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customers": customers})
}

// UpdateCustomer handles PUT /api/customers/:id
func (h *Handlers) UpdateCustomer(c *gin.Context) {
	var req clients.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customers, err := h.customers.Update(c.Request.Context(), sessionFrom(c), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// DeleteCustomer handles DELETE /api/customers/:id. No collection in the
// response; the caller drops the row locally.
func (h *Handlers) DeleteCustomer(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
