package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OpenDraft handles POST /api/order-drafts: start the order-composition
// workflow with fresh reference data.
func (h *Handlers) OpenDraft(c *gin.Context) {
	draft, err := h.composer.Open(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft handles GET /api/order-drafts/:id
func (h *Handlers) GetDraft(c *gin.Context) {
	draft, err := h.composer.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type draftCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// SetDraftCustomer handles PUT /api/order-drafts/:id/customer
func (h *Handlers) SetDraftCustomer(c *gin.Context) {
	var req draftCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	draft, err := h.composer.SetCustomer(c.Request.Context(), c.Param("id"), req.CustomerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type draftDateRequest struct {
	OrderDate string `json:"order_date" binding:"required"`
}

// SetDraftDate handles PUT /api/order-drafts/:id/date
func (h *Handlers) SetDraftDate(c *gin.Context) {
	var req draftDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_date is required"})
		return
	}

	draft, err := h.composer.SetDate(c.Request.Context(), c.Param("id"), req.OrderDate)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CreateDraftOrder handles POST /api/order-drafts/:id/order: persist the
// order header upstream and unlock item editing.
func (h *Handlers) CreateDraftOrder(c *gin.Context) {
	draft, err := h.composer.CreateOrder(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// AddDraftRow handles POST /api/order-drafts/:id/rows
func (h *Handlers) AddDraftRow(c *gin.Context) {
	draft, err := h.composer.AddRow(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type draftRowRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// UpdateDraftRow handles PUT /api/order-drafts/:id/rows/:index: select a
// product, set a quantity, or both.
func (h *Handlers) UpdateDraftRow(c *gin.Context) {
	index, ok := rowIndex(c)
	if !ok {
		return
	}

	var req draftRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	draftID := c.Param("id")

	if req.ProductID != "" {
		if _, err := h.composer.SelectProduct(ctx, draftID, index, req.ProductID); err != nil {
			handleError(c, err)
			return
		}
	}
	if req.Quantity != nil {
		if _, err := h.composer.SetQuantity(ctx, draftID, index, *req.Quantity); err != nil {
			handleError(c, err)
			return
		}
	}

	draft, err := h.composer.Get(ctx, draftID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveDraftRow handles DELETE /api/order-drafts/:id/rows/:index
func (h *Handlers) RemoveDraftRow(c *gin.Context) {
	index, ok := rowIndex(c)
	if !ok {
		return
	}

	draft, err := h.composer.RemoveRow(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveDraft handles POST /api/order-drafts/:id/save: run the save gate,
// persist items and total, and return the placeholder order row.
func (h *Handlers) SaveDraft(c *gin.Context) {
	order, err := h.composer.Save(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func rowIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row index"})
		return 0, false
	}
	return index, true
}
