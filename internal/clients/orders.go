package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// OrderRequest is the order-header creation payload. Composition always
// sends total_amount 0 and status "pending"; the real total is patched in
// later via UpdateOrderTotal.
type OrderRequest struct {
	CustomerID  string             `json:"customer_id"`
	OrderDate   string             `json:"order_date"`
	TotalAmount float64            `json:"total_amount"`
	Status      models.OrderStatus `json:"status"`
}

// ListOrders fetches the order collection with customers embedded.
func (c *Backoffice) ListOrders(ctx context.Context, sess *models.Session) ([]models.Order, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := c.call(ctx, sess, "order.list", http.MethodGet, "/order", nil, &orders, false); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder creates an order header and returns it with the
// server-assigned id. Unlike the other endpoints, the API wraps this
// response in a data envelope.
func (c *Backoffice) CreateOrder(ctx context.Context, sess *models.Session, req OrderRequest) (*models.Order, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var envelope struct {
		Data models.Order `json:"data"`
	}
	if err := c.call(ctx, sess, "order.create", http.MethodPost, "/order", req, &envelope, false); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// DeleteOrder deletes an order header.
func (c *Backoffice) DeleteOrder(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "order.delete", http.MethodDelete, "/order/"+id, nil, nil, false)
}

type updateTotalRequest struct {
	Total float64 `json:"total"`
}

// UpdateOrderTotal writes the computed total back onto the order header.
func (c *Backoffice) UpdateOrderTotal(ctx context.Context, sess *models.Session, orderID string, total float64) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "order.update_total", http.MethodPatch,
		"/order/"+orderID+"/updateTotal", updateTotalRequest{Total: total}, nil, true)
}

// GetOrderItems fetches the persisted line items of an order, products
// embedded.
func (c *Backoffice) GetOrderItems(ctx context.Context, sess *models.Session, orderID string) ([]models.OrderItem, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var items []models.OrderItem
	if err := c.call(ctx, sess, "order.items", http.MethodGet, "/order-items/"+orderID, nil, &items, false); err != nil {
		return nil, err
	}
	return items, nil
}

type saveItemsRequest struct {
	Items []models.OrderItemInput `json:"items"`
}

// SaveOrderItems persists line items against an order in one batch call.
func (c *Backoffice) SaveOrderItems(ctx context.Context, sess *models.Session, orderID string, items []models.OrderItemInput) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "order.save_items", http.MethodPost,
		"/order-items/"+orderID, saveItemsRequest{Items: items}, nil, true)
}
