package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// StockRequest is the create/update payload for a reorder-threshold record.
type StockRequest struct {
	ProductID string `json:"product_id"`
	Limit     int    `json:"limit"`
}

// ListStock fetches the stock collection with product snapshots embedded.
func (c *Backoffice) ListStock(ctx context.Context, sess *models.Session) ([]models.Stock, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var rows []models.Stock
	if err := c.call(ctx, sess, "stock.list", http.MethodGet, "/stock", nil, &rows, false); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateStock creates a stock record.
func (c *Backoffice) CreateStock(ctx context.Context, sess *models.Session, req StockRequest) (*models.Stock, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var row models.Stock
	if err := c.call(ctx, sess, "stock.create", http.MethodPost, "/stock", req, &row, false); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStock updates a stock record.
func (c *Backoffice) UpdateStock(ctx context.Context, sess *models.Session, id string, req StockRequest) (*models.Stock, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var row models.Stock
	if err := c.call(ctx, sess, "stock.update", http.MethodPatch, "/stock/"+id, req, &row, false); err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteStock deletes a stock record.
func (c *Backoffice) DeleteStock(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "stock.delete", http.MethodDelete, "/stock/"+id, nil, nil, false)
}

// RestockAll resets every product's quantity from its stock source. The
// endpoint is not scoped to a single record even though the UI triggers it
// from one row.
func (c *Backoffice) RestockAll(ctx context.Context, sess *models.Session) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "stock.restock_all", http.MethodPost, "/stock/restock-all", nil, nil, false)
}
