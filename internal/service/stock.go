package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/events"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// StockView is a stock record decorated with the derived out-of-stock
// label and a formatted unit price.
type StockView struct {
	models.Stock
	OutOfStock   bool   `json:"out_of_stock"`
	PriceDisplay string `json:"price_display"`
}

// StockService backs the stock list view. Creates and updates are
// RefreshFull; deletes are RefreshLocal; Restock is RefreshFull because it
// mutates every product.
type StockService struct {
	api       clients.API
	publisher events.Publisher
	logger    *logrus.Entry
}

func NewStockService(api clients.API, publisher events.Publisher, logger *logrus.Entry) *StockService {
	return &StockService{api: api, publisher: publisher, logger: logger}
}

// List fetches the stock collection decorated for display.
func (s *StockService) List(ctx context.Context, sess *models.Session) ([]StockView, error) {
	rows, err := s.api.ListStock(ctx, sess)
	if err != nil {
		return nil, err
	}
	return decorateStock(rows), nil
}

// Create creates a stock record and returns the refreshed collection.
func (s *StockService) Create(ctx context.Context, sess *models.Session, req clients.StockRequest) ([]StockView, error) {
	if _, err := s.api.CreateStock(ctx, sess, req); err != nil {
		return nil, err
	}
	return s.List(ctx, sess)
}

// Update updates a stock record and returns the refreshed collection.
func (s *StockService) Update(ctx context.Context, sess *models.Session, id string, req clients.StockRequest) ([]StockView, error) {
	if _, err := s.api.UpdateStock(ctx, sess, id, req); err != nil {
		return nil, err
	}
	return s.List(ctx, sess)
}

// Delete deletes a stock record. RefreshLocal.
func (s *StockService) Delete(ctx context.Context, sess *models.Session, id string) error {
	return s.api.DeleteStock(ctx, sess, id)
}

// Restock invokes the upstream restock-all endpoint and returns the
// refreshed collection. The action is triggered from a single row in the
// UI but restocks every product; that is the upstream contract as it
// stands.
func (s *StockService) Restock(ctx context.Context, sess *models.Session) ([]StockView, error) {
	if err := s.api.RestockAll(ctx, sess); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishStockRestocked(ctx, sess.User.Username); err != nil {
		// Log but don't fail; the restock already happened.
		s.logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Failed to publish restock event")
	}

	return s.List(ctx, sess)
}

func decorateStock(rows []models.Stock) []StockView {
	views := make([]StockView, len(rows))
	for i, row := range rows {
		view := StockView{
			Stock:      row,
			OutOfStock: row.OutOfStock(),
		}
		if row.Product != nil {
			view.PriceDisplay = FormatRupiah(row.Product.Price)
		}
		views[i] = view
	}
	return views
}
