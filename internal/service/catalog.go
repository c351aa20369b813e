package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// ProductView is a catalog entry decorated for display: the effective
// price after any active discount, its formatted string, and the category
// name pulled out of the embedded record.
type ProductView struct {
	models.Product
	EffectivePrice float64 `json:"effective_price"`
	PriceDisplay   string  `json:"price_display"`
	CategoryName   string  `json:"category_name"`
}

// CatalogService backs the product and category list views plus the
// category selector on the product form. Creates and updates are
// RefreshFull; deletes are RefreshLocal.
type CatalogService struct {
	api    clients.API
	logger *logrus.Entry
	now    func() time.Time
}

func NewCatalogService(api clients.API, logger *logrus.Entry) *CatalogService {
	return &CatalogService{api: api, logger: logger, now: time.Now}
}

// ListProducts fetches the product collection decorated for display.
func (s *CatalogService) ListProducts(ctx context.Context, sess *models.Session) ([]ProductView, error) {
	products, err := s.api.ListProducts(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.decorate(products), nil
}

// CreateProduct creates a catalog entry and returns the refreshed,
// decorated collection.
func (s *CatalogService) CreateProduct(ctx context.Context, sess *models.Session, req clients.ProductRequest) ([]ProductView, error) {
	if _, err := s.api.CreateProduct(ctx, sess, req); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, sess)
}

// UpdateProduct updates a catalog entry and returns the refreshed,
// decorated collection.
func (s *CatalogService) UpdateProduct(ctx context.Context, sess *models.Session, id string, req clients.ProductRequest) ([]ProductView, error) {
	if _, err := s.api.UpdateProduct(ctx, sess, id, req); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, sess)
}

// DeleteProduct deletes a catalog entry. RefreshLocal.
func (s *CatalogService) DeleteProduct(ctx context.Context, sess *models.Session, id string) error {
	return s.api.DeleteProduct(ctx, sess, id)
}

// ListCategories fetches the category collection. Also serves as the
// reference data for the product form's category selector.
func (s *CatalogService) ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	return s.api.ListCategories(ctx, sess)
}

// CreateCategory creates a category and returns the refreshed collection.
func (s *CatalogService) CreateCategory(ctx context.Context, sess *models.Session, req clients.CategoryRequest) ([]models.Category, error) {
	if _, err := s.api.CreateCategory(ctx, sess, req); err != nil {
		return nil, err
	}
	return s.api.ListCategories(ctx, sess)
}

// UpdateCategory updates a category and returns the refreshed collection.
func (s *CatalogService) UpdateCategory(ctx context.Context, sess *models.Session, id string, req clients.CategoryRequest) ([]models.Category, error) {
	if _, err := s.api.UpdateCategory(ctx, sess, id, req); err != nil {
		return nil, err
	}
	return s.api.ListCategories(ctx, sess)
}

// DeleteCategory deletes a category. RefreshLocal.
func (s *CatalogService) DeleteCategory(ctx context.Context, sess *models.Session, id string) error {
	return s.api.DeleteCategory(ctx, sess, id)
}

func (s *CatalogService) decorate(products []models.Product) []ProductView {
	now := s.now()
	views := make([]ProductView, len(products))
	for i, p := range products {
		effective := EffectivePrice(p, now)
		view := ProductView{
			Product:        p,
			EffectivePrice: effective,
			PriceDisplay:   FormatRupiah(effective),
		}
		if p.Category != nil {
			view.CategoryName = p.Category.Name
		}
		views[i] = view
	}
	return views
}
