package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// ProductRequest is the create/update payload for a catalog entry.
type ProductRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	QuantityProduct int     `json:"quantity_product"`
	CategoriesID    string  `json:"categories_id"`
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListProducts fetches the product collection, with categories and
// discounts embedded where the API has them.
func (c *Backoffice) ListProducts(ctx context.Context, sess *models.Session) ([]models.Product, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var products []models.Product
	if err := c.call(ctx, sess, "product.list", http.MethodGet, "/product", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a catalog entry.
func (c *Backoffice) CreateProduct(ctx context.Context, sess *models.Session, req ProductRequest) (*models.Product, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var product models.Product
	if err := c.call(ctx, sess, "product.create", http.MethodPost, "/product", req, &product, false); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a catalog entry.
func (c *Backoffice) UpdateProduct(ctx context.Context, sess *models.Session, id string, req ProductRequest) (*models.Product, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var product models.Product
	if err := c.call(ctx, sess, "product.update", http.MethodPatch, "/product/"+id, req, &product, false); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a catalog entry.
func (c *Backoffice) DeleteProduct(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "product.delete", http.MethodDelete, "/product/"+id, nil, nil, false)
}

// ListCategories fetches the category collection. The upstream path is
// /kategori; the API predates its own English naming convention.
func (c *Backoffice) ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := c.call(ctx, sess, "category.list", http.MethodGet, "/kategori", nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Backoffice) CreateCategory(ctx context.Context, sess *models.Session, req CategoryRequest) (*models.Category, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var category models.Category
	if err := c.call(ctx, sess, "category.create", http.MethodPost, "/kategori", req, &category, false); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category.
func (c *Backoffice) UpdateCategory(ctx context.Context, sess *models.Session, id string, req CategoryRequest) (*models.Category, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var category models.Category
	if err := c.call(ctx, sess, "category.update", http.MethodPatch, "/kategori/"+id, req, &category, false); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category.
func (c *Backoffice) DeleteCategory(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "category.delete", http.MethodDelete, "/kategori/"+id, nil, nil, false)
}
