package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// CustomerRequest is the create/update payload for a customer.
type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// ListCustomers fetches the full customer collection.
func (c *Backoffice) ListCustomers(ctx context.Context, sess *models.Session) ([]models.Customer, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var customers []models.Customer
	if err := c.call(ctx, sess, "customer.list", http.MethodGet, "/customer", nil, &customers, false); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer creates a customer. The API validates phone uniqueness;
// conflicts come back as a *ValidationError on the phone field.
func (c *Backoffice) CreateCustomer(ctx context.Context, sess *models.Session, req CustomerRequest) (*models.Customer, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := c.call(ctx, sess, "customer.create", http.MethodPost, "/customer", req, &customer, true); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer updates a customer. Same structured error contract as
// CreateCustomer.
func (c *Backoffice) UpdateCustomer(ctx context.Context, sess *models.Session, id string, req CustomerRequest) (*models.Customer, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := c.call(ctx, sess, "customer.update", http.MethodPatch, "/customer/"+id, req, &customer, true); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer deletes a customer.
func (c *Backoffice) DeleteCustomer(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "customer.delete", http.MethodDelete, "/customer/"+id, nil, nil, false)
}
