package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// phoneTakenFragment is the phrase the API embeds in its duplicate-phone
// validation message.
const phoneTakenFragment = "has already been taken"

// CustomerService backs the customer list view. Creates and updates are
// RefreshFull; deletes are RefreshLocal.
type CustomerService struct {
	api    clients.API
	logger *logrus.Entry
}

func NewCustomerService(api clients.API, logger *logrus.Entry) *CustomerService {
	return &CustomerService{api: api, logger: logger}
}

// List fetches the customer collection.
func (s *CustomerService) List(ctx context.Context, sess *models.Session) ([]models.Customer, error) {
	return s.api.ListCustomers(ctx, sess)
}

// Create creates a customer and returns the refreshed collection. A
// duplicate phone comes back as ErrPhoneTaken; other validation failures
// pass through unchanged.
func (s *CustomerService) Create(ctx context.Context, sess *models.Session, req clients.CustomerRequest) ([]models.Customer, error) {
	if _, err := s.api.CreateCustomer(ctx, sess, req); err != nil {
		return nil, mapPhoneConflict(err)
	}
	return s.api.ListCustomers(ctx, sess)
}

// Update updates a customer and returns the refreshed collection. Same
// conflict mapping as Create.
func (s *CustomerService) Update(ctx context.Context, sess *models.Session, id string, req clients.CustomerRequest) ([]models.Customer, error) {
	if _, err := s.api.UpdateCustomer(ctx, sess, id, req); err != nil {
		return nil, mapPhoneConflict(err)
	}
	return s.api.ListCustomers(ctx, sess)
}

// Delete deletes a customer. RefreshLocal: the caller drops the row on
// success and keeps it on failure.
func (s *CustomerService) Delete(ctx context.Context, sess *models.Session, id string) error {
	return s.api.DeleteCustomer(ctx, sess, id)
}

// mapPhoneConflict turns the API's duplicate-phone validation error into
// ErrPhoneTaken. Any other error is returned as-is.
func mapPhoneConflict(err error) error {
	var ve *clients.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for _, msg := range ve.Field("phone") {
		if strings.Contains(msg, phoneTakenFragment) {
			return ErrPhoneTaken
		}
	}
	return err
}
