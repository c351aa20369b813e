package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

func TestCreateCustomerReturnsRefreshedList(t *testing.T) {
	ctx := context.Background()
	mock := clients.NewMockBackoffice()
	mock.Customers = []models.Customer{{ID: "cus_1", Name: "Budi"}}
	svc := NewCustomerService(mock, testLogger())

	customers, err := svc.Create(ctx, testSession(), clients.CustomerRequest{
		Name: "Siti", Phone: "0812",
	})
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Siti", customers[1].Name)
}

func TestCreateCustomerPhoneConflict(t *testing.T) {
	ctx := context.Background()
	mock := clients.NewMockBackoffice()
	mock.FailWith("customer.create", &clients.ValidationError{
		Status: 422,
		FieldErrors: map[string][]string{
			"phone": {"The phone has already been taken."},
		},
	})
	svc := NewCustomerService(mock, testLogger())

	_, err := svc.Create(ctx, testSession(), clients.CustomerRequest{Phone: "0811"})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestUpdateCustomerPhoneConflict(t *testing.T) {
	ctx := context.Background()
	mock := clients.NewMockBackoffice()
	mock.FailWith("customer.update", &clients.ValidationError{
		Status: 422,
		FieldErrors: map[string][]string{
			"phone": {"The phone has already been taken."},
		},
	})
	svc := NewCustomerService(mock, testLogger())

	_, err := svc.Update(ctx, testSession(), "cus_1", clients.CustomerRequest{Phone: "0811"})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestOtherValidationErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	mock := clients.NewMockBackoffice()
	seeded := &clients.ValidationError{
		Status: 422,
		FieldErrors: map[string][]string{
			"email": {"The email must be a valid email address."},
		},
	}
	mock.FailWith("customer.create", seeded)
	svc := NewCustomerService(mock, testLogger())

	_, err := svc.Create(ctx, testSession(), clients.CustomerRequest{Email: "nope"})
	var ve *clients.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, seeded.FieldErrors, ve.FieldErrors)
}

func TestCustomerCallsRequireSession(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(clients.NewMockBackoffice(), testLogger())

	_, err := svc.List(ctx, nil)
	assert.ErrorIs(t, err, clients.ErrMissingToken)
}
