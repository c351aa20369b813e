package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPhoneTaken is the tailored duplicate-phone conflict. Surfaced to
	// the UI at info level rather than as a hard failure.
	ErrPhoneTaken = errors.New("phone number already registered")

	// ErrNoCustomer: order creation triggered without a customer selected.
	ErrNoCustomer = errors.New("select a customer first")

	// ErrNoOrderID: the API returned an order without a server-assigned id.
	ErrNoOrderID = errors.New("order id missing from create response")

	// ErrOrderNotCreated: item edits or save attempted before the header exists.
	ErrOrderNotCreated = errors.New("order has not been created yet")

	// ErrOrderAlreadyCreated: a second header create on the same draft.
	ErrOrderAlreadyCreated = errors.New("order already created for this draft")

	// ErrDraftFinished: edits on a draft that already saved.
	ErrDraftFinished = errors.New("order draft already saved")

	// ErrNoItems: save attempted with no row above zero quantity.
	ErrNoItems = errors.New("at least one item must have a quantity above zero")

	// ErrRowOutOfRange: a row index that does not exist in the draft.
	ErrRowOutOfRange = errors.New("item row does not exist")
)

// InsufficientStockError blocks a draft save whose requested quantities
// exceed known stock, naming the offending products.
type InsufficientStockError struct {
	Products []string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("requested quantity exceeds stock for: %s", strings.Join(e.Products, ", "))
}
