package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/events"
	"github.com/tokokita/tokokita-admin-service/internal/metrics"
	"github.com/tokokita/tokokita-admin-service/internal/models"
	"github.com/tokokita/tokokita-admin-service/internal/repository"
)

// OrderComposer drives the order-composition workflow: open a draft with
// reference data, create the order header, edit line items locally, then
// save items and write the total back. The three upstream writes (header,
// items, total) are ordered by sequential calls only; a failure partway
// leaves whatever already succeeded in place, including a pending zero-item
// order if the draft is abandoned after header creation.
type OrderComposer struct {
	api       clients.API
	drafts    repository.DraftStore
	publisher events.Publisher
	logger    *logrus.Entry
	now       func() time.Time
}

func NewOrderComposer(api clients.API, drafts repository.DraftStore, publisher events.Publisher, logger *logrus.Entry) *OrderComposer {
	return &OrderComposer{
		api:       api,
		drafts:    drafts,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Open starts a draft: fetch customers and products once, default the
// customer to the first in the list and the date to today, and seed one
// zero-quantity row per product. Products created after this point are not
// selectable until a new draft is opened.
func (c *OrderComposer) Open(ctx context.Context, sess *models.Session) (*models.OrderDraft, error) {
	customers, err := c.api.ListCustomers(ctx, sess)
	if err != nil {
		return nil, err
	}
	products, err := c.api.ListProducts(ctx, sess)
	if err != nil {
		return nil, err
	}

	id, err := repository.NewDraftID()
	if err != nil {
		return nil, err
	}

	draft := &models.OrderDraft{
		ID:        id,
		State:     models.DraftStateCustomerSelected,
		OrderDate: c.now().Format("2006-01-02"),
		Customers: customers,
		Products:  products,
		Rows:      make([]models.DraftRow, 0, len(products)),
		CreatedAt: c.now(),
	}
	if len(customers) > 0 {
		draft.CustomerID = customers[0].ID
	}
	for _, p := range products {
		draft.Rows = append(draft.Rows, models.DraftRow{
			ProductID:   p.ID,
			ProductName: p.Name,
		})
	}

	if err := c.drafts.Put(ctx, draft); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"draft_id":  draft.ID,
		"customers": len(customers),
		"products":  len(products),
	}).Info("Order draft opened")

	return draft, nil
}

// Get loads a draft.
func (c *OrderComposer) Get(ctx context.Context, id string) (*models.OrderDraft, error) {
	return c.drafts.Get(ctx, id)
}

// SetCustomer changes the draft's customer before the header is created.
func (c *OrderComposer) SetCustomer(ctx context.Context, draftID, customerID string) (*models.OrderDraft, error) {
	draft, err := c.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.DraftStateCustomerSelected {
		return nil, ErrOrderAlreadyCreated
	}
	draft.CustomerID = customerID
	return draft, c.drafts.Put(ctx, draft)
}

// SetDate changes the draft's order date before the header is created.
func (c *OrderComposer) SetDate(ctx context.Context, draftID, date string) (*models.OrderDraft, error) {
	draft, err := c.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.DraftStateCustomerSelected {
		return nil, ErrOrderAlreadyCreated
	}
	draft.OrderDate = date
	return draft, c.drafts.Put(ctx, draft)
}

// CreateOrder persists the order header upstream with a zero total and
// pending status, storing the server-assigned id. Fails closed when no
// customer is selected. On success item editing is unlocked.
func (c *OrderComposer) CreateOrder(ctx context.Context, sess *models.Session, draftID string) (*models.OrderDraft, error) {
	draft, err := c.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	switch draft.State {
	case models.DraftStateOrderCreated:
		return nil, ErrOrderAlreadyCreated
	case models.DraftStateSaved:
		return nil, ErrDraftFinished
	}
	if draft.CustomerID == "" {
		return nil, ErrNoCustomer
	}

	order, err := c.api.CreateOrder(ctx, sess, clients.OrderRequest{
		CustomerID:  draft.CustomerID,
		OrderDate:   draft.OrderDate,
		TotalAmount: 0,
		Status:      models.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrNoOrderID
	}

	draft.OrderID = order.ID
	draft.State = models.DraftStateOrderCreated
	if err := c.drafts.Put(ctx, draft); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"draft_id": draft.ID,
		"order_id": order.ID,
	}).Info("Order header created")

	return draft, nil
}

// AddRow appends a blank item row. Local only, no upstream call.
func (c *OrderComposer) AddRow(ctx context.Context, draftID string) (*models.OrderDraft, error) {
	draft, err := c.editableDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.Rows = append(draft.Rows, models.DraftRow{})
	return draft, c.drafts.Put(ctx, draft)
}

// SelectProduct points a row at a product from the draft's snapshot,
// copying its id and name into the row. An unknown product id leaves the
// row untouched, mirroring the form's selector which only offers known
// products.
func (c *OrderComposer) SelectProduct(ctx context.Context, draftID string, index int, productID string) (*models.OrderDraft, error) {
	draft, err := c.editableDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Rows) {
		return nil, ErrRowOutOfRange
	}

	if p := draft.Product(productID); p != nil {
		draft.Rows[index].ProductID = p.ID
		draft.Rows[index].ProductName = p.Name
	}
	return draft, c.drafts.Put(ctx, draft)
}

// SetQuantity edits a row's requested quantity. Local only; the stock gate
// runs at save time.
func (c *OrderComposer) SetQuantity(ctx context.Context, draftID string, index, quantity int) (*models.OrderDraft, error) {
	draft, err := c.editableDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Rows) {
		return nil, ErrRowOutOfRange
	}

	draft.Rows[index].Quantity = quantity
	return draft, c.drafts.Put(ctx, draft)
}

// RemoveRow deletes an item row. Local only.
func (c *OrderComposer) RemoveRow(ctx context.Context, draftID string, index int) (*models.OrderDraft, error) {
	draft, err := c.editableDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Rows) {
		return nil, ErrRowOutOfRange
	}

	draft.Rows = append(draft.Rows[:index], draft.Rows[index+1:]...)
	return draft, c.drafts.Put(ctx, draft)
}

// Save runs the validation gate, persists the non-zero rows as one batch,
// computes the total from the current row set and writes it back, then
// finishes the draft. The returned order is a locally synthesized
// placeholder for the parent list to append until its own re-fetch. A
// failure in any step leaves the draft state unchanged; there is no
// rollback of steps that already succeeded.
func (c *OrderComposer) Save(ctx context.Context, sess *models.Session, draftID string) (*models.Order, error) {
	draft, err := c.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	switch draft.State {
	case models.DraftStateCustomerSelected:
		return nil, ErrOrderNotCreated
	case models.DraftStateSaved:
		return nil, ErrDraftFinished
	}

	items, err := validateDraftForSave(draft)
	if err != nil {
		return nil, err
	}

	if err := c.api.SaveOrderItems(ctx, sess, draft.OrderID, items); err != nil {
		return nil, err
	}

	total := draft.Total()
	if err := c.api.UpdateOrderTotal(ctx, sess, draft.OrderID, total); err != nil {
		return nil, err
	}

	// Mark the draft finished before removing it, so a failed delete
	// leaves a draft that rejects further saves instead of re-posting the
	// item batch. The stale record lingers only until TTL.
	draft.State = models.DraftStateSaved
	if err := c.drafts.Put(ctx, draft); err != nil {
		c.logger.WithFields(logrus.Fields{
			"draft_id": draft.ID,
			"error":    err.Error(),
		}).Error("Failed to finish saved draft")
	}
	if err := c.drafts.Delete(ctx, draft.ID); err != nil {
		c.logger.WithFields(logrus.Fields{
			"draft_id": draft.ID,
			"error":    err.Error(),
		}).Error("Failed to delete saved draft")
	}

	metrics.DraftsSaved.Inc()

	if err := c.publisher.PublishOrderPlaced(ctx, sess.User.Username, events.OrderPlaced{
		OrderID:    draft.OrderID,
		CustomerID: draft.CustomerID,
		ItemCount:  len(items),
		Total:      total,
	}); err != nil {
		c.logger.WithFields(logrus.Fields{
			"order_id": draft.OrderID,
			"error":    err.Error(),
		}).Error("Failed to publish order placed event")
	}

	c.logger.WithFields(logrus.Fields{
		"order_id":   draft.OrderID,
		"item_count": len(items),
		"total":      total,
	}).Info("Order draft saved")

	placeholder := &models.Order{
		ID:          draft.OrderID,
		CustomerID:  draft.CustomerID,
		OrderDate:   draft.OrderDate,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		Customer:    draft.Customer(draft.CustomerID),
	}
	return placeholder, nil
}

// editableDraft loads a draft and checks it is in the item-editing state.
func (c *OrderComposer) editableDraft(ctx context.Context, draftID string) (*models.OrderDraft, error) {
	draft, err := c.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	switch draft.State {
	case models.DraftStateCustomerSelected:
		return nil, ErrOrderNotCreated
	case models.DraftStateSaved:
		return nil, ErrDraftFinished
	}
	return draft, nil
}
