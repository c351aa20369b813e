package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// OrderRow is an order decorated for the list view: customer name and
// phone lifted out of the embedded record, total formatted for display.
type OrderRow struct {
	models.Order
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	TotalDisplay  string `json:"total_display"`
}

// OrderDetail is the item breakdown shown when a row is expanded. Total is
// recomputed from the embedded product prices, not read from the header, so
// it reflects the items as they stand now.
type OrderDetail struct {
	Items        []models.OrderItem `json:"items"`
	Total        float64            `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

// OrderService backs the order list view and the item detail modal. New
// orders go through the composition workflow, not this service.
type OrderService struct {
	api    clients.API
	logger *logrus.Entry
}

func NewOrderService(api clients.API, logger *logrus.Entry) *OrderService {
	return &OrderService{api: api, logger: logger}
}

// List fetches the order collection decorated for display.
func (s *OrderService) List(ctx context.Context, sess *models.Session) ([]OrderRow, error) {
	orders, err := s.api.ListOrders(ctx, sess)
	if err != nil {
		return nil, err
	}

	rows := make([]OrderRow, len(orders))
	for i, order := range orders {
		row := OrderRow{
			Order:        order,
			TotalDisplay: FormatRupiah(order.TotalAmount),
		}
		if order.Customer != nil {
			row.CustomerName = order.Customer.Name
			row.CustomerPhone = order.Customer.Phone
		}
		rows[i] = row
	}
	return rows, nil
}

// Items fetches an order's persisted line items with a recomputed total.
func (s *OrderService) Items(ctx context.Context, sess *models.Session, orderID string) (*OrderDetail, error) {
	items, err := s.api.GetOrderItems(ctx, sess, orderID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, item := range items {
		if item.Product != nil {
			total += item.Product.Price * float64(item.Quantity)
		}
	}

	return &OrderDetail{
		Items:        items,
		Total:        total,
		TotalDisplay: FormatRupiah(total),
	}, nil
}

// Delete deletes an order header. RefreshLocal.
func (s *OrderService) Delete(ctx context.Context, sess *models.Session, id string) error {
	return s.api.DeleteOrder(ctx, sess, id)
}
