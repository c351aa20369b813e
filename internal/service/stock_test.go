package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/events"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

func stockMock() *clients.MockBackoffice {
	mock := clients.NewMockBackoffice()
	mock.Products = []models.Product{
		{ID: "prd_1", Name: "Kopi", Price: 20000, QuantityProduct: 3},
		{ID: "prd_2", Name: "Teh", Price: 10000, QuantityProduct: 10},
	}
	mock.Stocks = []models.Stock{
		{ID: "stk_1", ProductID: "prd_1", Limit: 10, Product: &mock.Products[0]},
		{ID: "stk_2", ProductID: "prd_2", Limit: 10, Product: &mock.Products[1]},
	}
	return mock
}

func TestStockListDerivesOutOfStock(t *testing.T) {
	ctx := context.Background()
	svc := NewStockService(stockMock(), events.NewMockPublisher(), testLogger())

	views, err := svc.List(ctx, testSession())
	require.NoError(t, err)
	require.Len(t, views, 2)

	// 3 on hand below a limit of 10.
	assert.True(t, views[0].OutOfStock)
	assert.Equal(t, "Rp 20.000", views[0].PriceDisplay)
	// 10 on hand meets a limit of 10; strictly-below is the rule.
	assert.False(t, views[1].OutOfStock)
}

func TestRestockRaisesAllAndPublishes(t *testing.T) {
	ctx := context.Background()
	mock := stockMock()
	publisher := events.NewMockPublisher()
	svc := NewStockService(mock, publisher, testLogger())

	views, err := svc.Restock(ctx, testSession())
	require.NoError(t, err)

	// One trigger restocks every product, not just the clicked row.
	for _, view := range views {
		assert.False(t, view.OutOfStock)
	}
	assert.Equal(t, 1, publisher.Restocked)
}

func TestCatalogDecoratesEffectivePrice(t *testing.T) {
	ctx := context.Background()
	mock := clients.NewMockBackoffice()
	mock.Products = []models.Product{
		{
			ID: "prd_1", Name: "Kopi", Price: 100000,
			Category: &models.Category{ID: "cat_1", Name: "Minuman"},
			Discount: &models.Discount{Type: models.DiscountPercentage, Value: 10, Active: true},
		},
	}
	svc := NewCatalogService(mock, testLogger())

	views, err := svc.ListProducts(ctx, testSession())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 90000.0, views[0].EffectivePrice)
	assert.Equal(t, "Rp 90.000", views[0].PriceDisplay)
	assert.Equal(t, "Minuman", views[0].CategoryName)
}

func TestOrderDetailRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	mock := clients.NewMockBackoffice()
	mock.Products = []models.Product{
		{ID: "prd_1", Name: "Kopi", Price: 20000},
	}
	mock.SavedItems["ord_1"] = []models.OrderItemInput{
		{ProductID: "prd_1", Quantity: 3},
	}
	svc := NewOrderService(mock, testLogger())

	detail, err := svc.Items(ctx, testSession(), "ord_1")
	require.NoError(t, err)
	assert.Equal(t, 60000.0, detail.Total)
	assert.Equal(t, "Rp 60.000", detail.TotalDisplay)
}
