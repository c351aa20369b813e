package models

import (
	"testing"
	"time"
)

func TestStockOutOfStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		limit    int
		expected bool
	}{
		{"below limit", 5, 10, true},
		{"at limit", 10, 10, false},
		{"above limit", 15, 10, false},
		{"zero on hand", 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stock{
				Limit:   tt.limit,
				Product: &Product{QuantityProduct: tt.quantity},
			}
			if got := s.OutOfStock(); got != tt.expected {
				t.Errorf("OutOfStock() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStockOutOfStockMissingProduct(t *testing.T) {
	s := Stock{Limit: 1}
	if !s.OutOfStock() {
		t.Error("expected missing product snapshot to count as out of stock")
	}
}

func TestDiscountActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name     string
		discount *Discount
		expected bool
	}{
		{"nil discount", nil, false},
		{"inactive flag", &Discount{Active: false}, false},
		{"active no window", &Discount{Active: true}, true},
		{"inside window", &Discount{Active: true, StartsAt: &before, EndsAt: &after}, true},
		{"not started", &Discount{Active: true, StartsAt: &after}, false},
		{"expired", &Discount{Active: true, EndsAt: &before}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.discount.ActiveAt(now); got != tt.expected {
				t.Errorf("ActiveAt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDraftTotal(t *testing.T) {
	d := &OrderDraft{
		Products: []Product{
			{ID: "prd_a", Name: "A", Price: 50000},
			{ID: "prd_b", Name: "B", Price: 20000},
		},
		Rows: []DraftRow{
			{ProductID: "prd_a", Quantity: 2},
			{ProductID: "prd_b", Quantity: 1},
			{ProductID: "", Quantity: 0},
		},
	}

	if got := d.Total(); got != 120000 {
		t.Errorf("Total() = %v, want 120000", got)
	}
}
