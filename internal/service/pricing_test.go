package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

func TestEffectivePrice(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		product models.Product
		want    float64
	}{
		{
			name:    "no discount",
			product: models.Product{Price: 100000},
			want:    100000,
		},
		{
			name: "inactive discount ignored",
			product: models.Product{
				Price:    100000,
				Discount: &models.Discount{Type: models.DiscountPercentage, Value: 50, Active: false},
			},
			want: 100000,
		},
		{
			name: "active percentage rounds to nearest rupiah",
			product: models.Product{
				Price:    100000,
				Discount: &models.Discount{Type: models.DiscountPercentage, Value: 10, Active: true},
			},
			want: 90000,
		},
		{
			name: "odd percentage rounds",
			product: models.Product{
				Price:    99999,
				Discount: &models.Discount{Type: models.DiscountPercentage, Value: 15, Active: true},
			},
			want: 84999,
		},
		{
			name: "active fixed subtracts",
			product: models.Product{
				Price:    100000,
				Discount: &models.Discount{Type: models.DiscountFixed, Value: 25000, Active: true},
			},
			want: 75000,
		},
		{
			name: "fixed never goes negative",
			product: models.Product{
				Price:    10000,
				Discount: &models.Discount{Type: models.DiscountFixed, Value: 25000, Active: true},
			},
			want: 0,
		},
		{
			name: "discount outside window ignored",
			product: models.Product{
				Price: 100000,
				Discount: &models.Discount{
					Type: models.DiscountPercentage, Value: 10, Active: true,
					StartsAt: &future,
				},
			},
			want: 100000,
		},
		{
			name: "discount inside window applies",
			product: models.Product{
				Price: 100000,
				Discount: &models.Discount{
					Type: models.DiscountPercentage, Value: 10, Active: true,
					StartsAt: &past, EndsAt: &future,
				},
			},
			want: 90000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePrice(tt.product, now))
		})
	}
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 120.000", FormatRupiah(120000))
	assert.Equal(t, "Rp 1.500.000", FormatRupiah(1500000))
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	// Fractional amounts round to whole rupiah.
	assert.Equal(t, "Rp 90.000", FormatRupiah(89999.5))
}
