package service

import (
	"math"
	"time"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// EffectivePrice computes the price a product sells for at time now.
// Absent or inactive discounts leave the raw price; an active percentage
// discount rounds to the nearest rupiah; an active fixed discount never
// goes below zero.
func EffectivePrice(p models.Product, now time.Time) float64 {
	if !p.Discount.ActiveAt(now) {
		return p.Price
	}

	switch p.Discount.Type {
	case models.DiscountPercentage:
		return math.Round(p.Price * (1 - p.Discount.Value/100))
	case models.DiscountFixed:
		return math.Max(0, p.Price-p.Discount.Value)
	default:
		return p.Price
	}
}
