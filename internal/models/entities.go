package models

import "time"

// The JSON tags below mirror the back-office API wire format exactly,
// including its Indonesian field names (quantity_product, categories_id,
// barangs, total_pendapatan). Do not "fix" them.

// Customer is a registered buyer. Phone is unique at the API; the API
// rejects duplicates with a structured validation error on the phone field.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// Category groups products.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DiscountType selects how a discount is applied to a product price.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is an optional price reduction embedded in a product.
type Discount struct {
	Type     DiscountType `json:"type"`
	Value    float64      `json:"value"`
	Active   bool         `json:"active"`
	StartsAt *time.Time   `json:"starts_at,omitempty"`
	EndsAt   *time.Time   `json:"ends_at,omitempty"`
}

// ActiveAt reports whether the discount applies at t: the flag must be set
// and t must fall inside the validity window. Nil bounds are open-ended.
func (d *Discount) ActiveAt(t time.Time) bool {
	if d == nil || !d.Active {
		return false
	}
	if d.StartsAt != nil && t.Before(*d.StartsAt) {
		return false
	}
	if d.EndsAt != nil && t.After(*d.EndsAt) {
		return false
	}
	return true
}

// Product is a catalog entry. QuantityProduct is the current stock level
// as known to the catalog, distinct from the stock reorder record.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	QuantityProduct int       `json:"quantity_product"`
	CategoriesID    string    `json:"categories_id"`
	Category        *Category `json:"categories,omitempty"`
	Discount        *Discount `json:"discount,omitempty"`
}

// Stock is a reorder-threshold record paired with a product snapshot.
type Stock struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Limit     int      `json:"limit"`
	Product   *Product `json:"product,omitempty"`
}

// OutOfStock reports whether the product has fallen below the reorder
// threshold. A missing product snapshot counts as zero on hand.
func (s Stock) OutOfStock() bool {
	quantity := 0
	if s.Product != nil {
		quantity = s.Product.QuantityProduct
	}
	return quantity < s.Limit
}

// OrderStatus is the lifecycle state of an order header.
type OrderStatus string

const OrderStatusPending OrderStatus = "pending"

// Order is an order header. TotalAmount is written back by this service
// after line items are persisted; until then it is zero.
type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	OrderDate   string      `json:"order_date"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Customer    *Customer   `json:"customer,omitempty"`
	Items       []OrderItem `json:"order_items,omitempty"`
}

// OrderItem is a persisted line item with the product embedded by the API.
type OrderItem struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// OrderItemInput is the request shape for the batch item save.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// DashboardCounts is the aggregate summary served by the API.
type DashboardCounts struct {
	Customers    int     `json:"customers"`
	Products     int     `json:"barangs"`
	Orders       int     `json:"orders"`
	TotalRevenue float64 `json:"total_pendapatan"`
}

// UserProfile is the authenticated back-office user blob returned at login.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// LoginResult is the upstream login response.
type LoginResult struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Session carries the bearer token and user profile for one signed-in admin.
// It is threaded explicitly through every API call rather than read from
// ambient storage.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
