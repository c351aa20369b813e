package models

import "time"

// DraftState is the order-composition workflow state.
type DraftState string

const (
	// DraftStateCustomerSelected: reference data loaded, header not yet created.
	DraftStateCustomerSelected DraftState = "customer_selected"
	// DraftStateOrderCreated: header persisted upstream, item editing unlocked.
	DraftStateOrderCreated DraftState = "order_created"
	// DraftStateSaved: items and total persisted, draft finished.
	DraftStateSaved DraftState = "saved"
)

// DraftRow is one editable line in the composition table. ProductID and
// ProductName are copied from the product snapshot when the row's product
// is selected; Quantity is edited freely.
type DraftRow struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// OrderDraft is the server-side state of one order-composition session.
// Customers and Products are snapshots taken when the draft was opened;
// products created afterwards are not selectable until a new draft.
type OrderDraft struct {
	ID         string     `json:"id"`
	State      DraftState `json:"state"`
	CustomerID string     `json:"customer_id"`
	OrderDate  string     `json:"order_date"`
	OrderID    string     `json:"order_id,omitempty"`
	Customers  []Customer `json:"customers"`
	Products   []Product  `json:"products"`
	Rows       []DraftRow `json:"rows"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Product looks up a product snapshot by id. Returns nil when the id is
// unknown to the draft (including the empty id of an unselected row).
func (d *OrderDraft) Product(id string) *Product {
	if id == "" {
		return nil
	}
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// Customer looks up a customer snapshot by id.
func (d *OrderDraft) Customer(id string) *Customer {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return &d.Customers[i]
		}
	}
	return nil
}

// Total computes the running order total from the current row set:
// the sum of known product price times quantity over every row. Rows whose
// product is unknown contribute nothing.
func (d *OrderDraft) Total() float64 {
	var total float64
	for _, row := range d.Rows {
		if p := d.Product(row.ProductID); p != nil {
			total += p.Price * float64(row.Quantity)
		}
	}
	return total
}
