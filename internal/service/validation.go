package service

import "github.com/tokokita/tokokita-admin-service/internal/models"

const unknownProductName = "unknown product"

// validateDraftForSave runs the save gate over a draft's rows and returns
// the batch of items to persist. Gate one: no row may request more than the
// product's stock known at draft-open time; offenders are reported by name.
// Gate two: at least one row must carry a positive quantity. The stock
// check is advisory only, nothing stops another client from draining stock
// between open and save.
func validateDraftForSave(draft *models.OrderDraft) ([]models.OrderItemInput, error) {
	var offending []string
	for _, row := range draft.Rows {
		available := 0
		name := unknownProductName
		if p := draft.Product(row.ProductID); p != nil {
			available = p.QuantityProduct
			name = p.Name
		}
		if row.Quantity > available {
			offending = append(offending, name)
		}
	}
	if len(offending) > 0 {
		return nil, &InsufficientStockError{Products: offending}
	}

	items := make([]models.OrderItemInput, 0, len(draft.Rows))
	for _, row := range draft.Rows {
		if row.Quantity > 0 {
			items = append(items, models.OrderItemInput{
				ProductID: row.ProductID,
				Quantity:  row.Quantity,
			})
		}
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return items, nil
}
