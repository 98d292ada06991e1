// Package inventory classifies stock levels against a product's reorder point.
package inventory

import "github.com/fekuna/omnipos-warehouse-service/internal/model"

// OverstockFactor is the multiple of the reorder point at or above which stock counts as overstocked.
const OverstockFactor = 3

// Classify maps a quantity and reorder point to a status and a suggested reorder quantity.
//
// Zero or negative stock is critical. Stock at or below the reorder point is low. Stock at or above
// OverstockFactor times the reorder point is overstocked. Anything else is adequate. Critical and low
// stock suggest topping up to twice the reorder point, never less than the reorder point itself.
func Classify(quantity, reorderPoint int) (model.StockStatus, int) {
	switch {
	case quantity <= 0:
		return model.StatusCritical, reorderQuantity(quantity, reorderPoint)
	case quantity <= reorderPoint:
		return model.StatusLow, reorderQuantity(quantity, reorderPoint)
	case quantity >= OverstockFactor*reorderPoint:
		return model.StatusOverstocked, 0
	default:
		return model.StatusAdequate, 0
	}
}

func reorderQuantity(quantity, reorderPoint int) int {
	qty := 2*reorderPoint - quantity
	if qty < reorderPoint {
		qty = reorderPoint
	}
	if qty < 0 {
		return 0
	}
	return qty
}

// NeedsAttention reports whether status should raise an alert.
func NeedsAttention(status model.StockStatus) bool {
	return status == model.StatusCritical || status == model.StatusLow
}
