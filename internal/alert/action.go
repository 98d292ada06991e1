package alert

import (
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"
)

var (
	ErrMissingAlertID   = apperr.New(apperr.KindValidation, "missing_fields", "missing alert id")
	ErrInvalidAction    = apperr.New(apperr.KindValidation, "invalid_action", "action must be resolved or reordered")
	ErrAlertNotFound    = apperr.New(apperr.KindNotFound, "alert_not_found", "alert not found")
	ErrAlreadyReordered = apperr.New(apperr.KindConflict, "already_reordered", "alert has already been reordered")
	ErrQuantityOverflow = apperr.New(apperr.KindBusinessRule, "quantity_overflow", "reorder would overflow stock quantity")
)

type ActionResult struct {
	Alerts []model.Alert
	Alert  model.Alert

	// Stock and Order are set only for reorders.
	Stock []model.StockRecord
	Order *model.OrderHistoryEntry
}

// ApplyAction sets the action of alert id. A reorder adds the alert's reorder quantity to its stock
// line, creating the line when it is gone, and produces the order to append to the history. The
// inputs are not modified.
func ApplyAction(alerts []model.Alert, stock []model.StockRecord, id string, action model.AlertAction, now time.Time) (*ActionResult, error) {
	if id == "" {
		return nil, ErrMissingAlertID
	}
	if action != model.ActionResolved && action != model.ActionReordered {
		return nil, ErrInvalidAction
	}

	pos := -1
	for i := range alerts {
		if alerts[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, ErrAlertNotFound
	}
	if action == model.ActionReordered && alerts[pos].Action == model.ActionReordered {
		return nil, ErrAlreadyReordered
	}

	updated := make([]model.Alert, len(alerts))
	copy(updated, alerts)
	updated[pos].Action = action
	target := updated[pos]

	res := &ActionResult{Alerts: updated, Alert: target}
	if action != model.ActionReordered {
		return res, nil
	}

	idx, err := model.IndexStock(stock)
	if err != nil {
		return nil, err
	}
	newStock := model.CloneStock(stock)
	if i, ok := idx.Find(target.ProductID, target.WarehouseID); ok {
		sum, ok := model.AddQuantity(newStock[i].Quantity, target.ReorderQty)
		if !ok {
			return nil, ErrQuantityOverflow
		}
		newStock[i].Quantity = sum
	} else {
		newStock = append(newStock, model.StockRecord{
			ID:          model.NextID(stock, model.StockID),
			ProductID:   target.ProductID,
			WarehouseID: target.WarehouseID,
			Quantity:    target.ReorderQty,
		})
	}

	res.Stock = newStock
	res.Order = &model.OrderHistoryEntry{
		Timestamp:   now.UTC(),
		AlertID:     target.ID,
		ProductID:   target.ProductID,
		WarehouseID: target.WarehouseID,
		Product:     target.ProductName,
		Warehouse:   target.WarehouseName,
		OrderedQty:  target.ReorderQty,
		Action:      model.ActionReordered,
	}
	return res, nil
}
