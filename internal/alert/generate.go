// Package alert derives low-stock alerts from stock levels and applies operator actions to them.
package alert

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type alertKey struct {
	productID   int
	warehouseID int
	status      model.StockStatus
}

// Generate classifies every stock line and returns alerts for critical and low stock. Lines whose
// product or warehouse no longer exists are skipped. A previous alert with the same product,
// warehouse and status keeps its id and action unless it was already reordered; quantities are
// always recomputed.
func Generate(stock []model.StockRecord, products []model.Product, warehouses []model.Warehouse, previous []model.Alert) []model.Alert {
	productByID := make(map[int]model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	warehouseByID := make(map[int]model.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehouseByID[w.ID] = w
	}

	carried := make(map[alertKey]model.Alert, len(previous))
	for _, a := range previous {
		if a.Action == model.ActionReordered {
			continue
		}
		key := alertKey{a.ProductID, a.WarehouseID, a.Status}
		if _, ok := carried[key]; !ok {
			carried[key] = a
		}
	}

	alerts := make([]model.Alert, 0)
	for _, s := range stock {
		product, ok := productByID[s.ProductID]
		if !ok {
			continue
		}
		warehouse, ok := warehouseByID[s.WarehouseID]
		if !ok {
			continue
		}

		status, reorderQty := inventory.Classify(s.Quantity, product.ReorderPoint)
		if !inventory.NeedsAttention(status) {
			continue
		}

		a := model.Alert{
			ID:            model.AlertID(s.ProductID, s.WarehouseID, status),
			ProductID:     s.ProductID,
			WarehouseID:   s.WarehouseID,
			ProductName:   product.Name,
			WarehouseName: warehouse.Name,
			Status:        status,
			Quantity:      s.Quantity,
			ReorderQty:    reorderQty,
			Action:        model.ActionPending,
		}
		if prev, ok := carried[alertKey{s.ProductID, s.WarehouseID, status}]; ok {
			a.ID = prev.ID
			a.Action = prev.Action
		}
		alerts = append(alerts, a)
	}
	return alerts
}
