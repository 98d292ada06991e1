package alert

import (
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
)

func fixtures() ([]model.StockRecord, []model.Product, []model.Warehouse) {
	products := []model.Product{
		{ID: 1, SKU: "P-1", Name: "Widget", UnitCost: decimal.NewFromInt(2), ReorderPoint: 10},
		{ID: 2, SKU: "P-2", Name: "Gadget", UnitCost: decimal.NewFromInt(3), ReorderPoint: 4},
	}
	warehouses := []model.Warehouse{
		{ID: 1, Code: "W1", Name: "Main"},
		{ID: 2, Code: "W2", Name: "Overflow"},
	}
	stock := []model.StockRecord{
		{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 5},  // low
		{ID: 2, ProductID: 1, WarehouseID: 2, Quantity: 0},  // critical
		{ID: 3, ProductID: 2, WarehouseID: 1, Quantity: 8},  // adequate
		{ID: 4, ProductID: 2, WarehouseID: 2, Quantity: 40}, // overstocked
		{ID: 5, ProductID: 9, WarehouseID: 1, Quantity: 0},  // unknown product
		{ID: 6, ProductID: 2, WarehouseID: 9, Quantity: 0},  // unknown warehouse
	}
	return stock, products, warehouses
}

func TestGenerate(t *testing.T) {
	stock, products, warehouses := fixtures()

	alerts := Generate(stock, products, warehouses, nil)
	if len(alerts) != 2 {
		t.Fatalf("Expected 2 alerts, got %d: %+v", len(alerts), alerts)
	}

	want := []model.Alert{
		{ID: "1-1-low", ProductID: 1, WarehouseID: 1, ProductName: "Widget", WarehouseName: "Main", Status: model.StatusLow, Quantity: 5, ReorderQty: 15, Action: model.ActionPending},
		{ID: "1-2-critical", ProductID: 1, WarehouseID: 2, ProductName: "Widget", WarehouseName: "Overflow", Status: model.StatusCritical, Quantity: 0, ReorderQty: 20, Action: model.ActionPending},
	}
	for i := range want {
		if alerts[i] != want[i] {
			t.Errorf("alert %d: expected %+v, got %+v", i, want[i], alerts[i])
		}
	}
}

func TestGenerate_EmptyInputs(t *testing.T) {
	alerts := Generate(nil, nil, nil, nil)
	if alerts == nil || len(alerts) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", alerts)
	}
}

func TestGenerate_CarriesActionForward(t *testing.T) {
	stock, products, warehouses := fixtures()
	previous := Generate(stock, products, warehouses, nil)
	previous[0].Action = model.ActionResolved

	stock[0].Quantity = 6
	next := Generate(stock, products, warehouses, previous)

	if next[0].Action != model.ActionResolved || next[0].ID != previous[0].ID {
		t.Errorf("Expected resolved action to carry forward, got %+v", next[0])
	}
	if next[0].Quantity != 6 || next[0].ReorderQty != 14 {
		t.Errorf("Expected quantities to be recomputed, got %+v", next[0])
	}
	if next[1].Action != model.ActionPending {
		t.Errorf("Expected untouched alert to stay pending, got %s", next[1].Action)
	}
}

func TestGenerate_IsStableAcrossRuns(t *testing.T) {
	stock, products, warehouses := fixtures()
	first := Generate(stock, products, warehouses, nil)
	first[1].Action = model.ActionResolved

	second := Generate(stock, products, warehouses, first)
	third := Generate(stock, products, warehouses, second)

	if len(third) != len(first) {
		t.Fatalf("Expected %d alerts, got %d", len(first), len(third))
	}
	for i := range first {
		if third[i] != first[i] {
			t.Errorf("alert %d drifted: %+v -> %+v", i, first[i], third[i])
		}
	}
}

func TestGenerate_ReorderedAlertStartsFresh(t *testing.T) {
	stock, products, warehouses := fixtures()
	previous := Generate(stock, products, warehouses, nil)
	previous[0].Action = model.ActionReordered

	next := Generate(stock, products, warehouses, previous)
	if next[0].Action != model.ActionPending {
		t.Errorf("Expected a new pending alert after reorder, got %s", next[0].Action)
	}
}

func TestGenerate_StatusChangeIsNewAlert(t *testing.T) {
	stock, products, warehouses := fixtures()
	previous := Generate(stock, products, warehouses, nil)
	previous[0].Action = model.ActionResolved

	stock[0].Quantity = 0
	next := Generate(stock, products, warehouses, previous)

	if next[0].ID != "1-1-critical" || next[0].Action != model.ActionPending {
		t.Errorf("Expected a new pending critical alert, got %+v", next[0])
	}
}

func TestGenerate_DropsRecoveredStock(t *testing.T) {
	stock, products, warehouses := fixtures()
	previous := Generate(stock, products, warehouses, nil)

	stock[0].Quantity = 20
	next := Generate(stock, products, warehouses, previous)
	for _, a := range next {
		if a.ProductID == 1 && a.WarehouseID == 1 {
			t.Errorf("Expected recovered stock line to drop out, got %+v", a)
		}
	}
}
