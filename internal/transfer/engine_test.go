package transfer

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func sampleStock() []model.StockRecord {
	return []model.StockRecord{
		{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 50},
		{ID: 2, ProductID: 1, WarehouseID: 3, Quantity: 5},
		{ID: 3, ProductID: 2, WarehouseID: 1, Quantity: 8},
	}
}

func TestApply_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"missing from", Request{ToWarehouseID: 2, ProductID: 1, Quantity: 1}, ErrMissingFields},
		{"missing to", Request{FromWarehouseID: 1, ProductID: 1, Quantity: 1}, ErrMissingFields},
		{"missing product", Request{FromWarehouseID: 1, ToWarehouseID: 2, Quantity: 1}, ErrMissingFields},
		{"zero quantity", Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1}, ErrMissingFields},
		{"negative quantity", Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: -3}, ErrMissingFields},
		{"missing fields before same warehouse", Request{FromWarehouseID: 1, ToWarehouseID: 1, ProductID: 1}, ErrMissingFields},
		{"same warehouse", Request{FromWarehouseID: 1, ToWarehouseID: 1, ProductID: 1, Quantity: 1}, ErrSameWarehouse},
		{"same warehouse before source lookup", Request{FromWarehouseID: 9, ToWarehouseID: 9, ProductID: 1, Quantity: 1}, ErrSameWarehouse},
		{"source missing", Request{FromWarehouseID: 2, ToWarehouseID: 1, ProductID: 1, Quantity: 1}, ErrSourceNotFound},
		{"source missing product", Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 7, Quantity: 1}, ErrSourceNotFound},
		{"insufficient", Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 51}, ErrInsufficientStock},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stock := sampleStock()
			res, err := Apply(stock, nil, tc.req, testNow)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected %v, got %v", tc.wantErr, err)
			}
			if res != nil {
				t.Error("Expected no result on error")
			}
			if stock[0].Quantity != 50 {
				t.Error("Expected stock to be unchanged on error")
			}
		})
	}
}

func TestApply_CreatesDestinationRecord(t *testing.T) {
	stock := sampleStock()
	res, err := Apply(stock, nil, Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 30}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stock[0].Quantity != 20 {
		t.Errorf("Expected source to drop to 20, got %d", res.Stock[0].Quantity)
	}
	if len(res.Stock) != 4 {
		t.Fatalf("Expected a new destination record, got %d records", len(res.Stock))
	}
	dst := res.Stock[3]
	if dst.ID != 4 || dst.ProductID != 1 || dst.WarehouseID != 2 || dst.Quantity != 30 {
		t.Errorf("Unexpected destination record %+v", dst)
	}

	want := model.TransferRecord{ID: 1, Date: testNow, FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 30}
	if res.Entry != want {
		t.Errorf("Expected entry %+v, got %+v", want, res.Entry)
	}
	if len(res.History) != 1 || res.History[0] != want {
		t.Errorf("Expected history with the new entry, got %+v", res.History)
	}

	if stock[0].Quantity != 50 || len(stock) != 3 {
		t.Error("Expected input stock to be left untouched")
	}
}

func TestApply_IncrementsExistingDestination(t *testing.T) {
	res, err := Apply(sampleStock(), nil, Request{FromWarehouseID: 1, ToWarehouseID: 3, ProductID: 1, Quantity: 10}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Stock) != 3 {
		t.Fatalf("Expected no new record, got %d records", len(res.Stock))
	}
	before := 50 + 5
	after := res.Stock[0].Quantity + res.Stock[1].Quantity
	if before != after {
		t.Errorf("Expected total %d to be conserved, got %d", before, after)
	}
	if res.Stock[1].Quantity != 15 {
		t.Errorf("Expected destination 15, got %d", res.Stock[1].Quantity)
	}
}

func TestApply_MovesEntireBalance(t *testing.T) {
	res, err := Apply(sampleStock(), nil, Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 2, Quantity: 8}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stock[2].Quantity != 0 {
		t.Errorf("Expected source to be emptied, got %d", res.Stock[2].Quantity)
	}
}

func TestApply_PrependsHistory(t *testing.T) {
	history := []model.TransferRecord{
		{ID: 2, Date: testNow.Add(-time.Hour), FromWarehouseID: 1, ToWarehouseID: 3, ProductID: 1, Quantity: 1},
		{ID: 1, Date: testNow.Add(-2 * time.Hour), FromWarehouseID: 3, ToWarehouseID: 1, ProductID: 1, Quantity: 1},
	}

	res, err := Apply(sampleStock(), history, Request{FromWarehouseID: 1, ToWarehouseID: 3, ProductID: 1, Quantity: 2}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.History) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(res.History))
	}
	if res.History[0].ID != 3 || !res.History[0].Date.Equal(testNow) {
		t.Errorf("Expected newest entry first with id 3, got %+v", res.History[0])
	}
	for i := 1; i < len(res.History); i++ {
		if res.History[i].Date.After(res.History[i-1].Date) {
			t.Errorf("History not most-recent-first at %d", i)
		}
	}
	if len(history) != 2 {
		t.Error("Expected input history to be left untouched")
	}
}

func TestApply_RejectsDuplicateStockKeys(t *testing.T) {
	stock := append(sampleStock(), model.StockRecord{ID: 9, ProductID: 1, WarehouseID: 1, Quantity: 4})

	_, err := Apply(stock, nil, Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 1}, testNow)
	if !errors.Is(err, model.ErrDuplicateStock) {
		t.Fatalf("Expected ErrDuplicateStock, got %v", err)
	}
}

func TestApply_RejectsDestinationOverflow(t *testing.T) {
	stock := []model.StockRecord{
		{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 50},
		{ID: 2, ProductID: 1, WarehouseID: 2, Quantity: math.MaxInt - 10},
	}

	_, err := Apply(stock, nil, Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 11}, testNow)
	if !errors.Is(err, ErrQuantityOverflow) {
		t.Fatalf("Expected ErrQuantityOverflow, got %v", err)
	}
	if stock[0].Quantity != 50 || stock[1].Quantity != math.MaxInt-10 {
		t.Errorf("Expected input stock to be left untouched, got %+v", stock)
	}

	res, err := Apply(stock, nil, Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 10}, testNow)
	if err != nil {
		t.Fatalf("Expected a transfer up to the maximum to succeed, got %v", err)
	}
	if res.Stock[1].Quantity != math.MaxInt {
		t.Errorf("Expected destination at MaxInt, got %d", res.Stock[1].Quantity)
	}
}

func TestCheckReferences(t *testing.T) {
	products := []model.Product{{ID: 1, SKU: "P-1", Name: "Widget"}}
	warehouses := []model.Warehouse{{ID: 1, Code: "W1", Name: "North"}, {ID: 2, Code: "W2", Name: "South"}}

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"known", Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 30}, nil},
		{"unknown destination", Request{FromWarehouseID: 1, ToWarehouseID: 999, ProductID: 1, Quantity: 30}, ErrDestinationNotFound},
		{"unknown product", Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 7, Quantity: 30}, ErrProductNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckReferences(products, warehouses, tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}
