// Package transfer moves stock of one product between two warehouses.
package transfer

import (
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"
)

var (
	ErrMissingFields     = apperr.New(apperr.KindValidation, "missing_fields", "missing required fields")
	ErrSameWarehouse     = apperr.New(apperr.KindValidation, "same_warehouse", "source and destination cannot be the same")
	ErrSourceNotFound    = apperr.New(apperr.KindNotFound, "source_not_found", "source warehouse does not contain this product")
	ErrInsufficientStock = apperr.New(apperr.KindBusinessRule, "insufficient_stock", "insufficient stock in source warehouse")

	ErrProductNotFound     = apperr.New(apperr.KindNotFound, "product_not_found", "product not found")
	ErrDestinationNotFound = apperr.New(apperr.KindNotFound, "destination_not_found", "destination warehouse not found")
	ErrQuantityOverflow    = apperr.New(apperr.KindBusinessRule, "quantity_overflow", "destination quantity would exceed the supported maximum")
)

type Request struct {
	FromWarehouseID int
	ToWarehouseID   int
	ProductID       int
	Quantity        int
}

type Result struct {
	Stock   []model.StockRecord
	History []model.TransferRecord
	Entry   model.TransferRecord
}

// Apply validates req against stock and returns the new stock set and history. The inputs are not
// modified; on error nothing is returned and the caller keeps its previous state.
func Apply(stock []model.StockRecord, history []model.TransferRecord, req Request, now time.Time) (*Result, error) {
	if req.FromWarehouseID <= 0 || req.ToWarehouseID <= 0 || req.ProductID <= 0 || req.Quantity <= 0 {
		return nil, ErrMissingFields
	}
	if req.FromWarehouseID == req.ToWarehouseID {
		return nil, ErrSameWarehouse
	}

	idx, err := model.IndexStock(stock)
	if err != nil {
		return nil, err
	}

	src, ok := idx.Find(req.ProductID, req.FromWarehouseID)
	if !ok {
		return nil, ErrSourceNotFound
	}
	if stock[src].Quantity < req.Quantity {
		return nil, ErrInsufficientStock
	}

	updated := model.CloneStock(stock)
	updated[src].Quantity -= req.Quantity

	if dst, ok := idx.Find(req.ProductID, req.ToWarehouseID); ok {
		sum, ok := model.AddQuantity(updated[dst].Quantity, req.Quantity)
		if !ok {
			return nil, ErrQuantityOverflow
		}
		updated[dst].Quantity = sum
	} else {
		updated = append(updated, model.StockRecord{
			ID:          model.NextID(stock, model.StockID),
			ProductID:   req.ProductID,
			WarehouseID: req.ToWarehouseID,
			Quantity:    req.Quantity,
		})
	}

	entry := model.TransferRecord{
		ID:              model.NextID(history, model.TransferID),
		Date:            now.UTC(),
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
	}

	newHistory := make([]model.TransferRecord, 0, len(history)+1)
	newHistory = append(newHistory, entry)
	newHistory = append(newHistory, history...)

	return &Result{
		Stock:   updated,
		History: newHistory,
		Entry:   entry,
	}, nil
}

// CheckReferences rejects a transfer whose product or destination warehouse is not in the catalog.
func CheckReferences(products []model.Product, warehouses []model.Warehouse, req Request) error {
	if p, _ := model.FindProduct(products, req.ProductID); p == nil {
		return ErrProductNotFound
	}
	if w, _ := model.FindWarehouse(warehouses, req.ToWarehouseID); w == nil {
		return ErrDestinationNotFound
	}
	return nil
}
