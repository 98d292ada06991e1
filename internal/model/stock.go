package model

import (
	"fmt"
	"math"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"
)

var ErrDuplicateStock = apperr.New(apperr.KindConflict, "duplicate_stock", "stock record already exists for this product and warehouse")

type StockRecord struct {
	ID          int `json:"id" db:"id"`
	ProductID   int `json:"productId" db:"product_id"`
	WarehouseID int `json:"warehouseId" db:"warehouse_id"`
	Quantity    int `json:"quantity" db:"quantity"`
}

// StockKey is the composite identity business rules rely on: one record per product and warehouse.
type StockKey struct {
	ProductID   int
	WarehouseID int
}

func (s StockRecord) Key() StockKey {
	return StockKey{ProductID: s.ProductID, WarehouseID: s.WarehouseID}
}

// StockIndex maps each composite key to its position in the slice it was built from.
type StockIndex map[StockKey]int

// IndexStock fails when two records share a key instead of silently picking one.
func IndexStock(records []StockRecord) (StockIndex, error) {
	idx := make(StockIndex, len(records))
	for i, r := range records {
		if prev, ok := idx[r.Key()]; ok {
			return nil, fmt.Errorf("stock records %d and %d (product %d, warehouse %d): %w",
				records[prev].ID, r.ID, r.ProductID, r.WarehouseID, ErrDuplicateStock)
		}
		idx[r.Key()] = i
	}
	return idx, nil
}

func (idx StockIndex) Find(productID, warehouseID int) (int, bool) {
	i, ok := idx[StockKey{ProductID: productID, WarehouseID: warehouseID}]
	return i, ok
}

func CloneStock(records []StockRecord) []StockRecord {
	out := make([]StockRecord, len(records))
	copy(out, records)
	return out
}

func StockID(s StockRecord) int { return s.ID }

// AddQuantity returns q+delta, or false when the sum would overflow int.
func AddQuantity(q, delta int) (int, bool) {
	if (delta > 0 && q > math.MaxInt-delta) || (delta < 0 && q < math.MinInt-delta) {
		return 0, false
	}
	return q + delta, true
}
