package dto

import "github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"

type StockFilters struct {
	ProductID   int
	WarehouseID int
}

type CreateStockInput struct {
	ProductID   request.Int `json:"productId"`
	WarehouseID request.Int `json:"warehouseId"`
	Quantity    request.Int `json:"quantity"`
}

type UpdateStockInput struct {
	ID          int          `json:"-"`
	ProductID   *request.Int `json:"productId"`
	WarehouseID *request.Int `json:"warehouseId"`
	Quantity    *request.Int `json:"quantity"`
}

type AdjustStockInput struct {
	ProductID   request.Int `json:"productId"`
	WarehouseID request.Int `json:"warehouseId"`
	Delta       request.Int `json:"delta"`
	Reason      string      `json:"reason"`
	ReferenceID string      `json:"referenceId"`
}
