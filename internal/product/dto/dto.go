package dto

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/shopspring/decimal"
)

type ProductFilters struct {
	Category    string
	SearchQuery string // matches name or sku
	SortBy      string // id, sku, name, category, unitCost, reorderPoint
	SortOrder   string // asc, desc
}

type CreateProductInput struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ReorderPoint request.Int     `json:"reorderPoint"`
}

// UpdateProductInput is a partial update: nil fields keep their stored value.
type UpdateProductInput struct {
	ID           int              `json:"-"`
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	ReorderPoint *request.Int     `json:"reorderPoint"`
}
