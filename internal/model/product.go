package model

import "github.com/shopspring/decimal"

type Product struct {
	ID           int             `json:"id" db:"id"`
	SKU          string          `json:"sku" db:"sku"`
	Name         string          `json:"name" db:"name"`
	Category     string          `json:"category" db:"category"`
	UnitCost     decimal.Decimal `json:"unitCost" db:"unit_cost"`
	ReorderPoint int             `json:"reorderPoint" db:"reorder_point"`
}

func FindProduct(products []Product, id int) (*Product, int) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], i
		}
	}
	return nil, -1
}
