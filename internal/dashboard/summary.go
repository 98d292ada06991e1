// Package dashboard aggregates the catalog and stock levels into a single overview.
package dashboard

import (
	"sort"

	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
)

const uncategorized = "Uncategorized"

type Summary struct {
	ProductCount     int              `json:"productCount"`
	WarehouseCount   int              `json:"warehouseCount"`
	TotalUnits       int              `json:"totalUnits"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	LowStockCount    int              `json:"lowStockCount"`
	StockByWarehouse []WarehouseTotal `json:"stockByWarehouse"`
	StockByCategory  []CategoryTotal  `json:"stockByCategory"`
	Inventory        []InventoryLine  `json:"inventory"`
}

type WarehouseTotal struct {
	WarehouseID int    `json:"warehouseId"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

type InventoryLine struct {
	ProductID     int               `json:"productId"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	TotalQuantity int               `json:"totalQuantity"`
	ReorderPoint  int               `json:"reorderPoint"`
	Status        model.StockStatus `json:"status"`
}

// Summarize totals stock per warehouse, per category and per product. Stock lines whose product is
// unknown still count towards their warehouse but carry no value.
func Summarize(products []model.Product, warehouses []model.Warehouse, stock []model.StockRecord) *Summary {
	productByID := make(map[int]model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	s := &Summary{
		ProductCount:   len(products),
		WarehouseCount: len(warehouses),
		TotalValue:     decimal.Zero,
	}

	perWarehouse := make(map[int]int)
	perProduct := make(map[int]int)
	perCategory := make(map[string]*CategoryTotal)
	for _, rec := range stock {
		s.TotalUnits += rec.Quantity
		perWarehouse[rec.WarehouseID] += rec.Quantity

		p, ok := productByID[rec.ProductID]
		if !ok {
			continue
		}
		perProduct[p.ID] += rec.Quantity

		value := p.UnitCost.Mul(decimal.NewFromInt(int64(rec.Quantity)))
		s.TotalValue = s.TotalValue.Add(value)

		category := p.Category
		if category == "" {
			category = uncategorized
		}
		ct, ok := perCategory[category]
		if !ok {
			ct = &CategoryTotal{Category: category, Value: decimal.Zero}
			perCategory[category] = ct
		}
		ct.Quantity += rec.Quantity
		ct.Value = ct.Value.Add(value)
	}

	s.StockByWarehouse = make([]WarehouseTotal, 0, len(warehouses))
	for _, w := range warehouses {
		s.StockByWarehouse = append(s.StockByWarehouse, WarehouseTotal{
			WarehouseID: w.ID,
			Name:        w.Name,
			Quantity:    perWarehouse[w.ID],
		})
	}
	sort.Slice(s.StockByWarehouse, func(i, j int) bool {
		return s.StockByWarehouse[i].WarehouseID < s.StockByWarehouse[j].WarehouseID
	})

	s.StockByCategory = make([]CategoryTotal, 0, len(perCategory))
	for _, ct := range perCategory {
		s.StockByCategory = append(s.StockByCategory, *ct)
	}
	sort.Slice(s.StockByCategory, func(i, j int) bool {
		return s.StockByCategory[i].Category < s.StockByCategory[j].Category
	})

	s.Inventory = make([]InventoryLine, 0, len(products))
	for _, p := range products {
		total := perProduct[p.ID]
		status, _ := inventory.Classify(total, p.ReorderPoint)
		if inventory.NeedsAttention(status) {
			s.LowStockCount++
		}
		s.Inventory = append(s.Inventory, InventoryLine{
			ProductID:     p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Category:      p.Category,
			TotalQuantity: total,
			ReorderPoint:  p.ReorderPoint,
			Status:        status,
		})
	}
	sort.Slice(s.Inventory, func(i, j int) bool {
		return s.Inventory[i].ProductID < s.Inventory[j].ProductID
	})

	return s
}
