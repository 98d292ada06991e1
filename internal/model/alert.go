package model

import (
	"fmt"
	"time"
)

type StockStatus string

const (
	StatusCritical    StockStatus = "critical"
	StatusLow         StockStatus = "low"
	StatusAdequate    StockStatus = "adequate"
	StatusOverstocked StockStatus = "overstocked"
)

type AlertAction string

const (
	ActionPending   AlertAction = "pending"
	ActionResolved  AlertAction = "resolved"
	ActionReordered AlertAction = "reordered"
)

// Alert is a derived view over one stock line; only Action survives regeneration.
type Alert struct {
	ID            string      `json:"id"`
	ProductID     int         `json:"productId"`
	WarehouseID   int         `json:"warehouseId"`
	ProductName   string      `json:"productName"`
	WarehouseName string      `json:"warehouseName"`
	Status        StockStatus `json:"status"`
	Quantity      int         `json:"quantity"`
	ReorderQty    int         `json:"reorderQty"`
	Action        AlertAction `json:"action"`
}

func AlertID(productID, warehouseID int, status StockStatus) string {
	return fmt.Sprintf("%d-%d-%s", productID, warehouseID, status)
}

// OrderHistoryEntry is appended when an alert is reordered.
type OrderHistoryEntry struct {
	Timestamp   time.Time   `json:"timestamp"`
	AlertID     string      `json:"alertId"`
	ProductID   int         `json:"productId"`
	WarehouseID int         `json:"warehouseId"`
	Product     string      `json:"product"`
	Warehouse   string      `json:"warehouse"`
	OrderedQty  int         `json:"orderedQty"`
	Action      AlertAction `json:"action"`
}
