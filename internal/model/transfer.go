package model

import "time"

// TransferRecord is append-only; the history is kept most recent first.
type TransferRecord struct {
	ID              int       `json:"id"`
	Date            time.Time `json:"date"`
	FromWarehouseID int       `json:"fromWarehouseId"`
	ToWarehouseID   int       `json:"toWarehouseId"`
	ProductID       int       `json:"productId"`
	Quantity        int       `json:"quantity"`
}

func TransferID(t TransferRecord) int { return t.ID }
