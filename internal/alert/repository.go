package alert

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	LoadStock(ctx context.Context) ([]model.StockRecord, error)
	LoadProducts(ctx context.Context) ([]model.Product, error)
	LoadWarehouses(ctx context.Context) ([]model.Warehouse, error)
	LoadAlerts(ctx context.Context) ([]model.Alert, error)
	LoadOrderHistory(ctx context.Context) ([]model.OrderHistoryEntry, error)

	SaveAlerts(ctx context.Context, alerts []model.Alert) error

	// SaveReorder writes the alerts, the stock set and the order history as one unit.
	SaveReorder(ctx context.Context, alerts []model.Alert, stock []model.StockRecord, orders []model.OrderHistoryEntry) error
}
