package dashboard

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	FindProducts(ctx context.Context) ([]model.Product, error)
	FindWarehouses(ctx context.Context) ([]model.Warehouse, error)
	FindStock(ctx context.Context) ([]model.StockRecord, error)
}
