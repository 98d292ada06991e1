package stock

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.StockRecord, error)
	FindProducts(ctx context.Context) ([]model.Product, error)
	FindWarehouses(ctx context.Context) ([]model.Warehouse, error)
	SaveAll(ctx context.Context, stock []model.StockRecord) error
}
