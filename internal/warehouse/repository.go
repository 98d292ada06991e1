package warehouse

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Warehouse, error)
	SaveAll(ctx context.Context, warehouses []model.Warehouse) error
}
