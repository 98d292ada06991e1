package warehouse

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/warehouse/dto"
)

type UseCase interface {
	CreateWarehouse(ctx context.Context, input *dto.CreateWarehouseInput) (*model.Warehouse, error)
	GetWarehouse(ctx context.Context, id int) (*model.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	UpdateWarehouse(ctx context.Context, input *dto.UpdateWarehouseInput) (*model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id int) error
}
