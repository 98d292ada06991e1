package stock

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock/dto"
)

type UseCase interface {
	CreateStock(ctx context.Context, input *dto.CreateStockInput) (*model.StockRecord, error)
	GetStock(ctx context.Context, id int) (*model.StockRecord, error)
	ListStock(ctx context.Context, filters *dto.StockFilters) ([]model.StockRecord, error)
	UpdateStock(ctx context.Context, input *dto.UpdateStockInput) (*model.StockRecord, error)
	DeleteStock(ctx context.Context, id int) error

	// AdjustStock applies a signed delta to the record for a product and warehouse.
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error)
}
