package transfer

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	LoadStock(ctx context.Context) ([]model.StockRecord, error)
	LoadTransfers(ctx context.Context) ([]model.TransferRecord, error)
	LoadProducts(ctx context.Context) ([]model.Product, error)
	LoadWarehouses(ctx context.Context) ([]model.Warehouse, error)

	// SaveTransfer writes the stock set and the transfer history as one unit.
	SaveTransfer(ctx context.Context, stock []model.StockRecord, history []model.TransferRecord) error
}
