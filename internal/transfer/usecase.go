package transfer

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type UseCase interface {
	Transfer(ctx context.Context, req Request) (*Result, error)
	ListTransfers(ctx context.Context) ([]model.TransferRecord, error)
}
