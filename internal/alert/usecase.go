package alert

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type UseCase interface {
	ListAlerts(ctx context.Context) ([]model.Alert, error)
	ApplyAction(ctx context.Context, id string, action model.AlertAction) (*ActionResult, error)
	ListOrderHistory(ctx context.Context) ([]model.OrderHistoryEntry, error)
}
