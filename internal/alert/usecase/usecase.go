package usecase

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/alert"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
)

const EventAlertReordered = "alert.reordered"

type alertUseCase struct {
	repo     alert.Repository
	locker   lock.Locker
	producer broker.Producer
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewAlertUseCase(repo alert.Repository, locker lock.Locker, producer broker.Producer, log logger.ZapLogger) alert.UseCase {
	return &alertUseCase{
		repo:     repo,
		locker:   locker,
		producer: producer,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *alertUseCase) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return nil, err
	}
	defer unlock()

	stock, err := uc.repo.LoadStock(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := model.IndexStock(stock); err != nil {
		return nil, err
	}
	products, err := uc.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.repo.LoadWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	previous, err := uc.repo.LoadAlerts(ctx)
	if err != nil {
		return nil, err
	}

	alerts := alert.Generate(stock, products, warehouses, previous)
	if slices.Equal(alerts, previous) {
		return alerts, nil
	}

	if err := uc.repo.SaveAlerts(ctx, alerts); err != nil {
		uc.logger.Error("failed to persist alerts", zap.Error(err))
		return nil, err
	}
	uc.logger.Debug("alerts regenerated", zap.Int("count", len(alerts)))
	return alerts, nil
}

func (uc *alertUseCase) ApplyAction(ctx context.Context, id string, action model.AlertAction) (*alert.ActionResult, error) {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return nil, err
	}
	defer unlock()

	alerts, err := uc.repo.LoadAlerts(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := uc.repo.LoadStock(ctx)
	if err != nil {
		return nil, err
	}

	res, err := alert.ApplyAction(alerts, stock, id, action, uc.now())
	if err != nil {
		return nil, err
	}

	if res.Order == nil {
		if err := uc.repo.SaveAlerts(ctx, res.Alerts); err != nil {
			uc.logger.Error("failed to persist alert action", zap.String("alert_id", id), zap.Error(err))
			return nil, err
		}
		uc.logger.Info("alert updated", zap.String("alert_id", id), zap.String("action", string(action)))
		return res, nil
	}

	orders, err := uc.repo.LoadOrderHistory(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, *res.Order)

	if err := uc.repo.SaveReorder(ctx, res.Alerts, res.Stock, orders); err != nil {
		uc.logger.Error("failed to persist reorder", zap.String("alert_id", id), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("alert reordered",
		zap.String("alert_id", id),
		zap.Int("product_id", res.Order.ProductID),
		zap.Int("warehouse_id", res.Order.WarehouseID),
		zap.Int("ordered_qty", res.Order.OrderedQty),
	)

	event := broker.NewEvent(EventAlertReordered, strconv.Itoa(res.Order.ProductID), res.Order)
	if err := uc.producer.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to publish reorder event", zap.String("alert_id", id), zap.Error(err))
	}
	return res, nil
}

// ListOrderHistory returns orders most recent first.
func (uc *alertUseCase) ListOrderHistory(ctx context.Context) ([]model.OrderHistoryEntry, error) {
	orders, err := uc.repo.LoadOrderHistory(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(orders)
	return orders, nil
}
