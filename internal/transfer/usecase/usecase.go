package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/transfer"
	"go.uber.org/zap"
)

const EventStockTransferred = "stock.transferred"

type transferUseCase struct {
	repo     transfer.Repository
	locker   lock.Locker
	producer broker.Producer
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewTransferUseCase(repo transfer.Repository, locker lock.Locker, producer broker.Producer, log logger.ZapLogger) transfer.UseCase {
	return &transferUseCase{
		repo:     repo,
		locker:   locker,
		producer: producer,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *transferUseCase) Transfer(ctx context.Context, req transfer.Request) (*transfer.Result, error) {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return nil, err
	}
	defer unlock()

	stock, err := uc.repo.LoadStock(ctx)
	if err != nil {
		return nil, err
	}
	history, err := uc.repo.LoadTransfers(ctx)
	if err != nil {
		return nil, err
	}

	res, err := transfer.Apply(stock, history, req, uc.now())
	if err == nil {
		err = uc.checkReferences(ctx, req)
	}
	if err != nil {
		if apperr.KindOf(err) != apperr.KindInternal {
			uc.logger.Info("transfer rejected",
				zap.Int("product_id", req.ProductID),
				zap.Int("from_warehouse_id", req.FromWarehouseID),
				zap.Int("to_warehouse_id", req.ToWarehouseID),
				zap.String("reason", apperr.CodeOf(err)),
			)
		}
		return nil, err
	}

	if err := uc.repo.SaveTransfer(ctx, res.Stock, res.History); err != nil {
		uc.logger.Error("failed to persist transfer", zap.Int("transfer_id", res.Entry.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("stock transferred",
		zap.Int("transfer_id", res.Entry.ID),
		zap.Int("product_id", req.ProductID),
		zap.Int("from_warehouse_id", req.FromWarehouseID),
		zap.Int("to_warehouse_id", req.ToWarehouseID),
		zap.Int("quantity", req.Quantity),
	)

	event := broker.NewEvent(EventStockTransferred, strconv.Itoa(req.ProductID), res.Entry)
	if err := uc.producer.Publish(ctx, event); err != nil {
		// the transfer is already committed
		uc.logger.Warn("failed to publish transfer event", zap.Int("transfer_id", res.Entry.ID), zap.Error(err))
	}

	return res, nil
}

func (uc *transferUseCase) checkReferences(ctx context.Context, req transfer.Request) error {
	products, err := uc.repo.LoadProducts(ctx)
	if err != nil {
		return err
	}
	warehouses, err := uc.repo.LoadWarehouses(ctx)
	if err != nil {
		return err
	}
	return transfer.CheckReferences(products, warehouses, req)
}

func (uc *transferUseCase) ListTransfers(ctx context.Context) ([]model.TransferRecord, error) {
	return uc.repo.LoadTransfers(ctx)
}
