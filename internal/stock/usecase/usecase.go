package usecase

import (
	"context"
	"strconv"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock/dto"
	"go.uber.org/zap"
)

const EventStockAdjusted = "stock.adjusted"

type StockAdjustedPayload struct {
	StockID        int    `json:"stockId"`
	ProductID      int    `json:"productId"`
	WarehouseID    int    `json:"warehouseId"`
	QuantityChange int    `json:"quantityChange"`
	QuantityBefore int    `json:"quantityBefore"`
	QuantityAfter  int    `json:"quantityAfter"`
	Reason         string `json:"reason"`
	ReferenceID    string `json:"referenceId,omitempty"`
}

type stockUseCase struct {
	repo     stock.Repository
	locker   lock.Locker
	producer broker.Producer
	logger   logger.ZapLogger
}

func NewStockUseCase(repo stock.Repository, locker lock.Locker, producer broker.Producer, log logger.ZapLogger) stock.UseCase {
	return &stockUseCase{
		repo:     repo,
		locker:   locker,
		producer: producer,
		logger:   log,
	}
}

func (uc *stockUseCase) CreateStock(ctx context.Context, input *dto.CreateStockInput) (*model.StockRecord, error) {
	rec := model.StockRecord{
		ProductID:   input.ProductID.Int(),
		WarehouseID: input.WarehouseID.Int(),
		Quantity:    input.Quantity.Int(),
	}
	if rec.Quantity < 0 {
		return nil, stock.ErrNegativeQuantity
	}

	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := uc.checkReferences(ctx, rec.ProductID, rec.WarehouseID); err != nil {
		return nil, err
	}

	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := model.IndexStock(records)
	if err != nil {
		return nil, err
	}
	if _, ok := idx.Find(rec.ProductID, rec.WarehouseID); ok {
		return nil, model.ErrDuplicateStock
	}

	rec.ID = model.NextID(records, model.StockID)
	if err := uc.repo.SaveAll(ctx, append(records, rec)); err != nil {
		return nil, err
	}

	uc.logger.Info("stock record created",
		zap.Int("stock_id", rec.ID),
		zap.Int("product_id", rec.ProductID),
		zap.Int("warehouse_id", rec.WarehouseID),
	)
	return &rec, nil
}

func (uc *stockUseCase) GetStock(ctx context.Context, id int) (*model.StockRecord, error) {
	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, stock.ErrStockNotFound
}

func (uc *stockUseCase) ListStock(ctx context.Context, filters *dto.StockFilters) ([]model.StockRecord, error) {
	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if filters.ProductID == 0 && filters.WarehouseID == 0 {
		return records, nil
	}

	out := make([]model.StockRecord, 0, len(records))
	for _, r := range records {
		if filters.ProductID != 0 && r.ProductID != filters.ProductID {
			continue
		}
		if filters.WarehouseID != 0 && r.WarehouseID != filters.WarehouseID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (uc *stockUseCase) UpdateStock(ctx context.Context, input *dto.UpdateStockInput) (*model.StockRecord, error) {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	pos := -1
	for i := range records {
		if records[i].ID == input.ID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, stock.ErrStockNotFound
	}

	rec := records[pos]
	if input.ProductID != nil {
		rec.ProductID = input.ProductID.Int()
	}
	if input.WarehouseID != nil {
		rec.WarehouseID = input.WarehouseID.Int()
	}
	if input.Quantity != nil {
		rec.Quantity = input.Quantity.Int()
	}
	if rec.Quantity < 0 {
		return nil, stock.ErrNegativeQuantity
	}
	if rec.Key() != records[pos].Key() {
		if err := uc.checkReferences(ctx, rec.ProductID, rec.WarehouseID); err != nil {
			return nil, err
		}
	}

	records[pos] = rec
	if _, err := model.IndexStock(records); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveAll(ctx, records); err != nil {
		return nil, err
	}

	uc.logger.Info("stock record updated", zap.Int("stock_id", rec.ID), zap.Int("quantity", rec.Quantity))
	return &rec, nil
}

func (uc *stockUseCase) DeleteStock(ctx context.Context, id int) error {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return err
	}
	defer unlock()

	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID != id {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		if err := uc.repo.SaveAll(ctx, records); err != nil {
			return err
		}
		uc.logger.Info("stock record deleted", zap.Int("stock_id", id))
		return nil
	}
	return stock.ErrStockNotFound
}

func (uc *stockUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error) {
	productID := input.ProductID.Int()
	warehouseID := input.WarehouseID.Int()
	delta := input.Delta.Int()
	if delta == 0 {
		return nil, stock.ErrZeroDelta
	}

	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyInventory)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := model.IndexStock(records)
	if err != nil {
		return nil, err
	}

	pos, ok := idx.Find(productID, warehouseID)
	if !ok {
		if delta < 0 {
			return nil, stock.ErrStockNotFound
		}
		if err := uc.checkReferences(ctx, productID, warehouseID); err != nil {
			return nil, err
		}
		records = append(records, model.StockRecord{
			ID:          model.NextID(records, model.StockID),
			ProductID:   productID,
			WarehouseID: warehouseID,
		})
		pos = len(records) - 1
	}

	quantityBefore := records[pos].Quantity
	quantityAfter, ok := model.AddQuantity(quantityBefore, delta)
	if !ok {
		return nil, stock.ErrQuantityOverflow
	}
	if quantityAfter < 0 {
		return nil, stock.ErrInsufficientStock
	}
	records[pos].Quantity = quantityAfter
	rec := records[pos]

	if err := uc.repo.SaveAll(ctx, records); err != nil {
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.Int("stock_id", rec.ID),
		zap.Int("quantity_before", quantityBefore),
		zap.Int("quantity_after", rec.Quantity),
		zap.String("reason", input.Reason),
	)

	event := broker.NewEvent(EventStockAdjusted, strconv.Itoa(productID), StockAdjustedPayload{
		StockID:        rec.ID,
		ProductID:      productID,
		WarehouseID:    warehouseID,
		QuantityChange: delta,
		QuantityBefore: quantityBefore,
		QuantityAfter:  rec.Quantity,
		Reason:         input.Reason,
		ReferenceID:    input.ReferenceID,
	})
	if err := uc.producer.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to publish stock adjustment", zap.Int("stock_id", rec.ID), zap.Error(err))
	}
	return &rec, nil
}

func (uc *stockUseCase) checkReferences(ctx context.Context, productID, warehouseID int) error {
	products, err := uc.repo.FindProducts(ctx)
	if err != nil {
		return err
	}
	if p, _ := model.FindProduct(products, productID); p == nil {
		return stock.ErrProductNotFound
	}

	warehouses, err := uc.repo.FindWarehouses(ctx)
	if err != nil {
		return err
	}
	if w, _ := model.FindWarehouse(warehouses, warehouseID); w == nil {
		return stock.ErrWarehouseNotFound
	}
	return nil
}
