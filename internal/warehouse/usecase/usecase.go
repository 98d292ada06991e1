package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/warehouse"
	"github.com/fekuna/omnipos-warehouse-service/internal/warehouse/dto"
	"go.uber.org/zap"
)

type warehouseUseCase struct {
	repo   warehouse.Repository
	locker lock.Locker
	logger logger.ZapLogger
}

func NewWarehouseUseCase(repo warehouse.Repository, locker lock.Locker, log logger.ZapLogger) warehouse.UseCase {
	return &warehouseUseCase{
		repo:   repo,
		locker: locker,
		logger: log,
	}
}

func (uc *warehouseUseCase) CreateWarehouse(ctx context.Context, input *dto.CreateWarehouseInput) (*model.Warehouse, error) {
	w := model.Warehouse{
		Code:     strings.TrimSpace(input.Code),
		Name:     strings.TrimSpace(input.Name),
		Location: strings.TrimSpace(input.Location),
	}
	if err := validate(&w); err != nil {
		return nil, err
	}

	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyWarehouses)
	if err != nil {
		return nil, err
	}
	defer unlock()

	warehouses, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !isCodeUnique(warehouses, w.Code, 0) {
		return nil, warehouse.ErrDuplicateCode
	}

	w.ID = model.NextID(warehouses, func(w model.Warehouse) int { return w.ID })
	if err := uc.repo.SaveAll(ctx, append(warehouses, w)); err != nil {
		return nil, err
	}

	uc.logger.Info("warehouse created", zap.Int("warehouse_id", w.ID), zap.String("code", w.Code))
	return &w, nil
}

func (uc *warehouseUseCase) GetWarehouse(ctx context.Context, id int) (*model.Warehouse, error) {
	warehouses, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	w, _ := model.FindWarehouse(warehouses, id)
	if w == nil {
		return nil, warehouse.ErrWarehouseNotFound
	}
	return w, nil
}

func (uc *warehouseUseCase) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *warehouseUseCase) UpdateWarehouse(ctx context.Context, input *dto.UpdateWarehouseInput) (*model.Warehouse, error) {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyWarehouses)
	if err != nil {
		return nil, err
	}
	defer unlock()

	warehouses, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, idx := model.FindWarehouse(warehouses, input.ID)
	if existing == nil {
		return nil, warehouse.ErrWarehouseNotFound
	}

	w := *existing
	if input.Code != nil {
		w.Code = strings.TrimSpace(*input.Code)
	}
	if input.Name != nil {
		w.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		w.Location = strings.TrimSpace(*input.Location)
	}
	if err := validate(&w); err != nil {
		return nil, err
	}
	if !isCodeUnique(warehouses, w.Code, w.ID) {
		return nil, warehouse.ErrDuplicateCode
	}

	warehouses[idx] = w
	if err := uc.repo.SaveAll(ctx, warehouses); err != nil {
		return nil, err
	}

	uc.logger.Info("warehouse updated", zap.Int("warehouse_id", w.ID))
	return &w, nil
}

func (uc *warehouseUseCase) DeleteWarehouse(ctx context.Context, id int) error {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyWarehouses)
	if err != nil {
		return err
	}
	defer unlock()

	warehouses, err := uc.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	_, idx := model.FindWarehouse(warehouses, id)
	if idx < 0 {
		return warehouse.ErrWarehouseNotFound
	}

	warehouses = append(warehouses[:idx], warehouses[idx+1:]...)
	if err := uc.repo.SaveAll(ctx, warehouses); err != nil {
		return err
	}

	uc.logger.Info("warehouse deleted", zap.Int("warehouse_id", id))
	return nil
}

func validate(w *model.Warehouse) error {
	if w.Code == "" {
		return warehouse.ErrCodeRequired
	}
	if w.Name == "" {
		return warehouse.ErrNameRequired
	}
	return nil
}

func isCodeUnique(warehouses []model.Warehouse, code string, excludeID int) bool {
	for _, w := range warehouses {
		if w.ID != excludeID && strings.EqualFold(w.Code, code) {
			return false
		}
	}
	return true
}
