package repository

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type StoreRepository struct {
	store *store.Store
}

func NewStoreRepository(s *store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) LoadStock(ctx context.Context) ([]model.StockRecord, error) {
	return store.Load[model.StockRecord](ctx, r.store, store.Stock)
}

func (r *StoreRepository) LoadProducts(ctx context.Context) ([]model.Product, error) {
	return store.Load[model.Product](ctx, r.store, store.Products)
}

func (r *StoreRepository) LoadWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return store.Load[model.Warehouse](ctx, r.store, store.Warehouses)
}

func (r *StoreRepository) LoadAlerts(ctx context.Context) ([]model.Alert, error) {
	return store.Load[model.Alert](ctx, r.store, store.Alerts)
}

func (r *StoreRepository) LoadOrderHistory(ctx context.Context) ([]model.OrderHistoryEntry, error) {
	return store.Load[model.OrderHistoryEntry](ctx, r.store, store.OrderHistory)
}

func (r *StoreRepository) SaveAlerts(ctx context.Context, alerts []model.Alert) error {
	return r.store.Commit(ctx, store.NewBatch().Put(store.Alerts, alerts))
}

func (r *StoreRepository) SaveReorder(ctx context.Context, alerts []model.Alert, stock []model.StockRecord, orders []model.OrderHistoryEntry) error {
	batch := store.NewBatch().
		Put(store.Alerts, alerts).
		Put(store.Stock, stock).
		Put(store.OrderHistory, orders)
	return r.store.Commit(ctx, batch)
}
