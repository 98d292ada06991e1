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

func (r *StoreRepository) LoadTransfers(ctx context.Context) ([]model.TransferRecord, error) {
	return store.Load[model.TransferRecord](ctx, r.store, store.Transfers)
}

func (r *StoreRepository) LoadProducts(ctx context.Context) ([]model.Product, error) {
	return store.Load[model.Product](ctx, r.store, store.Products)
}

func (r *StoreRepository) LoadWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return store.Load[model.Warehouse](ctx, r.store, store.Warehouses)
}

func (r *StoreRepository) SaveTransfer(ctx context.Context, stock []model.StockRecord, history []model.TransferRecord) error {
	batch := store.NewBatch().
		Put(store.Stock, stock).
		Put(store.Transfers, history)
	return r.store.Commit(ctx, batch)
}
