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

func (r *StoreRepository) FindAll(ctx context.Context) ([]model.Warehouse, error) {
	return store.Load[model.Warehouse](ctx, r.store, store.Warehouses)
}

func (r *StoreRepository) SaveAll(ctx context.Context, warehouses []model.Warehouse) error {
	return r.store.Commit(ctx, store.NewBatch().Put(store.Warehouses, warehouses))
}
