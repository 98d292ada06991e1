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

func (r *StoreRepository) FindProducts(ctx context.Context) ([]model.Product, error) {
	return store.Load[model.Product](ctx, r.store, store.Products)
}

func (r *StoreRepository) FindWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return store.Load[model.Warehouse](ctx, r.store, store.Warehouses)
}

func (r *StoreRepository) FindStock(ctx context.Context) ([]model.StockRecord, error) {
	return store.Load[model.StockRecord](ctx, r.store, store.Stock)
}
