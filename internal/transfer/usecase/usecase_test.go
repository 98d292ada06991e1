package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/internal/transfer"
	"github.com/fekuna/omnipos-warehouse-service/internal/transfer/repository"
)

type mockRepo struct {
	stock      []model.StockRecord
	transfers  []model.TransferRecord
	products   []model.Product
	warehouses []model.Warehouse
	saveErr    error
	saves      int
}

func (m *mockRepo) LoadStock(context.Context) ([]model.StockRecord, error) {
	return model.CloneStock(m.stock), nil
}

func (m *mockRepo) LoadTransfers(context.Context) ([]model.TransferRecord, error) {
	out := make([]model.TransferRecord, len(m.transfers))
	copy(out, m.transfers)
	return out, nil
}

func (m *mockRepo) LoadProducts(context.Context) ([]model.Product, error) {
	if m.products == nil {
		return []model.Product{{ID: 1, SKU: "P-1", Name: "Widget"}, {ID: 2, SKU: "P-2", Name: "Gadget"}}, nil
	}
	return m.products, nil
}

func (m *mockRepo) LoadWarehouses(context.Context) ([]model.Warehouse, error) {
	if m.warehouses == nil {
		return []model.Warehouse{{ID: 1, Code: "W1"}, {ID: 2, Code: "W2"}, {ID: 3, Code: "W3"}}, nil
	}
	return m.warehouses, nil
}

func (m *mockRepo) SaveTransfer(_ context.Context, stock []model.StockRecord, history []model.TransferRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.stock = stock
	m.transfers = history
	return nil
}

type mockProducer struct {
	events []*broker.Event
	err    error
}

func (m *mockProducer) Publish(_ context.Context, e *broker.Event) error {
	m.events = append(m.events, e)
	return m.err
}

func (m *mockProducer) Close() error { return nil }

func newUseCase(repo *mockRepo, producer *mockProducer) *transferUseCase {
	uc := NewTransferUseCase(repo, lock.NewLocalLocker(), producer, logger.NewNop()).(*transferUseCase)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestTransfer_PersistsStockAndHistoryTogether(t *testing.T) {
	repo := &mockRepo{stock: []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 50}}}
	producer := &mockProducer{}
	uc := newUseCase(repo, producer)

	res, err := uc.Transfer(context.Background(), transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 30})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	if repo.saves != 1 {
		t.Fatalf("Expected one combined save, got %d", repo.saves)
	}
	if repo.stock[0].Quantity != 20 || repo.stock[1].Quantity != 30 {
		t.Errorf("Unexpected persisted stock %+v", repo.stock)
	}
	if len(repo.transfers) != 1 || repo.transfers[0].ID != res.Entry.ID {
		t.Errorf("Expected persisted history to hold the new entry, got %+v", repo.transfers)
	}
	if len(producer.events) != 1 || producer.events[0].EventType != EventStockTransferred {
		t.Errorf("Expected one %s event, got %+v", EventStockTransferred, producer.events)
	}
}

func TestTransfer_RejectedTransferChangesNothing(t *testing.T) {
	repo := &mockRepo{stock: []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 5}}}
	producer := &mockProducer{}
	uc := newUseCase(repo, producer)

	_, err := uc.Transfer(context.Background(), transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 6})
	if !errors.Is(err, transfer.ErrInsufficientStock) {
		t.Fatalf("Expected ErrInsufficientStock, got %v", err)
	}
	if repo.saves != 0 || len(producer.events) != 0 {
		t.Error("Expected no save and no event for a rejected transfer")
	}
}

func TestTransfer_SaveFailureIsReturned(t *testing.T) {
	repo := &mockRepo{
		stock:   []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 5}},
		saveErr: errors.New("disk full"),
	}
	producer := &mockProducer{}
	uc := newUseCase(repo, producer)

	_, err := uc.Transfer(context.Background(), transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 1})
	if !errors.Is(err, repo.saveErr) {
		t.Fatalf("Expected save error, got %v", err)
	}
	if len(producer.events) != 0 {
		t.Error("Expected no event when the save fails")
	}
}

func TestTransfer_PublishFailureDoesNotFailTransfer(t *testing.T) {
	repo := &mockRepo{stock: []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 5}}}
	uc := newUseCase(repo, &mockProducer{err: errors.New("broker down")})

	if _, err := uc.Transfer(context.Background(), transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("Expected transfer to succeed, got %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("Expected transfer to be saved, got %d saves", repo.saves)
	}
}

func TestTransfer_SequentialTransfersDoNotLoseUpdates(t *testing.T) {
	repo := &mockRepo{stock: []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 10}}}
	uc := newUseCase(repo, &mockProducer{})

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := uc.Transfer(context.Background(), transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 1})
			done <- err
		}()
	}
	for i := 0; i < 10; i++ {
		if err := <-done; err != nil {
			t.Fatalf("Transfer failed: %v", err)
		}
	}

	if repo.stock[0].Quantity != 0 || repo.stock[1].Quantity != 10 {
		t.Errorf("Expected 0/10 after ten transfers, got %+v", repo.stock)
	}
	if len(repo.transfers) != 10 {
		t.Errorf("Expected 10 history entries, got %d", len(repo.transfers))
	}
}

func TestTransfer_UnknownDestinationChangesNothing(t *testing.T) {
	tests := []struct {
		name string
		req  transfer.Request
		want error
	}{
		{"unknown warehouse", transfer.Request{FromWarehouseID: 1, ToWarehouseID: 999, ProductID: 1, Quantity: 30}, transfer.ErrDestinationNotFound},
		{"unknown product", transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 30}, transfer.ErrProductNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepo{stock: []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 50}}}
			if tc.want == transfer.ErrProductNotFound {
				// the stock line outlived its product
				repo.products = []model.Product{}
			}
			producer := &mockProducer{}
			uc := newUseCase(repo, producer)

			_, err := uc.Transfer(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Expected %v, got %v", tc.want, err)
			}
			if repo.saves != 0 || len(producer.events) != 0 {
				t.Error("Expected no save and no event")
			}
			if len(repo.stock) != 1 || repo.stock[0].Quantity != 50 {
				t.Errorf("Expected stock to be unchanged, got %+v", repo.stock)
			}
		})
	}
}

func newInstance(t *testing.T, dir string, locker lock.Locker, ttl time.Duration) (*transferUseCase, *store.Store) {
	t.Helper()
	backend, err := store.NewFileBackend(dir, logger.NewNop())
	if err != nil {
		t.Fatalf("NewFileBackend failed: %v", err)
	}
	s := store.New(backend, cache.NewTTL[store.Collection, []byte](ttl, nil), logger.NewNop())
	uc := NewTransferUseCase(repository.NewStoreRepository(s), locker, &mockProducer{}, logger.NewNop()).(*transferUseCase)
	return uc, s
}

func TestTransfer_InstancesSharingALockSeeEachOthersWrites(t *testing.T) {
	dir := t.TempDir()
	locker := lock.NewLocalLocker()
	a, storeA := newInstance(t, dir, locker, time.Minute)
	b, storeB := newInstance(t, dir, locker, time.Minute)
	ctx := context.Background()

	seed := store.NewBatch().
		Put(store.Products, []model.Product{{ID: 1, SKU: "P-1", Name: "Widget", ReorderPoint: 10}}).
		Put(store.Warehouses, []model.Warehouse{{ID: 1, Code: "W1"}, {ID: 2, Code: "W2"}, {ID: 3, Code: "W3"}}).
		Put(store.Stock, []model.StockRecord{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 50}})
	if err := storeA.Commit(ctx, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// both instances hold a cached snapshot with 50 units at W1
	for _, s := range []*store.Store{storeA, storeB} {
		if _, err := store.Load[model.StockRecord](ctx, s, store.Stock); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if _, err := store.Load[model.TransferRecord](ctx, s, store.Transfers); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	if _, err := a.Transfer(ctx, transfer.Request{FromWarehouseID: 1, ToWarehouseID: 2, ProductID: 1, Quantity: 30}); err != nil {
		t.Fatalf("Transfer on A failed: %v", err)
	}
	if _, err := b.Transfer(ctx, transfer.Request{FromWarehouseID: 1, ToWarehouseID: 3, ProductID: 1, Quantity: 40}); !errors.Is(err, transfer.ErrInsufficientStock) {
		t.Fatalf("Expected B to see only 20 units left, got %v", err)
	}
	if _, err := b.Transfer(ctx, transfer.Request{FromWarehouseID: 1, ToWarehouseID: 3, ProductID: 1, Quantity: 20}); err != nil {
		t.Fatalf("Transfer on B failed: %v", err)
	}

	_, fresh := newInstance(t, dir, locker, 0)
	stock, err := store.Load[model.StockRecord](ctx, fresh, store.Stock)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := map[int]int{1: 0, 2: 30, 3: 20}
	if len(stock) != len(want) {
		t.Fatalf("Expected %d stock lines, got %+v", len(want), stock)
	}
	for _, rec := range stock {
		if want[rec.WarehouseID] != rec.Quantity {
			t.Errorf("Warehouse %d: expected %d, got %d", rec.WarehouseID, want[rec.WarehouseID], rec.Quantity)
		}
	}

	history, err := store.Load[model.TransferRecord](ctx, fresh, store.Transfers)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(history) != 2 || history[0].ToWarehouseID != 3 || history[1].ToWarehouseID != 2 {
		t.Errorf("Expected both transfers most recent first, got %+v", history)
	}
}
