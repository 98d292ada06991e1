package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock/dto"
	"github.com/gorilla/mux"
)

type mockUseCase struct {
	filters  *dto.StockFilters
	adjusted *dto.AdjustStockInput
	adjErr   error
}

func (m *mockUseCase) CreateStock(_ context.Context, input *dto.CreateStockInput) (*model.StockRecord, error) {
	return &model.StockRecord{ID: 1, ProductID: input.ProductID.Int(), WarehouseID: input.WarehouseID.Int()}, nil
}

func (m *mockUseCase) GetStock(_ context.Context, id int) (*model.StockRecord, error) {
	return nil, stock.ErrStockNotFound
}

func (m *mockUseCase) ListStock(_ context.Context, filters *dto.StockFilters) ([]model.StockRecord, error) {
	m.filters = filters
	return []model.StockRecord{}, nil
}

func (m *mockUseCase) UpdateStock(_ context.Context, input *dto.UpdateStockInput) (*model.StockRecord, error) {
	return &model.StockRecord{ID: input.ID}, nil
}

func (m *mockUseCase) DeleteStock(context.Context, int) error { return nil }

func (m *mockUseCase) AdjustStock(_ context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error) {
	m.adjusted = input
	if m.adjErr != nil {
		return nil, m.adjErr
	}
	return &model.StockRecord{ID: 1, Quantity: 3}, nil
}

func serve(uc stock.UseCase, method, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	NewStockHandler(uc, logger.NewNop()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestListStock_Filters(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(uc, http.MethodGet, "/api/stock?warehouseId=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if uc.filters.WarehouseID != 3 || uc.filters.ProductID != 0 {
		t.Errorf("Unexpected filters %+v", uc.filters)
	}

	if rec := serve(uc, http.MethodGet, "/api/stock?productId=x", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad filter, got %d", rec.Code)
	}
}

func TestAdjustStock(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(uc, http.MethodPost, "/api/stock/adjust", `{"productId":"1","warehouseId":2,"delta":-2,"reason":"damaged"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if uc.adjusted.ProductID != 1 || uc.adjusted.Delta != -2 || uc.adjusted.Reason != "damaged" {
		t.Errorf("Unexpected input %+v", uc.adjusted)
	}

	uc.adjErr = stock.ErrInsufficientStock
	if rec := serve(uc, http.MethodPost, "/api/stock/adjust", `{"productId":1,"warehouseId":2,"delta":-99}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for insufficient stock, got %d", rec.Code)
	}
}

func TestStockRoutes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/stock", `{"productId":1,"warehouseId":1,"quantity":2}`, http.StatusCreated},
		{http.MethodGet, "/api/stock/5", "", http.StatusNotFound},
		{http.MethodPut, "/api/stock/5", `{"quantity":1}`, http.StatusOK},
		{http.MethodDelete, "/api/stock/5", "", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			if rec := serve(&mockUseCase{}, tc.method, tc.path, tc.body); rec.Code != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
