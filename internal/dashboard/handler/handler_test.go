package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type mockUseCase struct {
	summary *dashboard.Summary
	err     error
}

func (m *mockUseCase) GetSummary(context.Context) (*dashboard.Summary, error) {
	return m.summary, m.err
}

func serve(uc dashboard.UseCase) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	NewDashboardHandler(uc, logger.NewNop()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	return rec
}

func TestGetSummary(t *testing.T) {
	rec := serve(&mockUseCase{summary: &dashboard.Summary{
		ProductCount: 2,
		TotalUnits:   40,
		TotalValue:   decimal.RequireFromString("123.45"),
	}})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["productCount"] != float64(2) {
		t.Errorf("Expected productCount 2, got %v", body["productCount"])
	}
	if body["totalValue"] != "123.45" {
		t.Errorf("Expected totalValue \"123.45\", got %v", body["totalValue"])
	}
}

func TestGetSummary_StoreFailure(t *testing.T) {
	rec := serve(&mockUseCase{err: errors.New("disk gone")})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	var body map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&body)
	if body["message"] != "internal server error" {
		t.Errorf("Expected the cause to be hidden, got %v", body["message"])
	}
}
