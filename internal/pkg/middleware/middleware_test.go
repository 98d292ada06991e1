package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
)

func TestRequestLogger_SetsRequestID(t *testing.T) {
	h := RequestLogger(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected status to pass through, got %d", rec.Code)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected a generated request id header")
	}
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	h := RequestLogger(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("Expected request id req-42, got %q", got)
	}
}
