package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
)

var errTest = New(KindBusinessRule, "insufficient_stock", "insufficient stock")

func TestWrappedSentinelKeepsClassification(t *testing.T) {
	err := fmt.Errorf("transfer product 7: %w", errTest)

	if !errors.Is(err, errTest) {
		t.Fatal("Expected wrapped error to match sentinel")
	}
	if KindOf(err) != KindBusinessRule {
		t.Errorf("Expected business rule kind, got %v", KindOf(err))
	}
	if CodeOf(err) != "insufficient_stock" {
		t.Errorf("Expected code insufficient_stock, got %s", CodeOf(err))
	}
	if MessageOf(err) != "insufficient stock" {
		t.Errorf("Expected sentinel message, got %s", MessageOf(err))
	}
}

func TestMappings(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   codes.Code
	}{
		{"validation", New(KindValidation, "v", "v"), http.StatusBadRequest, codes.InvalidArgument},
		{"not found", New(KindNotFound, "n", "n"), http.StatusNotFound, codes.NotFound},
		{"conflict", New(KindConflict, "c", "c"), http.StatusConflict, codes.AlreadyExists},
		{"business rule", errTest, http.StatusBadRequest, codes.FailedPrecondition},
		{"plain error", errors.New("disk on fire"), http.StatusInternalServerError, codes.Internal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, got)
			}
			if got := GRPCCode(tc.err); got != tc.wantCode {
				t.Errorf("Expected code %v, got %v", tc.wantCode, got)
			}
		})
	}

	if MessageOf(errors.New("disk on fire")) != "internal server error" {
		t.Error("Expected internal details to be hidden")
	}
}
