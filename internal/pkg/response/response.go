package response

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	json.NewEncoder(w).Encode(payload)
}

// Error writes err as {success:false, message, code}; unclassified errors are logged and hidden.
func Error(w http.ResponseWriter, log logger.ZapLogger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	}
	JSON(w, status, ErrorBody{
		Success: false,
		Message: apperr.MessageOf(err),
		Code:    apperr.CodeOf(err),
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Success: false, Message: message, Code: "invalid_request"})
}
