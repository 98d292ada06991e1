package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", h.GetSummary).Methods(http.MethodGet)
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.GetSummary(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, summary)
}
