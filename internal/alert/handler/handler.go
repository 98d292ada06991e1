package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/alert"
	"github.com/fekuna/omnipos-warehouse-service/internal/alert/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/gorilla/mux"
)

type AlertHandler struct {
	uc     alert.UseCase
	logger logger.ZapLogger
}

func NewAlertHandler(uc alert.UseCase, log logger.ZapLogger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AlertHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/alerts", h.ListAlerts).Methods(http.MethodGet)
	router.HandleFunc("/api/alerts/action", h.ApplyAction).Methods(http.MethodPost)
	router.HandleFunc("/api/alerts/orders", h.ListOrderHistory).Methods(http.MethodGet)
	router.HandleFunc("/api/alerts/{id}", h.DismissAlert).Methods(http.MethodDelete)
}

func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.uc.ListAlerts(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, alerts)
}

func (h *AlertHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	var req dto.ActionRequest
	if err := request.Decode(r, &req); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}
	h.apply(w, r, req.ID, model.AlertAction(req.ActionType))
}

// DismissAlert resolves an alert by id.
func (h *AlertHandler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, mux.Vars(r)["id"], model.ActionResolved)
}

func (h *AlertHandler) apply(w http.ResponseWriter, r *http.Request, id string, action model.AlertAction) {
	res, err := h.uc.ApplyAction(r.Context(), id, action)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	message := "alert resolved"
	if action == model.ActionReordered {
		message = "reorder placed"
	}
	response.JSON(w, http.StatusOK, dto.ActionResponse{
		Success: true,
		Message: message,
		Alert:   res.Alert,
		Alerts:  res.Alerts,
		Order:   res.Order,
	})
}

func (h *AlertHandler) ListOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.ListOrderHistory(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, orders)
}
