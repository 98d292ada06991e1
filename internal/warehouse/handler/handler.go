package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/fekuna/omnipos-warehouse-service/internal/warehouse"
	"github.com/fekuna/omnipos-warehouse-service/internal/warehouse/dto"
	"github.com/gorilla/mux"
)

type WarehouseHandler struct {
	uc     warehouse.UseCase
	logger logger.ZapLogger
}

func NewWarehouseHandler(uc warehouse.UseCase, log logger.ZapLogger) *WarehouseHandler {
	return &WarehouseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *WarehouseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/warehouses", h.ListWarehouses).Methods(http.MethodGet)
	router.HandleFunc("/api/warehouses", h.CreateWarehouse).Methods(http.MethodPost)
	router.HandleFunc("/api/warehouses/{id}", h.GetWarehouse).Methods(http.MethodGet)
	router.HandleFunc("/api/warehouses/{id}", h.UpdateWarehouse).Methods(http.MethodPut)
	router.HandleFunc("/api/warehouses/{id}", h.DeleteWarehouse).Methods(http.MethodDelete)
}

func (h *WarehouseHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.uc.ListWarehouses(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, warehouses)
}

func (h *WarehouseHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateWarehouseInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}

	wh, err := h.uc.CreateWarehouse(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, wh)
}

func (h *WarehouseHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	wh, err := h.uc.GetWarehouse(r.Context(), id)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, wh)
}

func (h *WarehouseHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var input dto.UpdateWarehouseInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}
	input.ID = id

	wh, err := h.uc.UpdateWarehouse(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, wh)
}

func (h *WarehouseHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.uc.DeleteWarehouse(r.Context(), id); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
