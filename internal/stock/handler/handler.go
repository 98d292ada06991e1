package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock/dto"
	"github.com/gorilla/mux"
)

type StockHandler struct {
	uc     stock.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock", h.ListStock).Methods(http.MethodGet)
	router.HandleFunc("/api/stock", h.CreateStock).Methods(http.MethodPost)
	router.HandleFunc("/api/stock/adjust", h.AdjustStock).Methods(http.MethodPost)
	router.HandleFunc("/api/stock/{id:[0-9]+}", h.GetStock).Methods(http.MethodGet)
	router.HandleFunc("/api/stock/{id:[0-9]+}", h.UpdateStock).Methods(http.MethodPut)
	router.HandleFunc("/api/stock/{id:[0-9]+}", h.DeleteStock).Methods(http.MethodDelete)
}

func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	var filters dto.StockFilters
	q := r.URL.Query()
	for name, dst := range map[string]*int{"productId": &filters.ProductID, "warehouseId": &filters.WarehouseID} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "invalid "+name)
			return
		}
		*dst = n
	}

	records, err := h.uc.ListStock(r.Context(), &filters)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, records)
}

func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateStockInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}

	rec, err := h.uc.CreateStock(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, rec)
}

func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	rec, err := h.uc.GetStock(r.Context(), id)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var input dto.UpdateStockInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}
	input.ID = id

	rec, err := h.uc.UpdateStock(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.uc.DeleteStock(r.Context(), id); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StockHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var input dto.AdjustStockInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}

	rec, err := h.uc.AdjustStock(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}
