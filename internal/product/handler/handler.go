package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/gorilla/mux"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/products", h.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/api/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	router.HandleFunc("/api/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := h.uc.ListProducts(r.Context(), &dto.ProductFilters{
		Category:    q.Get("category"),
		SearchQuery: q.Get("q"),
		SortBy:      q.Get("sort"),
		SortOrder:   q.Get("order"),
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var input dto.UpdateProductInput
	if err := request.Decode(r, &input); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}
	input.ID = id

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
