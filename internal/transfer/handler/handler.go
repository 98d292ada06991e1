package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/fekuna/omnipos-warehouse-service/internal/transfer"
	"github.com/fekuna/omnipos-warehouse-service/internal/transfer/dto"
	"github.com/gorilla/mux"
)

type TransferHandler struct {
	uc     transfer.UseCase
	logger logger.ZapLogger
}

func NewTransferHandler(uc transfer.UseCase, log logger.ZapLogger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TransferHandler) RegisterRoutes(router *mux.Router) {
	for _, path := range []string{"/api/transfers", "/api/transfer"} {
		router.HandleFunc(path, h.ListTransfers).Methods(http.MethodGet)
		router.HandleFunc(path, h.CreateTransfer).Methods(http.MethodPost)
	}
}

func (h *TransferHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	history, err := h.uc.ListTransfers(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, history)
}

func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := request.Decode(r, &req); err != nil {
		response.BadRequest(w, "invalid request payload")
		return
	}

	res, err := h.uc.Transfer(r.Context(), transfer.Request{
		FromWarehouseID: req.FromWarehouseID.Int(),
		ToWarehouseID:   req.ToWarehouseID.Int(),
		ProductID:       req.ProductID.Int(),
		Quantity:        req.Quantity.Int(),
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.TransferResponse{
		Success:      true,
		Message:      "transfer successful",
		Transfer:     res.Entry,
		UpdatedStock: res.Stock,
	})
}
