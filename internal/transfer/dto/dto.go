package dto

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
)

type TransferRequest struct {
	FromWarehouseID request.Int `json:"fromWarehouseId"`
	ToWarehouseID   request.Int `json:"toWarehouseId"`
	ProductID       request.Int `json:"productId"`
	Quantity        request.Int `json:"quantity"`
}

type TransferResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Transfer     model.TransferRecord `json:"transfer"`
	UpdatedStock []model.StockRecord  `json:"updatedStock"`
}
