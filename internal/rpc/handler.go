package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/alert"
	alertDTO "github.com/fekuna/omnipos-warehouse-service/internal/alert/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/transfer"
	transferDTO "github.com/fekuna/omnipos-warehouse-service/internal/transfer/dto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type InventoryHandler struct {
	transferUC transfer.UseCase
	alertUC    alert.UseCase
	logger     logger.ZapLogger
}

func NewInventoryHandler(transferUC transfer.UseCase, alertUC alert.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		transferUC: transferUC,
		alertUC:    alertUC,
		logger:     log,
	}
}

func (h *InventoryHandler) Transfer(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req transferDTO.TransferRequest
	if err := decode(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request payload")
	}

	res, err := h.transferUC.Transfer(ctx, transfer.Request{
		FromWarehouseID: req.FromWarehouseID.Int(),
		ToWarehouseID:   req.ToWarehouseID.Int(),
		ProductID:       req.ProductID.Int(),
		Quantity:        req.Quantity.Int(),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}

	return h.encode(transferDTO.TransferResponse{
		Success:      true,
		Message:      "transfer successful",
		Transfer:     res.Entry,
		UpdatedStock: res.Stock,
	})
}

func (h *InventoryHandler) ListTransfers(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	transfers, err := h.transferUC.ListTransfers(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return h.encode(map[string]interface{}{"transfers": transfers})
}

func (h *InventoryHandler) ListAlerts(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	alerts, err := h.alertUC.ListAlerts(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return h.encode(map[string]interface{}{"alerts": alerts})
}

func (h *InventoryHandler) ApplyAlertAction(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req alertDTO.ActionRequest
	if err := decode(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request payload")
	}

	action := model.AlertAction(req.ActionType)
	res, err := h.alertUC.ApplyAction(ctx, req.ID, action)
	if err != nil {
		return nil, h.toStatus(err)
	}

	message := "alert resolved"
	if action == model.ActionReordered {
		message = "reorder placed"
	}
	return h.encode(alertDTO.ActionResponse{
		Success: true,
		Message: message,
		Alert:   res.Alert,
		Alerts:  res.Alerts,
		Order:   res.Order,
	})
}

func (h *InventoryHandler) toStatus(err error) error {
	code := apperr.GRPCCode(err)
	if code == codes.Internal {
		h.logger.Error("rpc failed", zap.Error(err))
	}
	return status.Error(code, apperr.MessageOf(err))
}

// encode round-trips v through JSON so the response matches the HTTP body.
func (h *InventoryHandler) encode(v interface{}) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, h.toStatus(fmt.Errorf("failed to marshal response: %w", err))
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, h.toStatus(fmt.Errorf("failed to convert response: %w", err))
	}
	return out, nil
}

func decode(in *structpb.Struct, v interface{}) error {
	b, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
