package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/request"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock"
	"github.com/fekuna/omnipos-warehouse-service/internal/stock/dto"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventStockAdjusted = "StockAdjusted"

// MessageReader is satisfied by broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StockListener struct {
	consumer   MessageReader
	uc         stock.UseCase
	logger     logger.ZapLogger
	retryDelay time.Duration
}

func NewStockListener(consumer MessageReader, uc stock.UseCase, logger logger.ZapLogger) *StockListener {
	return &StockListener{
		consumer:   consumer,
		uc:         uc,
		logger:     logger,
		retryDelay: time.Second,
	}
}

func (l *StockListener) Start(ctx context.Context) {
	l.logger.Info("Starting stock adjustment listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping stock adjustment listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-time.After(l.retryDelay):
				case <-ctx.Done():
					return
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type StockAdjustedEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Payload   StockAdjustedPayload `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
}

type StockAdjustedPayload struct {
	ProductID   request.Int `json:"productId"`
	WarehouseID request.Int `json:"warehouseId"`
	Delta       request.Int `json:"delta"`
	Reason      string      `json:"reason"`
	ReferenceID string      `json:"referenceId"`
}

func (l *StockListener) processMessage(ctx context.Context, value []byte) {
	var event StockAdjustedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventStockAdjusted {
		return
	}

	l.logger.Info("Processing StockAdjusted event", zap.String("event_id", event.EventID))

	reason := event.Payload.Reason
	if reason == "" {
		reason = "external adjustment"
	}
	_, err := l.uc.AdjustStock(ctx, &dto.AdjustStockInput{
		ProductID:   event.Payload.ProductID,
		WarehouseID: event.Payload.WarehouseID,
		Delta:       event.Payload.Delta,
		Reason:      reason,
		ReferenceID: event.Payload.ReferenceID,
	})
	if err != nil {
		l.logger.Error("Failed to apply stock adjustment",
			zap.String("event_id", event.EventID),
			zap.Int("product_id", event.Payload.ProductID.Int()),
			zap.Int("warehouse_id", event.Payload.WarehouseID.Int()),
			zap.Error(err),
		)
	}
}
