package storage

import (
	"context"
	"encoding/json"

	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher forwards order events to the orders topic. Publish failures are
// logged and never reach the order store.
type KafkaPublisher struct {
	Writer MessageWriter
	Logger *zap.Logger
}

func NewKafkaPublisher(writer MessageWriter, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer, Logger: logger}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

func (p *KafkaPublisher) OrderChanged(ctx context.Context, event domain.OrderEvent, order domain.Order) {
	if err := p.PublishOrderEvent(ctx, event); err != nil {
		p.Logger.Warn("failed to publish order event",
			zap.String("order_id", event.OrderID),
			zap.String("type", event.Type),
			zap.Error(err))
	}
}

var _ service.OrderListener = (*KafkaPublisher)(nil)
