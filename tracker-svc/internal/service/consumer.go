package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodcourt/tracker-svc/internal/domain"

	"go.uber.org/zap"
)

var errMissingOrderID = errors.New("event has no order id")

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads the orders topic until ctx is cancelled. Malformed messages are
// logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("order event consumer stopped")
				return
			}
			c.Logger.Warn("error reading message", zap.Error(err))
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("error unmarshaling message",
				zap.ByteString("key", message.Key),
				zap.Error(err))
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			c.Logger.Error("error processing order event",
				zap.String("order_id", event.OrderID),
				zap.String("type", event.Type),
				zap.Error(err))
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	switch event.Type {
	case domain.EventOrderCreated, domain.EventOrderStatusChanged:
	default:
		c.Logger.Debug("ignoring event", zap.String("type", event.Type))
		return nil
	}
	if event.OrderID == "" {
		return errMissingOrderID
	}

	if err := c.Store.SaveOrderStatus(ctx, event); err != nil {
		return fmt.Errorf("mirror status: %w", err)
	}

	if event.Type == domain.EventOrderCreated {
		day := event.Timestamp
		if day.IsZero() {
			day = time.Now()
		}
		if err := c.Store.IncrementRestaurantOrders(ctx, event.RestaurantID, day); err != nil {
			return fmt.Errorf("count order: %w", err)
		}
	}

	c.Logger.Info("order event processed",
		zap.String("order_id", event.OrderID),
		zap.String("type", event.Type),
		zap.String("status", event.Status))
	return nil
}
