package service

import (
	"context"
	"time"

	"foodcourt/tracker-svc/internal/domain"
	"foodcourt/tracker-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	SaveOrderStatus(ctx context.Context, event domain.OrderEvent) error
	IncrementRestaurantOrders(ctx context.Context, restaurantID int, day time.Time) error
	OrderStatus(ctx context.Context, orderID string) (*domain.OrderTracking, error)
	TopRestaurants(ctx context.Context, day time.Time, limit int) ([]domain.RestaurantCount, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent) error
}

type TrackingServiceInterface interface {
	Order(ctx context.Context, orderID string) (*domain.OrderTracking, error)
	TopRestaurants(ctx context.Context, date string, limit int) ([]domain.RestaurantCount, error)
}

var (
	_ StoreInterface           = (*storage.Store)(nil)
	_ MessageReader            = (*kafka.Reader)(nil)
	_ ConsumerInterface        = (*Consumer)(nil)
	_ TrackingServiceInterface = (*TrackingService)(nil)
)
