package mocks

import (
	"context"
	"time"

	"foodcourt/tracker-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) SaveOrderStatus(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func (_m *StoreInterface) IncrementRestaurantOrders(ctx context.Context, restaurantID int, day time.Time) error {
	ret := _m.Called(ctx, restaurantID, day)
	return ret.Error(0)
}

func (_m *StoreInterface) OrderStatus(ctx context.Context, orderID string) (*domain.OrderTracking, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.OrderTracking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.OrderTracking)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) TopRestaurants(ctx context.Context, day time.Time, limit int) ([]domain.RestaurantCount, error) {
	ret := _m.Called(ctx, day, limit)

	var r0 []domain.RestaurantCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantCount)
	}
	return r0, ret.Error(1)
}

func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(kafka.Message), ret.Error(1)
}

func NewMessageReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
