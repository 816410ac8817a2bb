package mocks

import (
	"context"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogClient struct {
	mock.Mock
}

func (_m *CatalogClient) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) ListFoods(ctx context.Context) ([]domain.Food, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) FoodsByRestaurant(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) SearchRestaurants(ctx context.Context, term, category string) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, term, category)

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) Categories(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

// NewCatalogClient registers a cleanup that asserts every expectation was met.
func NewCatalogClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogClient {
	m := &CatalogClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
