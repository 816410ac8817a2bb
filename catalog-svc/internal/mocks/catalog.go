package mocks

import (
	"context"

	"foodcourt/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListFoods(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}
	return r0, ret.Error(1)
}

func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
