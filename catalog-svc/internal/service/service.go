package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodcourt/catalog-svc/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListFoods(ctx context.Context, restaurantID int) ([]domain.Food, error)
	GetFood(ctx context.Context, id int) (*domain.Food, error)
}

type CatalogServiceInterface interface {
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Restaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	Foods(ctx context.Context, restaurantID int) ([]domain.Food, error)
	Food(ctx context.Context, id int) (*domain.Food, error)
}

// CatalogService serves the read-only catalog. A restaurantID of zero lists foods
// of every restaurant.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}

func (s *CatalogService) Restaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	restaurant, err := s.repo.GetRestaurant(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *CatalogService) Foods(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	foods, err := s.repo.ListFoods(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	if foods == nil {
		foods = []domain.Food{}
	}
	return foods, nil
}

func (s *CatalogService) Food(ctx context.Context, id int) (*domain.Food, error) {
	food, err := s.repo.GetFood(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get food %d: %w", id, err)
	}
	return food, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
