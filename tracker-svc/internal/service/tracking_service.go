package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodcourt/tracker-svc/internal/domain"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

type TrackingService struct {
	store StoreInterface
	now   func() time.Time
}

func NewTrackingService(store StoreInterface) *TrackingService {
	return &TrackingService{store: store, now: time.Now}
}

func (s *TrackingService) Order(ctx context.Context, orderID string) (*domain.OrderTracking, error) {
	return s.store.OrderStatus(ctx, orderID)
}

// TopRestaurants ranks restaurants by orders placed on date. An empty date means today.
func (s *TrackingService) TopRestaurants(ctx context.Context, date string, limit int) ([]domain.RestaurantCount, error) {
	day := s.now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		day = parsed
	}
	return s.store.TopRestaurants(ctx, day, limit)
}
