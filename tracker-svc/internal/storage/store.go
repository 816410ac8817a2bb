package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"foodcourt/tracker-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	orderTTL = 24 * time.Hour
	dailyTTL = 7 * 24 * time.Hour

	maxSaveAttempts = 3
)

// Store mirrors order status and per-restaurant daily order counts in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func orderKey(orderID string) string {
	return "order:" + orderID
}

func dailyKey(day time.Time) string {
	return "orders:daily:" + day.Format("2006-01-02")
}

// SaveOrderStatus mirrors event into the order hash. An event whose status ranks
// below the stored one is dropped so a late delivery never rolls the mirror back.
func (s *Store) SaveOrderStatus(ctx context.Context, event domain.OrderEvent) error {
	key := orderKey(event.OrderID)
	updatedAt := event.Timestamp
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	save := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, "status").Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil && isStale(event.Status, current) {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, map[string]interface{}{
				"status":        event.Status,
				"restaurant_id": event.RestaurantID,
				"total":         event.Total.String(),
				"updated_at":    updatedAt.Unix(),
			})
			pipe.Expire(ctx, key, orderTTL)
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err = s.rdb.Watch(ctx, save, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("save order %s: %w", event.OrderID, err)
	}
	return nil
}

func isStale(incoming, current string) bool {
	incomingRank, currentRank := domain.StatusRank(incoming), domain.StatusRank(current)
	return incomingRank >= 0 && currentRank >= 0 && incomingRank < currentRank
}

func (s *Store) IncrementRestaurantOrders(ctx context.Context, restaurantID int, day time.Time) error {
	key := dailyKey(day)

	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(ctx, key, 1, strconv.Itoa(restaurantID))
	pipe.Expire(ctx, key, dailyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("count order for restaurant %d: %w", restaurantID, err)
	}
	return nil
}

func (s *Store) OrderStatus(ctx context.Context, orderID string) (*domain.OrderTracking, error) {
	fields, err := s.rdb.HGetAll(ctx, orderKey(orderID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}

	tracking := &domain.OrderTracking{
		OrderID: orderID,
		Status:  fields["status"],
	}
	tracking.RestaurantID, _ = strconv.Atoi(fields["restaurant_id"])
	if total, err := decimal.NewFromString(fields["total"]); err == nil {
		tracking.Total = total
	}
	if unix, err := strconv.ParseInt(fields["updated_at"], 10, 64); err == nil {
		tracking.UpdatedAt = time.Unix(unix, 0).UTC()
	}
	return tracking, nil
}

// TopRestaurants returns the restaurants with the most orders on day, highest first.
func (s *Store) TopRestaurants(ctx context.Context, day time.Time, limit int) ([]domain.RestaurantCount, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]domain.RestaurantCount, 0, len(entries))
	for _, entry := range entries {
		member, _ := entry.Member.(string)
		restaurantID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		counts = append(counts, domain.RestaurantCount{
			RestaurantID: restaurantID,
			Orders:       int(entry.Score),
		})
	}
	return counts, nil
}
