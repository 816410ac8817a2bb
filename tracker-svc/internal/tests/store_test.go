package tests

import (
	"context"
	"testing"
	"time"

	"foodcourt/tracker-svc/internal/domain"
	"foodcourt/tracker-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), mr
}

func TestStore_SaveOrderStatus(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	err := store.SaveOrderStatus(ctx, domain.OrderEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      "ORD-1",
		RestaurantID: 3,
		Status:       "pending",
		Total:        decimal.RequireFromString("45.90"),
		Timestamp:    at,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", mr.HGet("order:ORD-1", "status"))
	assert.Equal(t, 24*time.Hour, mr.TTL("order:ORD-1"))

	err = store.SaveOrderStatus(ctx, domain.OrderEvent{
		Type:         domain.EventOrderStatusChanged,
		OrderID:      "ORD-1",
		RestaurantID: 3,
		Status:       "confirmed",
		Total:        decimal.RequireFromString("45.90"),
		Timestamp:    at.Add(2 * time.Second),
	})
	require.NoError(t, err)

	tracking, err := store.OrderStatus(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", tracking.Status)
	assert.Equal(t, 3, tracking.RestaurantID)
	assert.True(t, decimal.RequireFromString("45.90").Equal(tracking.Total))
	assert.Equal(t, at.Add(2*time.Second), tracking.UpdatedAt)
}

func TestStore_SaveOrderStatusDropsLateEvents(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		sequence   []string
		wantStatus string
	}{
		{name: "in order", sequence: []string{"pending", "confirmed", "preparing"}, wantStatus: "preparing"},
		{name: "confirmed after preparing", sequence: []string{"pending", "preparing", "confirmed"}, wantStatus: "preparing"},
		{name: "created after status change", sequence: []string{"confirmed", "pending"}, wantStatus: "confirmed"},
		{name: "repeated status", sequence: []string{"delivering", "delivering"}, wantStatus: "delivering"},
		{name: "unknown status is applied", sequence: []string{"preparing", "cancelled"}, wantStatus: "cancelled"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store, mr := newTestStore(t)
			ctx := context.Background()

			for i, status := range testCase.sequence {
				require.NoError(t, store.SaveOrderStatus(ctx, domain.OrderEvent{
					Type:      domain.EventOrderStatusChanged,
					OrderID:   "ORD-1",
					Status:    status,
					Timestamp: at.Add(time.Duration(i) * time.Second),
				}))
			}

			assert.Equal(t, testCase.wantStatus, mr.HGet("order:ORD-1", "status"))
		})
	}
}

func TestStore_OrderStatusNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.OrderStatus(context.Background(), "ORD-missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_TopRestaurants(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for _, restaurantID := range []int{1, 2, 2, 3, 2, 3} {
		require.NoError(t, store.IncrementRestaurantOrders(ctx, restaurantID, day))
	}
	require.NoError(t, store.IncrementRestaurantOrders(ctx, 1, day.AddDate(0, 0, 1)))

	assert.Equal(t, 7*24*time.Hour, mr.TTL("orders:daily:2024-05-01"))

	top, err := store.TopRestaurants(ctx, day, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.RestaurantCount{
		{RestaurantID: 2, Orders: 3},
		{RestaurantID: 3, Orders: 2},
	}, top)

	empty, err := store.TopRestaurants(ctx, day.AddDate(0, 0, 5), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_RedisUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.SaveOrderStatus(context.Background(), domain.OrderEvent{OrderID: "ORD-1", Status: "pending"})

	assert.Error(t, err)
}
