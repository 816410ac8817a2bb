package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

var ErrNotFound = errors.New("tracking record not found")

// OrderEvent is the value of a message on the orders topic.
type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Timestamp    time.Time       `json:"timestamp"`
}

type OrderTracking struct {
	OrderID      string          `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type RestaurantCount struct {
	RestaurantID int `json:"restaurant_id"`
	Orders       int `json:"orders"`
}

var statusSequence = []string{"pending", "confirmed", "preparing", "delivering", "delivered"}

// StatusRank is the position of status in the delivery sequence, or -1 when unknown.
func StatusRank(status string) int {
	for i, s := range statusSequence {
		if s == status {
			return i
		}
	}
	return -1
}
