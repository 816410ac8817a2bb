package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDeliveryTime = errors.New("delivery time has no leading minutes")

func LineTotal(item CartItem) decimal.Decimal {
	return item.Food.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums price x quantity over items. Both cart and order totals are derived from it.
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}

func OrderTotal(items []CartItem, restaurant Restaurant) decimal.Decimal {
	return Subtotal(items).Add(restaurant.DeliveryFee)
}

// ParseDeliveryMinutes reads the leading integer of a range such as "30-45".
// A plain "45" is accepted; a value with no leading digits is rejected.
func ParseDeliveryMinutes(deliveryTime string) (int, error) {
	minutes, digits := 0, 0
	for _, r := range strings.TrimSpace(deliveryTime) {
		if r < '0' || r > '9' {
			break
		}
		minutes = minutes*10 + int(r-'0')
		digits++
		if digits > 6 {
			return 0, ErrInvalidDeliveryTime
		}
	}
	if digits == 0 {
		return 0, ErrInvalidDeliveryTime
	}
	return minutes, nil
}

func EstimateDelivery(createdAt time.Time, restaurant Restaurant) (time.Time, error) {
	minutes, err := ParseDeliveryMinutes(restaurant.DeliveryTime)
	if err != nil {
		return time.Time{}, err
	}
	return createdAt.Add(time.Duration(minutes) * time.Minute), nil
}
