package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Image        string          `json:"image,omitempty"`
	Category     string          `json:"category"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"deliveryTime"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	Description  string          `json:"description,omitempty"`
}

type Food struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Image        string          `json:"image,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	RestaurantID int             `json:"restaurantId"`
}

type CartItem struct {
	ID       string `json:"id"`
	Food     Food   `json:"food"`
	Quantity int    `json:"quantity"`
}

type CartState struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type AuthSession struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
}

type Order struct {
	ID                string          `json:"id"`
	Items             []CartItem      `json:"items"`
	Total             decimal.Decimal `json:"total"`
	Restaurant        Restaurant      `json:"restaurant"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	DeliveryAddress   string          `json:"deliveryAddress"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
}

// OrderEvent is published on every order creation and status change.
type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Timestamp    time.Time       `json:"timestamp"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)
