package domain

import "github.com/shopspring/decimal"

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
