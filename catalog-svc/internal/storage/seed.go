package storage

import (
	"foodcourt/catalog-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// DemoCatalog returns the restaurants and foods written by Seed. Food
// RestaurantID values refer to the positional IDs of the returned restaurants.
func DemoCatalog() ([]domain.Restaurant, []domain.Food) {
	restaurants := []domain.Restaurant{
		{ID: 1, Name: "Cantina Bella Napoli", Category: "Italiana", Rating: 4.7, DeliveryTime: "30-45",
			DeliveryFee: decimal.RequireFromString("5.99"), Description: "Massas frescas e pizzas de forno a lenha"},
		{ID: 2, Name: "Sushi Zen", Category: "Japonesa", Rating: 4.9, DeliveryTime: "40-55",
			DeliveryFee: decimal.RequireFromString("7.50"), Description: "Combinados e temakis"},
		{ID: 3, Name: "Burger House", Category: "Lanches", Rating: 4.4, DeliveryTime: "20-30",
			DeliveryFee: decimal.Zero, Description: "Hambúrgueres artesanais"},
		{ID: 4, Name: "Sabor Mineiro", Category: "Brasileira", Rating: 4.6, DeliveryTime: "35-50",
			DeliveryFee: decimal.RequireFromString("4.90"), Description: "Comida caseira de Minas"},
	}

	foods := []domain.Food{
		{Name: "Lasanha à Bolonhesa", Price: decimal.RequireFromString("39.90"), Category: "Massas", RestaurantID: 1,
			Description: "Camadas de massa, molho bolonhesa e queijo gratinado"},
		{Name: "Pizza Margherita", Price: decimal.RequireFromString("52.00"), Category: "Pizzas", RestaurantID: 1,
			Description: "Molho de tomate, muçarela e manjericão"},
		{Name: "Combinado 20 peças", Price: decimal.RequireFromString("68.00"), Category: "Combinados", RestaurantID: 2,
			Description: "Sashimis, niguiris e uramakis"},
		{Name: "Temaki Salmão", Price: decimal.RequireFromString("24.50"), Category: "Temakis", RestaurantID: 2,
			Description: "Salmão, cream cheese e cebolinha"},
		{Name: "Cheeseburger Duplo", Price: decimal.RequireFromString("32.90"), Category: "Hambúrgueres", RestaurantID: 3,
			Description: "Dois blends de 120g e cheddar"},
		{Name: "Batata Frita", Price: decimal.RequireFromString("14.00"), Category: "Acompanhamentos", RestaurantID: 3,
			Description: "Porção individual"},
		{Name: "Feijão Tropeiro", Price: decimal.RequireFromString("36.50"), Category: "Pratos", RestaurantID: 4,
			Description: "Feijão, farinha, linguiça e couve"},
		{Name: "Pão de Queijo", Price: decimal.RequireFromString("12.00"), Category: "Petiscos", RestaurantID: 4,
			Description: "Seis unidades"},
	}

	return restaurants, foods
}
