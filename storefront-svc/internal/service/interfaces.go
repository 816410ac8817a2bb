package service

import (
	"context"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogClient interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListFoods(ctx context.Context) ([]domain.Food, error)
	GetFood(ctx context.Context, id int) (*domain.Food, error)
	FoodsByRestaurant(ctx context.Context, restaurantID int) ([]domain.Food, error)
	SearchRestaurants(ctx context.Context, term, category string) ([]domain.Restaurant, error)
	Categories(ctx context.Context) ([]string, error)
}

type CartServiceInterface interface {
	AddItem(food domain.Food)
	RemoveItem(foodID int)
	UpdateQuantity(foodID, quantity int)
	ClearCart()
	RemoveOrdered(ordered []domain.CartItem)
	State() domain.CartState
	Total() decimal.Decimal
	ItemCount() int
	RestaurantID() int
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (domain.AuthSession, error)
	Register(ctx context.Context, req RegisterRequest) (domain.AuthSession, error)
	Logout()
	Session() domain.AuthSession
	VerifyToken(token string) error
}

// Authenticator verifies credentials and returns the matching user.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (domain.User, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, items []domain.CartItem, restaurant domain.Restaurant, deliveryAddress string, paymentMethod domain.PaymentMethod) (domain.Order, error)
	GetOrderByID(id string) (domain.Order, bool)
	UpdateOrderStatus(id string, status domain.OrderStatus) bool
	Orders() []domain.Order
	QRCode(id string) ([]byte, error)
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error)
}

// OrderListener is notified after an order is created and after each status change.
type OrderListener interface {
	OrderChanged(ctx context.Context, event domain.OrderEvent, order domain.Order)
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

var (
	_ AuthServiceInterface     = (*AuthService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
)
