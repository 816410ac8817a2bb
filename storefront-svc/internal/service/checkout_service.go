package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodcourt/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrNotAuthenticated      = errors.New("login required to place an order")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrEmptyAddress          = errors.New("delivery address is required")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")
	ErrRestaurantUnavailable = errors.New("restaurant could not be loaded")
)

type CheckoutRequest struct {
	DeliveryAddress string               `json:"deliveryAddress"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
}

// CheckoutService validates the session and cart before turning the cart into an
// order. The order store itself trusts its caller.
type CheckoutService struct {
	cart    CartServiceInterface
	auth    AuthServiceInterface
	orders  OrderServiceInterface
	catalog CatalogClient
	logger  *zap.Logger
}

func NewCheckoutService(cart CartServiceInterface, auth AuthServiceInterface, orders OrderServiceInterface, catalog CatalogClient, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		cart:    cart,
		auth:    auth,
		orders:  orders,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error) {
	session := s.auth.Session()
	if !session.IsAuthenticated || session.User == nil {
		return domain.Order{}, ErrNotAuthenticated
	}

	state := s.cart.State()
	if len(state.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	address := strings.TrimSpace(req.DeliveryAddress)
	if address == "" {
		address = strings.TrimSpace(session.User.Address)
	}
	if address == "" {
		return domain.Order{}, ErrEmptyAddress
	}

	method := req.PaymentMethod
	if method == "" {
		method = domain.PaymentCredit
	}
	if !method.Valid() {
		return domain.Order{}, ErrInvalidPaymentMethod
	}

	restaurantID := state.Items[0].Food.RestaurantID
	restaurant, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("checkout restaurant lookup failed", zap.Int("restaurant_id", restaurantID), zap.Error(err))
		return domain.Order{}, fmt.Errorf("%w: %v", ErrRestaurantUnavailable, err)
	}

	order, err := s.orders.CreateOrder(ctx, state.Items, *restaurant, address, method)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.cart.RemoveOrdered(state.Items)
	s.logger.Info("checkout completed",
		zap.String("order_id", order.ID),
		zap.String("user_id", session.User.ID),
		zap.String("payment_method", string(method)))
	return order, nil
}
