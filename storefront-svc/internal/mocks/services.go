package mocks

import (
	"context"

	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

type AuthServiceInterface struct {
	mock.Mock
}

func (_m *AuthServiceInterface) Login(ctx context.Context, email, password string) (domain.AuthSession, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(domain.AuthSession), ret.Error(1)
}

func (_m *AuthServiceInterface) Register(ctx context.Context, req service.RegisterRequest) (domain.AuthSession, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(domain.AuthSession), ret.Error(1)
}

func (_m *AuthServiceInterface) Logout() {
	_m.Called()
}

func (_m *AuthServiceInterface) Session() domain.AuthSession {
	ret := _m.Called()
	return ret.Get(0).(domain.AuthSession)
}

func (_m *AuthServiceInterface) VerifyToken(token string) error {
	ret := _m.Called(token)
	return ret.Error(0)
}

func NewAuthServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) CreateOrder(ctx context.Context, items []domain.CartItem, restaurant domain.Restaurant, deliveryAddress string, paymentMethod domain.PaymentMethod) (domain.Order, error) {
	ret := _m.Called(ctx, items, restaurant, deliveryAddress, paymentMethod)
	return ret.Get(0).(domain.Order), ret.Error(1)
}

func (_m *OrderServiceInterface) GetOrderByID(id string) (domain.Order, bool) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Order), ret.Bool(1)
}

func (_m *OrderServiceInterface) UpdateOrderStatus(id string, status domain.OrderStatus) bool {
	ret := _m.Called(id, status)
	return ret.Bool(0)
}

func (_m *OrderServiceInterface) Orders() []domain.Order {
	ret := _m.Called()

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0
}

func (_m *OrderServiceInterface) QRCode(id string) ([]byte, error) {
	ret := _m.Called(id)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CheckoutServiceInterface struct {
	mock.Mock
}

func (_m *CheckoutServiceInterface) Checkout(ctx context.Context, req service.CheckoutRequest) (domain.Order, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(domain.Order), ret.Error(1)
}

func NewCheckoutServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type Authenticator struct {
	mock.Mock
}

func (_m *Authenticator) Authenticate(ctx context.Context, creds service.Credentials) (domain.User, error) {
	ret := _m.Called(ctx, creds)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func NewAuthenticator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Authenticator {
	m := &Authenticator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderListener struct {
	mock.Mock
}

func (_m *OrderListener) OrderChanged(ctx context.Context, event domain.OrderEvent, order domain.Order) {
	_m.Called(ctx, event, order)
}

func NewOrderListener(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderListener {
	m := &OrderListener{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
