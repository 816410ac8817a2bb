package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodcourt/storefront-svc/internal/api/http"
	"foodcourt/storefront-svc/internal/catalog"
	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/mocks"
	"foodcourt/storefront-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type handlerDeps struct {
	catalog  *mocks.CatalogClient
	cart     *service.CartService
	auth     *mocks.AuthServiceInterface
	orders   *mocks.OrderServiceInterface
	checkout *mocks.CheckoutServiceInterface
}

func newHandlerDeps(t *testing.T) (*handlerDeps, http.Handler) {
	deps := &handlerDeps{
		catalog:  mocks.NewCatalogClient(t),
		cart:     service.NewCartService(),
		auth:     mocks.NewAuthServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		checkout: mocks.NewCheckoutServiceInterface(t),
	}
	handler := httpapi.NewHandler(deps.catalog, deps.cart, deps.auth, deps.orders, deps.checkout, nil, zap.NewNop())
	return deps, httpapi.NewRouter(handler)
}

func TestRestaurantHandlers(t *testing.T) {
	restaurant := testRestaurant()

	tests := []struct {
		name      string
		path      string
		setupMock func(*mocks.CatalogClient)
		wantCode  int
		wantBody  string
	}{
		{
			name: "search forwards filters",
			path: "/api/restaurants?q=bella&category=Italiana",
			setupMock: func(m *mocks.CatalogClient) {
				m.On("SearchRestaurants", mock.Anything, "bella", "Italiana").Return([]domain.Restaurant{restaurant}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"deliveryTime":"30-45"`,
		},
		{
			name: "catalog failure returns empty data",
			path: "/api/restaurants",
			setupMock: func(m *mocks.CatalogClient) {
				m.On("SearchRestaurants", mock.Anything, "", "").Return([]domain.Restaurant{}, errors.New("timeout")).Once()
			},
			wantCode: http.StatusBadGateway,
			wantBody: `"data":[]`,
		},
		{
			name: "restaurant by id",
			path: "/api/restaurants/1",
			setupMock: func(m *mocks.CatalogClient) {
				m.On("GetRestaurant", mock.Anything, 1).Return(&restaurant, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"name":"Cantina"`,
		},
		{
			name:      "non-numeric restaurant id",
			path:      "/api/restaurants/abc",
			setupMock: func(m *mocks.CatalogClient) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non-numeric restaurant id for foods",
			path:      "/api/restaurants/abc/foods",
			setupMock: func(m *mocks.CatalogClient) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non-numeric food id",
			path:      "/api/foods/abc",
			setupMock: func(m *mocks.CatalogClient) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown restaurant",
			path: "/api/restaurants/42",
			setupMock: func(m *mocks.CatalogClient) {
				m.On("GetRestaurant", mock.Anything, 42).Return(nil, catalog.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "restaurant foods",
			path: "/api/restaurants/1/foods",
			setupMock: func(m *mocks.CatalogClient) {
				m.On("FoodsByRestaurant", mock.Anything, 1).Return([]domain.Food{food(10, 1, "39.90")}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"restaurantId":1`,
		},
		{
			name: "categories",
			path: "/api/categories",
			setupMock: func(m *mocks.CatalogClient) {
				m.On("Categories", mock.Anything).Return([]string{"Italiana", "Japonesa"}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `["Italiana","Japonesa"]`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps, router := newHandlerDeps(t)
			testCase.setupMock(deps.catalog)

			req := httptest.NewRequest("GET", testCase.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestCartHandlers(t *testing.T) {
	deps, router := newHandlerDeps(t)
	lasanha := food(10, 1, "25.50")
	deps.catalog.On("GetFood", mock.Anything, 10).Return(&lasanha, nil).Twice()
	deps.catalog.On("GetFood", mock.Anything, 99).Return(nil, catalog.ErrNotFound).Once()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := do("POST", "/api/cart/items", `{"food_id":10}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do("POST", "/api/cart/items", `{"food_id":10}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Items     []domain.CartItem `json:"items"`
		Total     string            `json:"total"`
		ItemCount int               `json:"itemCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, "51", cart.Total)

	assert.Equal(t, http.StatusNotFound, do("POST", "/api/cart/items", `{"food_id":99}`).Code)
	assert.Equal(t, http.StatusBadRequest, do("POST", "/api/cart/items", `{invalid}`).Code)

	assert.Equal(t, http.StatusBadRequest, do("PUT", "/api/cart/items/abc", `{"quantity":3}`).Code)
	assert.Equal(t, http.StatusBadRequest, do("DELETE", "/api/cart/items/abc", "").Code)
	assert.Equal(t, 2, deps.cart.ItemCount())

	w = do("PUT", "/api/cart/items/10", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, deps.cart.ItemCount())

	deps.cart.AddItem(lasanha)
	w = do("DELETE", "/api/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, deps.cart.ItemCount())
}

func TestAuthHandlers(t *testing.T) {
	session := loggedIn("Rua A")

	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(*mocks.AuthServiceInterface)
		wantCode  int
	}{
		{
			name:   "login",
			method: "POST",
			path:   "/api/auth/login",
			body:   `{"email":"a@b.c","password":"pw"}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Login", mock.Anything, "a@b.c", "pw").Return(session, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "login rejected",
			method: "POST",
			path:   "/api/auth/login",
			body:   `{"email":"a@b.c","password":"bad"}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Login", mock.Anything, "a@b.c", "bad").Return(domain.AuthSession{}, service.ErrInvalidCredentials).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "login backend down",
			method: "POST",
			path:   "/api/auth/login",
			body:   `{"email":"a@b.c","password":"pw"}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Login", mock.Anything, "a@b.c", "pw").Return(domain.AuthSession{}, service.ErrAuthUnavailable).Once()
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:   "register",
			method: "POST",
			path:   "/api/auth/register",
			body:   `{"name":"Ana","email":"ana@example.com"}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Register", mock.Anything, service.RegisterRequest{Name: "Ana", Email: "ana@example.com"}).Return(session, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:   "logout",
			method: "POST",
			path:   "/api/auth/logout",
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Logout").Return().Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "session",
			method: "GET",
			path:   "/api/auth/session",
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Session").Return(session).Once()
			},
			wantCode: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps, router := newHandlerDeps(t)
			testCase.setupMock(deps.auth)

			req := httptest.NewRequest(testCase.method, testCase.path, bytes.NewBufferString(testCase.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestSessionHandlerHidesToken(t *testing.T) {
	deps, router := newHandlerDeps(t)
	deps.auth.On("Session").Return(loggedIn("Rua A")).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/session", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"isAuthenticated":true`)
}

func TestCheckoutHandler(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		body      string
		setupMock func(*mocks.AuthServiceInterface, *mocks.CheckoutServiceInterface)
		wantCode  int
	}{
		{
			name:      "missing token",
			body:      `{}`,
			setupMock: func(a *mocks.AuthServiceInterface, c *mocks.CheckoutServiceInterface) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:  "stale token",
			token: "stale",
			body:  `{}`,
			setupMock: func(a *mocks.AuthServiceInterface, c *mocks.CheckoutServiceInterface) {
				a.On("VerifyToken", "stale").Return(service.ErrInvalidToken).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "invalid JSON",
			token: "good",
			body:  `{invalid}`,
			setupMock: func(a *mocks.AuthServiceInterface, c *mocks.CheckoutServiceInterface) {
				a.On("VerifyToken", "good").Return(nil).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "empty cart",
			token: "good",
			body:  `{}`,
			setupMock: func(a *mocks.AuthServiceInterface, c *mocks.CheckoutServiceInterface) {
				a.On("VerifyToken", "good").Return(nil).Once()
				c.On("Checkout", mock.Anything, service.CheckoutRequest{}).Return(domain.Order{}, service.ErrEmptyCart).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "catalog unavailable",
			token: "good",
			body:  `{}`,
			setupMock: func(a *mocks.AuthServiceInterface, c *mocks.CheckoutServiceInterface) {
				a.On("VerifyToken", "good").Return(nil).Once()
				c.On("Checkout", mock.Anything, service.CheckoutRequest{}).
					Return(domain.Order{}, fmt.Errorf("%w: timeout", service.ErrRestaurantUnavailable)).Once()
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name:  "order placed",
			token: "good",
			body:  `{"deliveryAddress":"Rua B","paymentMethod":"pix"}`,
			setupMock: func(a *mocks.AuthServiceInterface, c *mocks.CheckoutServiceInterface) {
				a.On("VerifyToken", "good").Return(nil).Once()
				c.On("Checkout", mock.Anything, service.CheckoutRequest{DeliveryAddress: "Rua B", PaymentMethod: domain.PaymentPix}).
					Return(domain.Order{ID: "ORD-1", Status: domain.StatusPending}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps, router := newHandlerDeps(t)
			testCase.setupMock(deps.auth, deps.checkout)

			req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(testCase.body))
			if testCase.token != "" {
				req.Header.Set("Authorization", "Bearer "+testCase.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestOrderHandlers(t *testing.T) {
	order := domain.Order{ID: "ORD-1", Status: domain.StatusPending}
	delivered := order
	delivered.Status = domain.StatusDelivered

	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
		wantType  string
	}{
		{
			name:   "list",
			method: "GET",
			path:   "/api/orders",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Orders").Return([]domain.Order{order}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get",
			method: "GET",
			path:   "/api/orders/ORD-1",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("GetOrderByID", "ORD-1").Return(order, true).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get missing",
			method: "GET",
			path:   "/api/orders/ORD-2",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("GetOrderByID", "ORD-2").Return(domain.Order{}, false).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "update status",
			method: "PUT",
			path:   "/api/orders/ORD-1/status",
			body:   `{"status":"delivered"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateOrderStatus", "ORD-1", domain.StatusDelivered).Return(true).Once()
				m.On("GetOrderByID", "ORD-1").Return(delivered, true).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "update unknown status",
			method:    "PUT",
			path:      "/api/orders/ORD-1/status",
			body:      `{"status":"lost"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "update missing order",
			method: "PUT",
			path:   "/api/orders/ORD-2/status",
			body:   `{"status":"confirmed"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateOrderStatus", "ORD-2", domain.StatusConfirmed).Return(false).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "qr code",
			method: "GET",
			path:   "/api/orders/ORD-1/qrcode",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("QRCode", "ORD-1").Return([]byte("\x89PNG"), nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "image/png",
		},
		{
			name:   "qr code missing order",
			method: "GET",
			path:   "/api/orders/ORD-2/qrcode",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("QRCode", "ORD-2").Return(nil, service.ErrOrderNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps, router := newHandlerDeps(t)
			testCase.setupMock(deps.orders)

			req := httptest.NewRequest(testCase.method, testCase.path, bytes.NewBufferString(testCase.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantType != "" {
				assert.Equal(t, testCase.wantType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	_, router := newHandlerDeps(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
