package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodcourt/storefront-svc/internal/catalog"
	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog  service.CatalogClient
	Cart     service.CartServiceInterface
	Auth     service.AuthServiceInterface
	Orders   service.OrderServiceInterface
	Checkout service.CheckoutServiceInterface
	Stream   http.Handler
	Logger   *zap.Logger
}

func NewHandler(catalogClient service.CatalogClient, cart service.CartServiceInterface, auth service.AuthServiceInterface,
	orders service.OrderServiceInterface, checkout service.CheckoutServiceInterface, stream http.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  catalogClient,
		Cart:     cart,
		Auth:     auth,
		Orders:   orders,
		Checkout: checkout,
		Stream:   stream,
		Logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/foods", h.getRestaurantFoods).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/foods", h.getFoods).Methods("GET")
	r.HandleFunc("/api/foods/{id}", h.getFood).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{foodId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{foodId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/session", h.getSession).Methods("GET")

	r.Handle("/api/checkout", h.requireSession(http.HandlerFunc(h.checkout))).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	if h.Stream != nil {
		r.Handle("/api/orders/ws", h.Stream).Methods("GET")
	}
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	restaurants, err := h.Catalog.SearchRestaurants(r.Context(), query.Get("q"), query.Get("category"))
	if err != nil {
		h.catalogError(w, "Failed to load restaurants", err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	restaurant, err := h.Catalog.GetRestaurant(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getRestaurantFoods(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	foods, err := h.Catalog.FoodsByRestaurant(r.Context(), id)
	if err != nil {
		h.catalogError(w, "Failed to load dishes", err)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		h.catalogError(w, "Failed to load categories", err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.ListFoods(r.Context())
	if err != nil {
		h.catalogError(w, "Failed to load dishes", err)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid food ID", http.StatusBadRequest)
		return
	}
	food, err := h.Catalog.GetFood(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

type cartResponse struct {
	Items     []domain.CartItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"itemCount"`
}

func (h *Handler) cartSnapshot() cartResponse {
	state := h.Cart.State()
	return cartResponse{Items: state.Items, Total: state.Total, ItemCount: h.Cart.ItemCount()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FoodID int `json:"food_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.FoodID <= 0 {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	food, err := h.Catalog.GetFood(r.Context(), payload.FoodID)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.Cart.AddItem(*food)
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	foodID, err := strconv.Atoi(mux.Vars(r)["foodId"])
	if err != nil {
		http.Error(w, "Invalid food ID", http.StatusBadRequest)
		return
	}
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	h.Cart.UpdateQuantity(foodID, payload.Quantity)
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	foodID, err := strconv.Atoi(mux.Vars(r)["foodId"])
	if err != nil {
		http.Error(w, "Invalid food ID", http.StatusBadRequest)
		return
	}
	h.Cart.RemoveItem(foodID)
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.ClearCart()
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	session, err := h.Auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.authError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	session, err := h.Auth.Register(r.Context(), payload)
	if err != nil {
		h.authError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session := h.Auth.Session()
	session.Token = ""
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Checkout.Checkout(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrEmptyAddress),
			errors.Is(err, service.ErrInvalidPaymentMethod),
			errors.Is(err, domain.ErrInvalidDeliveryTime):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrRestaurantUnavailable):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.Orders())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Orders.GetOrderByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !payload.Status.Valid() {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if !h.Orders.UpdateOrderStatus(id, payload.Status) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	order, _ := h.Orders.GetOrderByID(id)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrOrderNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

// requireSession rejects requests without the bearer token of the current session.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if token == "" {
			http.Error(w, "Authorization header is missing", http.StatusUnauthorized)
			return
		}
		if err := h.Auth.VerifyToken(token); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) catalogError(w http.ResponseWriter, message string, err error) {
	h.Logger.Warn(message, zap.Error(err))
	writeJSON(w, http.StatusBadGateway, map[string]interface{}{
		"error": message,
		"data":  []interface{}{},
	})
}

func (h *Handler) authError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrAccountLocked):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrAuthUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
