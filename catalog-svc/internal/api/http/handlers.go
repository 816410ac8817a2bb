package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodcourt/catalog-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Logger  *zap.Logger
}

func NewHandler(catalogSvc service.CatalogServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: catalogSvc,
		Logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{id}/foods", h.getRestaurantFoods).Methods("GET")
	r.HandleFunc("/foods", h.getFoods).Methods("GET")
	r.HandleFunc("/foods/{id}", h.getFood).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Restaurants(r.Context())
	if err != nil {
		h.Logger.Error("list restaurants failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	restaurant, err := h.Catalog.Restaurant(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("get restaurant failed", zap.Int("restaurant_id", id), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

func (h *Handler) getRestaurantFoods(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	h.writeFoods(w, r, id)
}

// getFoods lists every food, or those of one restaurant when restaurantId is given.
func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	restaurantID := 0
	if raw := r.URL.Query().Get("restaurantId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			http.Error(w, "Invalid restaurantId", http.StatusBadRequest)
			return
		}
		restaurantID = id
	}
	h.writeFoods(w, r, restaurantID)
}

func (h *Handler) writeFoods(w http.ResponseWriter, r *http.Request, restaurantID int) {
	foods, err := h.Catalog.Foods(r.Context(), restaurantID)
	if err != nil {
		h.Logger.Error("list foods failed", zap.Int("restaurant_id", restaurantID), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid food ID", http.StatusBadRequest)
		return
	}

	food, err := h.Catalog.Food(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("get food failed", zap.Int("food_id", id), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(food)
}
