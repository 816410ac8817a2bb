package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodcourt/tracker-svc/internal/domain"
	"foodcourt/tracker-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Tracking service.TrackingServiceInterface
	Logger   *zap.Logger
}

func NewHandler(svc service.TrackingServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{Tracking: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/tracking/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/tracking/restaurants/top", h.getTopRestaurants).Methods("GET")
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tracking, err := h.Tracking.Order(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Order not tracked", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("tracking lookup failed", zap.String("order_id", id), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tracking)
}

func (h *Handler) getTopRestaurants(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	counts, err := h.Tracking.TopRestaurants(r.Context(), r.URL.Query().Get("date"), limit)
	if errors.Is(err, service.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Logger.Warn("top restaurants lookup failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}
