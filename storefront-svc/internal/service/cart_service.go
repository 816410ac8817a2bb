package service

import (
	"sync"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService holds the items the user intends to buy. The total is recomputed
// from the items after every mutation and cannot be set directly.
type CartService struct {
	mu    sync.Mutex
	items []domain.CartItem
	total decimal.Decimal
	newID func() string
}

func NewCartService() *CartService {
	return &CartService{
		items: []domain.CartItem{},
		total: decimal.Zero,
		newID: uuid.NewString,
	}
}

func (s *CartService) AddItem(food domain.Food) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(food.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, domain.CartItem{
			ID:       s.newID(),
			Food:     food,
			Quantity: 1,
		})
	}
	s.recompute()
}

func (s *CartService) RemoveItem(foodID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(foodID)
	s.recompute()
}

// UpdateQuantity sets the quantity of the entry for foodID. A quantity of zero or
// less removes the entry.
func (s *CartService) UpdateQuantity(foodID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(foodID)
	} else if i := s.indexOf(foodID); i >= 0 {
		s.items[i].Quantity = quantity
	}
	s.recompute()
}

func (s *CartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []domain.CartItem{}
	s.total = decimal.Zero
}

// RemoveOrdered subtracts the quantities in ordered from the matching entries and
// drops entries that reach zero. Items added after ordered was taken stay in the cart.
func (s *CartService) RemoveOrdered(ordered []domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range ordered {
		i := s.indexOf(item.Food.ID)
		if i < 0 {
			continue
		}
		if s.items[i].Quantity <= item.Quantity {
			s.remove(item.Food.ID)
		} else {
			s.items[i].Quantity -= item.Quantity
		}
	}
	s.recompute()
}

func (s *CartService) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return domain.CartState{Items: items, Total: s.total}
}

func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// ItemCount is the sum of quantities, not the number of entries.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// RestaurantID returns the restaurant of the first entry, or 0 for an empty cart.
func (s *CartService) RestaurantID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return 0
	}
	return s.items[0].Food.RestaurantID
}

func (s *CartService) indexOf(foodID int) int {
	for i, item := range s.items {
		if item.Food.ID == foodID {
			return i
		}
	}
	return -1
}

func (s *CartService) remove(foodID int) {
	if i := s.indexOf(foodID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

func (s *CartService) recompute() {
	s.total = domain.Subtotal(s.items)
}

var _ CartServiceInterface = (*CartService)(nil)
