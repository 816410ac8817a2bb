package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderConfig struct {
	Latency  time.Duration
	Timeline []TimelineStep
}

type orderNotice struct {
	event domain.OrderEvent
	order domain.Order
}

// OrderService keeps the orders of the session, most recent first, and advances
// each one along its status timeline. Listeners are called from a single
// dispatcher goroutine in the order the changes were applied.
type OrderService struct {
	mu        sync.Mutex
	orders    []domain.Order
	timers    map[string][]Timer
	closed    bool
	pending   []orderNotice
	wake      chan struct{}
	done      chan struct{}
	config    OrderConfig
	scheduler Scheduler
	listeners []OrderListener
	qr        QRGenerator
	logger    *zap.Logger
	now       func() time.Time
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewOrderService(cfg OrderConfig, scheduler Scheduler, qr QRGenerator, logger *zap.Logger, listeners ...OrderListener) *OrderService {
	if cfg.Timeline == nil {
		cfg.Timeline = DefaultTimeline()
	}
	if scheduler == nil {
		scheduler = RealScheduler()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &OrderService{
		orders:    []domain.Order{},
		timers:    make(map[string][]Timer),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		config:    cfg,
		scheduler: scheduler,
		listeners: listeners,
		qr:        qr,
		logger:    logger,
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
	}
	go s.dispatch()
	return s
}

// CreateOrder materializes items into a new pending order. Callers are expected
// to have validated the session, the address and that items is not empty.
func (s *OrderService) CreateOrder(ctx context.Context, items []domain.CartItem, restaurant domain.Restaurant, deliveryAddress string, paymentMethod domain.PaymentMethod) (domain.Order, error) {
	if err := sleep(ctx, s.config.Latency); err != nil {
		return domain.Order{}, err
	}

	createdAt := s.now()
	estimated, err := domain.EstimateDelivery(createdAt, restaurant)
	if err != nil {
		return domain.Order{}, fmt.Errorf("restaurant %d delivery time %q: %w", restaurant.ID, restaurant.DeliveryTime, err)
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	order := domain.Order{
		ID:                "ORD-" + uuid.NewString(),
		Items:             snapshot,
		Total:             domain.OrderTotal(snapshot, restaurant),
		Restaurant:        restaurant,
		Status:            domain.StatusPending,
		CreatedAt:         createdAt,
		EstimatedDelivery: estimated,
		DeliveryAddress:   deliveryAddress,
		PaymentMethod:     paymentMethod,
	}

	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	if !s.closed {
		s.scheduleLocked(order.ID)
	}
	s.enqueueLocked(domain.EventOrderCreated, order)
	s.mu.Unlock()

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.Int("restaurant_id", restaurant.ID),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Time("estimated_delivery", estimated))

	return copyOrder(order), nil
}

func (s *OrderService) GetOrderByID(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return copyOrder(s.orders[i]), true
	}
	return domain.Order{}, false
}

// UpdateOrderStatus sets the status of order id without checking the transition.
// It reports whether the order exists.
func (s *OrderService) UpdateOrderStatus(id string, status domain.OrderStatus) bool {
	return s.setStatus(id, status, nil)
}

func (s *OrderService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, len(s.orders))
	for i, order := range s.orders {
		orders[i] = copyOrder(order)
	}
	return orders
}

func (s *OrderService) QRCode(id string) ([]byte, error) {
	if _, ok := s.GetOrderByID(id); !ok {
		return nil, ErrOrderNotFound
	}
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qr.Generate(id)
}

// Close stops every pending status transition and waits for queued listener
// notifications to be delivered. Orders stay readable.
func (s *OrderService) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		for id, timers := range s.timers {
			for _, timer := range timers {
				timer.Stop()
			}
			delete(s.timers, id)
		}
		s.signal()
	}
	s.mu.Unlock()

	<-s.done
	s.cancel()
}

func (s *OrderService) scheduleLocked(id string) {
	timers := make([]Timer, 0, len(s.config.Timeline))
	for _, step := range s.config.Timeline {
		step := step
		timers = append(timers, s.scheduler.AfterFunc(step.Offset, func() {
			s.advance(id, step.Status)
		}))
	}
	s.timers[id] = timers
}

// advance applies a scheduled transition only when target directly follows the
// current status, so the timeline never skips or reverses.
func (s *OrderService) advance(id string, target domain.OrderStatus) {
	s.setStatus(id, target, func(current domain.OrderStatus) bool {
		next, ok := current.Next()
		if !ok || next != target {
			s.logger.Debug("skipping scheduled transition",
				zap.String("order_id", id),
				zap.String("current", string(current)),
				zap.String("target", string(target)))
			return false
		}
		return true
	})
}

func (s *OrderService) setStatus(id string, status domain.OrderStatus, allow func(current domain.OrderStatus) bool) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	if allow != nil && (s.closed || !allow(s.orders[i].Status)) {
		s.mu.Unlock()
		return true
	}
	s.orders[i].Status = status
	s.enqueueLocked(domain.EventOrderStatusChanged, s.orders[i])
	s.mu.Unlock()

	s.logger.Info("order status updated", zap.String("order_id", id), zap.String("status", string(status)))
	return true
}

// enqueueLocked queues a notification for the dispatcher. Changes made after
// Close are not announced.
func (s *OrderService) enqueueLocked(eventType string, order domain.Order) {
	if s.closed || len(s.listeners) == 0 {
		return
	}
	s.pending = append(s.pending, orderNotice{
		event: domain.OrderEvent{
			Type:         eventType,
			OrderID:      order.ID,
			RestaurantID: order.Restaurant.ID,
			Status:       order.Status,
			Total:        order.Total,
			Timestamp:    s.now(),
		},
		order: copyOrder(order),
	})
	s.signal()
}

func (s *OrderService) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *OrderService) dispatch() {
	defer close(s.done)
	for {
		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		closed := s.closed
		s.mu.Unlock()

		for _, notice := range batch {
			for _, listener := range s.listeners {
				listener.OrderChanged(s.ctx, notice.event, notice.order)
			}
		}

		if len(batch) == 0 {
			if closed {
				return
			}
			<-s.wake
		}
	}
}

func (s *OrderService) indexOf(id string) int {
	for i, order := range s.orders {
		if order.ID == id {
			return i
		}
	}
	return -1
}

func copyOrder(order domain.Order) domain.Order {
	items := make([]domain.CartItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
