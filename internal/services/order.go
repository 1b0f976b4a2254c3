package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/florista/storefront/internal/errors"
	"github.com/florista/storefront/internal/metrics"
	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
	"github.com/florista/storefront/internal/scheduler"
	"github.com/florista/storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderService interface {
	Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error)
	CurrentOrder(ctx context.Context, sessionID string) (*models.Order, error)
	AdvanceStatus(ctx context.Context, sessionID string, target models.OrderStatus) (*models.Order, error)
}

// OrderTiming holds the simulated fulfilment delays, both measured from
// checkout.
type OrderTiming struct {
	AssemblingDelay time.Duration
	ReadyDelay      time.Duration
}

type orderService struct {
	orders   *repository.OrderRepository
	cart     *repository.CartRepository
	sessions *repository.SessionRepository
	sched    *scheduler.Scheduler
	timing   OrderTiming
}

func NewOrderService(orders *repository.OrderRepository, cart *repository.CartRepository, sessions *repository.SessionRepository, sched *scheduler.Scheduler, timing OrderTiming) OrderService {
	return &orderService{
		orders:   orders,
		cart:     cart,
		sessions: sessions,
		sched:    sched,
		timing:   timing,
	}
}

// Checkout converts the session's cart into an order. Guards: non-empty cart
// and non-empty customer name, phone and address. A failed guard changes
// nothing — no order, cart untouched. On success the cart items and total
// are snapshotted into the order, the cart is cleared, the cart dialog is
// closed and the active view switches to tracking.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error) {

	cart, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(cart.Lines) == 0 {
		metrics.CheckoutRejected("empty_cart")

		return nil, errors.BadRequestError("Cannot checkout with an empty cart")
	}

	customer := models.Customer{
		Name:    utils.Sanitize(req.Name),
		Phone:   utils.Sanitize(req.Phone),
		Address: utils.Sanitize(req.Address),
	}

	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		metrics.CheckoutRejected("missing_customer_details")

		return nil, errors.ValidationError("Customer name, phone and address are required")
	}

	order := &models.Order{
		ID:        "ORD-" + uuid.NewString(),
		SessionID: sessionID,
		Status:    models.OrderStatusPending,
		Items:     append([]models.CartLine(nil), cart.Lines...),
		Total:     cart.Total,
		Customer:  customer,
		CreatedAt: time.Now(),
	}

	// A session holds one order at a time; a new checkout replaces the old
	// order and kills its outstanding timers so they cannot touch this one.
	replacedID := s.orders.Save(ctx, order)
	if replacedID != "" {
		s.sched.Cancel(replacedID)
		slog.Info("Replaced previous order", slog.String("orderId", replacedID))
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.CartOpen = false
	state.ActiveView = models.ViewTracking

	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}

	s.sched.Schedule(order.ID, s.timing.AssemblingDelay, func() {
		s.advanceTimed(order.ID, models.OrderStatusAssembling)
	})
	s.sched.Schedule(order.ID, s.timing.ReadyDelay, func() {
		s.advanceTimed(order.ID, models.OrderStatusReady)
	})

	metrics.OrderCreated()

	return order, nil
}

func (s *orderService) CurrentOrder(ctx context.Context, sessionID string) (*models.Order, error) {

	order, ok := s.orders.Current(ctx, sessionID)
	if !ok {
		return nil, errors.NotFoundError("No current order for this session")
	}

	return order, nil
}

// AdvanceStatus applies one of the two user-triggered transitions the
// tracking screen offers: ready → completed (pickup) or ready → delivering
// (delivery). Everything else is rejected; there is no way to force an
// arbitrary status onto an order.
func (s *orderService) AdvanceStatus(ctx context.Context, sessionID string, target models.OrderStatus) (*models.Order, error) {

	if target != models.OrderStatusCompleted && target != models.OrderStatusDelivering {
		return nil, errors.BadRequestError("Unsupported target status")
	}

	current, ok := s.orders.Current(ctx, sessionID)
	if !ok {
		return nil, errors.NotFoundError("No current order for this session")
	}

	order, ok := s.orders.UpdateByID(ctx, current.ID, func(o *models.Order) bool {
		if o.Status != models.OrderStatusReady {
			return false
		}

		o.Status = target

		return true
	})
	if !ok {
		return nil, errors.InvalidTransitionError("Order is not ready yet")
	}

	// Both terminal states; nothing left for the timers to do.
	s.sched.Cancel(order.ID)

	metrics.OrderTransition(string(target))

	return order, nil
}

// advanceTimed runs from a scheduler callback. Transitions are id-matched
// and forward-only: a timer whose order was replaced finds no target, and a
// late timer never rewinds a status the order has already moved past.
func (s *orderService) advanceTimed(orderID string, target models.OrderStatus) {

	order, ok := s.orders.UpdateByID(context.Background(), orderID, func(o *models.Order) bool {
		switch target {
		case models.OrderStatusAssembling:
			if o.Status != models.OrderStatusPending {
				return false
			}

			o.Status = models.OrderStatusAssembling
		case models.OrderStatusReady:
			if o.Status != models.OrderStatusPending && o.Status != models.OrderStatusAssembling {
				return false
			}

			now := time.Now()
			o.Status = models.OrderStatusReady
			o.ReadyAt = &now
		default:
			return false
		}

		return true
	})

	if !ok {
		slog.Debug("Timed transition skipped",
			slog.String("orderId", orderID),
			slog.String("target", string(target)))

		return
	}

	metrics.OrderTransition(string(target))

	slog.Info("Order status advanced",
		slog.String("orderId", order.ID),
		slog.String("status", string(order.Status)))
}
