package repository

import (
	"context"
	"sync"

	"github.com/florista/storefront/internal/models"
)

// OrderRepository keeps at most one current order per session. Saving an
// order for a session replaces the previous one; the replaced order's id is
// dropped from the index so timed transitions aimed at it become no-ops.
type OrderRepository struct {
	mu        sync.RWMutex
	bySession map[string]*models.Order
	sessionOf map[string]string // order id -> session id
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		bySession: make(map[string]*models.Order),
		sessionOf: make(map[string]string),
	}
}

func (r *OrderRepository) Current(_ context.Context, sessionID string) (*models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.bySession[sessionID]
	if !ok {
		return nil, false
	}

	return copyOrder(order), true
}

func (r *OrderRepository) GetByID(_ context.Context, orderID string) (*models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessionID, ok := r.sessionOf[orderID]
	if !ok {
		return nil, false
	}

	return copyOrder(r.bySession[sessionID]), true
}

// Save stores the order as its session's current one, replacing any
// predecessor. The replaced order's id (if any) is returned so the caller
// can cancel its scheduled transitions.
func (r *OrderRepository) Save(_ context.Context, order *models.Order) (replacedID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.bySession[order.SessionID]; ok && prev.ID != order.ID {
		delete(r.sessionOf, prev.ID)
		replacedID = prev.ID
	}

	r.bySession[order.SessionID] = copyOrder(order)
	r.sessionOf[order.ID] = order.SessionID

	return replacedID
}

// UpdateByID applies fn to the stored order with that id, if it is still
// current. fn reporting false leaves the order untouched.
func (r *OrderRepository) UpdateByID(_ context.Context, orderID string, fn func(*models.Order) bool) (*models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID, ok := r.sessionOf[orderID]
	if !ok {
		return nil, false
	}

	order := r.bySession[sessionID]
	if !fn(order) {
		return nil, false
	}

	return copyOrder(order), true
}

func copyOrder(order *models.Order) *models.Order {
	out := *order
	out.Items = make([]models.CartLine, len(order.Items))
	copy(out.Items, order.Items)

	if order.ReadyAt != nil {
		readyAt := *order.ReadyAt
		out.ReadyAt = &readyAt
	}

	return &out
}
