package repository

import (
	"context"
	"sync"
	"time"

	"github.com/florista/storefront/internal/models"
)

// CartRepository keeps one cart per session in memory. Values cross the
// repository boundary by deep copy, so a caller mutating a returned cart
// never touches the stored one. This is what keeps an order's item snapshot
// independent of later cart edits.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*models.Cart)}
}

// Get returns the session's cart, creating an empty one on first use.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*models.Cart, error) {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if !ok {
		return &models.Cart{SessionID: sessionID, Lines: []models.CartLine{}, UpdatedAt: time.Now()}, nil
	}

	return copyCart(cart), nil
}

func (r *CartRepository) Save(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.SessionID] = copyCart(cart)

	return nil
}

func (r *CartRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = &models.Cart{SessionID: sessionID, Lines: []models.CartLine{}, UpdatedAt: time.Now()}

	return nil
}

func copyCart(cart *models.Cart) *models.Cart {
	out := *cart
	out.Lines = make([]models.CartLine, len(cart.Lines))
	copy(out.Lines, cart.Lines)

	return &out
}
