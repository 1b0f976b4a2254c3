// Package mocks provides testify mocks for the service interfaces, used by
// the handler tests.
package mocks

import (
	"context"

	"github.com/florista/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, itemID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, delta int) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, itemID, delta)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) CurrentOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) AdvanceStatus(ctx context.Context, sessionID string, target models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, sessionID, target)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

type ComposerService struct {
	mock.Mock
}

func (m *ComposerService) State(ctx context.Context, sessionID string) (*models.ComposerState, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ComposerState), args.Error(1)
}

func (m *ComposerService) ToggleFlower(ctx context.Context, sessionID string, flowerID int64) (*models.ComposerState, error) {
	args := m.Called(ctx, sessionID, flowerID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ComposerState), args.Error(1)
}

func (m *ComposerService) Generate(ctx context.Context, sessionID string, req *models.GenerateBouquetRequest) (*models.ComposerState, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ComposerState), args.Error(1)
}

func (m *ComposerService) AddToCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListFlowers(ctx context.Context) ([]models.Flower, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Flower), args.Error(1)
}

func (m *CatalogService) ListBouquets(ctx context.Context) ([]models.Bouquet, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Bouquet), args.Error(1)
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) State(ctx context.Context, sessionID string) (*models.SessionState, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.SessionState), args.Error(1)
}

func (m *SessionService) SetActiveView(ctx context.Context, sessionID, view string) (*models.SessionState, error) {
	args := m.Called(ctx, sessionID, view)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.SessionState), args.Error(1)
}

func (m *SessionService) SetCartOpen(ctx context.Context, sessionID string, open bool) (*models.SessionState, error) {
	args := m.Called(ctx, sessionID, open)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.SessionState), args.Error(1)
}
