package service

import (
	"context"
	"time"

	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, delta int) (*models.Cart, error)
}

type cartService struct {
	repo *repository.CartRepository
}

func NewCartService(repo *repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.repo.Get(ctx, sessionID)
}

// AddItem merges repeat adds of the same item into one line: an existing
// line's quantity goes up by one, otherwise a new line starts at one.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false

	for i := range cart.Lines {
		if cart.Lines[i].ItemID == req.ItemID {
			cart.Lines[i].Quantity++
			found = true

			break
		}
	}

	if !found {
		cart.Lines = append(cart.Lines, models.CartLine{
			ItemID:    req.ItemID,
			Name:      req.Name,
			UnitPrice: req.Price,
			Quantity:  1,
		})
	}

	s.finalize(cart)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem deletes the line if present; an absent id is a no-op, not an
// error.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := cart.Lines[:0]

	for _, line := range cart.Lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}

	cart.Lines = lines

	s.finalize(cart)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateQuantity applies a signed delta. A quantity that would reach zero or
// below removes the line entirely; the cart never stores a zero-quantity
// row. An absent id is a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, delta int) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Lines {
		if cart.Lines[i].ItemID != itemID {
			continue
		}

		newQty := cart.Lines[i].Quantity + delta

		if newQty > 0 {
			cart.Lines[i].Quantity = newQty
		} else {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		}

		break
	}

	s.finalize(cart)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartService) finalize(cart *models.Cart) {
	cart.Total = cartTotal(cart.Lines)
	cart.UpdatedAt = time.Now()
}

func cartTotal(lines []models.CartLine) float64 {

	var total float64

	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}

	return total
}
