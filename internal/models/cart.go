package models

import "time"

// CartLine is one purchasable thing in a cart and how many of it are queued.
// ItemID is a string so that catalog entries ("flower-3", "bouquet-1") and
// synthesized custom bouquets ("custom-<uuid>") share one id space without
// colliding.
type CartLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AddCartItemRequest struct {
	ItemID string  `json:"item_id" validate:"required"`
	Name   string  `json:"name"    validate:"required"`
	Price  float64 `json:"price"   validate:"required,gt=0"`
}

// Delta is a signed adjustment. A line whose quantity would drop to zero or
// below is removed from the cart rather than kept at zero.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}
