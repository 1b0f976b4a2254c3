package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAssembling OrderStatus = "assembling"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
)

type Customer struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Order is a snapshot of the cart at checkout time. Items and Total are
// frozen at creation and never recomputed; only Status and ReadyAt change
// afterwards.
type Order struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Status    OrderStatus `json:"status"`
	Items     []CartLine  `json:"items"`
	Total     float64     `json:"total"`
	Customer  Customer    `json:"customer"`
	CreatedAt time.Time   `json:"created_at"`
	ReadyAt   *time.Time  `json:"ready_at,omitempty"`
}

type CheckoutRequest struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Only the two transitions the tracking screen offers are accepted.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=delivering completed"`
}
