package order

import (
	"time"

	"rimss/internal/domain/cart"
	"rimss/internal/domain/user"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Order struct {
	ID              string       `json:"id"`
	User            user.User    `json:"user"`
	Items           []cart.Item  `json:"items"`
	TotalAmount     float64      `json:"total_amount"`
	Status          string       `json:"status"`
	ShippingAddress user.Address `json:"shipping_address"`
	PaymentMethod   string       `json:"payment_method"`
	PaymentStatus   string       `json:"payment_status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
