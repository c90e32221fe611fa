package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"rimss/internal/domain/cart"
	"rimss/internal/domain/order"
	"rimss/internal/domain/user"
	"rimss/internal/util"
)

// CartSource hands over the purchased lines and empties the cart in the
// same step.
type CartSource interface {
	Drain() []cart.Item
}

type CreateInput struct {
	TotalAmount     float64
	ShippingAddress user.Address
	PaymentMethod   string
}

type Repo struct {
	mu     sync.Mutex
	orders []order.Order

	cart  CartSource
	delay time.Duration
}

func NewRepo(seeded []order.Order, cart CartSource, delay time.Duration) *Repo {
	return &Repo{orders: seeded, cart: cart, delay: delay}
}

func (r *Repo) GetAll(ctx context.Context) ([]order.Order, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]order.Order(nil), r.orders...), nil
}

// Create builds a pending order from the current cart contents and drains
// the cart.
func (r *Repo) Create(ctx context.Context, u user.User, in CreateInput) (order.Order, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return order.Order{}, err
	}

	now := time.Now().UTC()
	o := order.Order{
		ID:              uuid.NewString(),
		User:            u,
		Items:           r.cart.Drain(),
		TotalAmount:     in.TotalAmount,
		Status:          order.StatusPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   order.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.mu.Lock()
	r.orders = append(r.orders, o)
	r.mu.Unlock()
	return o, nil
}
