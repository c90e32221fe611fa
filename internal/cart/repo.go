package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"rimss/internal/domain/cart"
	"rimss/internal/products"
	"rimss/internal/util"
)

// Repo is the cart collaborator. Every mutation answers with the full
// current snapshot; callers replace their state with it rather than merging.
type Repo struct {
	mu    sync.Mutex
	items []cart.Item

	catalog *products.Repo
	delay   time.Duration
}

func NewRepo(catalog *products.Repo, seeded []cart.Item, delay time.Duration) *Repo {
	return &Repo{items: seeded, catalog: catalog, delay: delay}
}

func (r *Repo) Get(ctx context.Context) ([]cart.Item, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

// AddItem appends a line for the product, merging into an existing line when
// the (product, color, size) tuple already occurs.
func (r *Repo) AddItem(ctx context.Context, productID string, qty int, color, size string) ([]cart.Item, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	p, ok := r.catalog.ByID(productID)
	if !ok {
		return nil, fmt.Errorf("add to cart: %w", products.ErrNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.Product.ID == productID && it.SelectedColor == color && it.SelectedSize == size {
			r.items[i].Quantity += qty
			return r.snapshot(), nil
		}
	}

	r.items = append(r.items, cart.Item{
		ID:            uuid.NewString(),
		Product:       p,
		Quantity:      qty,
		SelectedColor: color,
		SelectedSize:  size,
	})
	return r.snapshot(), nil
}

// UpdateItem sets the line's quantity. A quantity of zero or less removes
// the line; an unknown item ID leaves the cart untouched.
func (r *Repo) UpdateItem(ctx context.Context, itemID string, qty int) ([]cart.Item, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID != itemID {
			continue
		}
		if qty <= 0 {
			r.items = append(r.items[:i], r.items[i+1:]...)
		} else {
			r.items[i].Quantity = qty
		}
		break
	}
	return r.snapshot(), nil
}

func (r *Repo) RemoveItem(ctx context.Context, itemID string) ([]cart.Item, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return r.snapshot(), nil
}

func (r *Repo) Clear(ctx context.Context) error {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

// Drain hands back the current lines and empties the cart in one step.
// Order creation uses it so the purchased lines and the cleared cart can
// never disagree.
func (r *Repo) Drain() []cart.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.snapshot()
	r.items = nil
	return out
}

// callers must hold r.mu
func (r *Repo) snapshot() []cart.Item {
	return append([]cart.Item(nil), r.items...)
}
