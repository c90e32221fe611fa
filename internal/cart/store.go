package cart

import (
	"context"
	"log/slog"
	"sync"

	"rimss/internal/domain/cart"
	"rimss/internal/domain/product"
)

// API is the slice of the cart collaborator the store needs. Every mutation
// returns the collaborator's full snapshot, which the store adopts verbatim.
type API interface {
	Get(ctx context.Context) ([]cart.Item, error)
	AddItem(ctx context.Context, productID string, qty int, color, size string) ([]cart.Item, error)
	UpdateItem(ctx context.Context, itemID string, qty int) ([]cart.Item, error)
	RemoveItem(ctx context.Context, itemID string) ([]cart.Item, error)
	Clear(ctx context.Context) error
}

// Store owns the cart line items. It never derives or merges lists locally;
// the item sequence is always the latest snapshot the collaborator returned
// (server wins, last write by completion order).
type Store struct {
	mu      sync.RWMutex
	items   []cart.Item
	loading bool

	api API
	log *slog.Logger
}

// NewStore builds the store and fetches the initial snapshot before
// returning. A failed fetch is logged and leaves the cart empty; loading
// settles false either way.
func NewStore(ctx context.Context, api API, log *slog.Logger) *Store {
	s := &Store{
		loading: true,
		api:     api,
		log:     log,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	items, err := s.api.Get(ctx)
	if err != nil {
		s.log.Error("cart: loading snapshot", "err", err)
		return
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *Store) AddToCart(ctx context.Context, p product.Product, qty int, color, size string) error {
	snap, err := s.api.AddItem(ctx, p.ID, qty, color, size)
	if err != nil {
		s.log.Error("cart: add item", "product_id", p.ID, "err", err)
		return err
	}
	s.replace(snap)
	return nil
}

func (s *Store) UpdateQuantity(ctx context.Context, itemID string, qty int) error {
	// qty <= 0 is a removal request the collaborator honors; no client-side
	// validation here.
	snap, err := s.api.UpdateItem(ctx, itemID, qty)
	if err != nil {
		s.log.Error("cart: update quantity", "item_id", itemID, "err", err)
		return err
	}
	s.replace(snap)
	return nil
}

func (s *Store) RemoveFromCart(ctx context.Context, itemID string) error {
	snap, err := s.api.RemoveItem(ctx, itemID)
	if err != nil {
		s.log.Error("cart: remove item", "item_id", itemID, "err", err)
		return err
	}
	s.replace(snap)
	return nil
}

// ClearCart empties the cart directly instead of waiting for a snapshot;
// the expected result is always the empty sequence.
func (s *Store) ClearCart(ctx context.Context) error {
	if err := s.api.Clear(ctx); err != nil {
		s.log.Error("cart: clear", "err", err)
		return err
	}
	s.replace(nil)
	return nil
}

func (s *Store) replace(items []cart.Item) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *Store) Items() []cart.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]cart.Item(nil), s.items...)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// TotalItems sums the quantities across all lines. Derived on every call,
// never cached.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity across all lines. Discounted
// lines are priced at their original (pre-discount) price. That reads
// inverted, but it is the storefront's established checkout total; confirm
// with the product owner before changing it.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, it := range s.items {
		unit := it.Product.Price
		if it.Product.IsDiscounted && it.Product.OriginalPrice > 0 {
			unit = it.Product.OriginalPrice
		}
		total += unit * float64(it.Quantity)
	}
	return total
}
