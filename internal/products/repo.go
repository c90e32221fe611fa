package products

import (
	"context"
	"errors"
	"strings"
	"time"

	"rimss/internal/domain/product"
	"rimss/internal/util"
)

var ErrNotFound = errors.New("product not found")

// Repo serves the catalog from memory. The catalog is immutable once
// seeded, so reads need no locking.
type Repo struct {
	products []product.Product
	delay    time.Duration
}

func NewRepo(seeded []product.Product, delay time.Duration) *Repo {
	return &Repo{products: seeded, delay: delay}
}

// ByID is the latency-free lookup other backend collaborators use.
func (r *Repo) ByID(id string) (product.Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return product.Product{}, false
}

func (r *Repo) GetAll(ctx context.Context, f product.Filters) ([]product.Product, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	var out []product.Product
	for _, p := range r.products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p product.Product, f product.Filters) bool {
	if f.Category != "" && f.Category != "All" && p.Category != f.Category {
		return false
	}
	if f.IsDiscounted && !p.IsDiscounted {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) {
			return false
		}
	}
	if f.Color != "" {
		found := false
		for _, c := range p.Colors {
			if strings.Contains(strings.ToLower(c), strings.ToLower(f.Color)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *Repo) GetByID(ctx context.Context, id string) (product.Product, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return product.Product{}, err
	}
	p, ok := r.ByID(id)
	if !ok {
		return product.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *Repo) GetFeatured(ctx context.Context) ([]product.Product, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	var out []product.Product
	for _, p := range r.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetCategories lists the distinct catalog categories in seed order,
// prefixed with the "All" pseudo-category.
func (r *Repo) GetCategories(ctx context.Context) ([]string, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	out := []string{"All"}
	seen := map[string]bool{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}
