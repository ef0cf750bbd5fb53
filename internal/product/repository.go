package product

import (
	"context"
	"sync"
)

type Repository interface {
	List(ctx context.Context) []Product
	GetByID(ctx context.Context, id string) (*Product, bool)
	ListFeatured(ctx context.Context) []Product
}

// MemoryRepository holds the catalog in process memory. It is populated once
// by NewMemoryRepository and only read afterwards.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[string]Product
	order    []string
}

func NewMemoryRepository(seed []Product) *MemoryRepository {
	r := &MemoryRepository{
		products: make(map[string]Product, len(seed)),
		order:    make([]string, 0, len(seed)),
	}
	for _, p := range seed {
		if _, dup := r.products[p.ID]; !dup {
			r.order = append(r.order, p.ID)
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (r *MemoryRepository) ListFeatured(ctx context.Context) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, id := range r.order {
		if p := r.products[id]; p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// SetPrice changes a catalog price in place. Not reachable from the HTTP
// surface; used to check that order snapshots keep their price.
func (r *MemoryRepository) SetPrice(id, price string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return false
	}
	p.Price = price
	r.products[id] = p
	return true
}

var _ Repository = (*MemoryRepository)(nil)
