package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	ListItems(ctx context.Context, sessionID string) []CartItem
	AddItem(ctx context.Context, sessionID, productID string, quantity int) CartItem
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) bool
	RemoveItem(ctx context.Context, sessionID, productID string) bool
	Clear(ctx context.Context, sessionID string) int
}

// sessionCart holds one session's items. Its mutex serializes every
// mutation for that session; different sessions never contend.
type sessionCart struct {
	mu      sync.Mutex
	items   []CartItem
	removed bool
}

func (c *sessionCart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*sessionCart
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]*sessionCart)}
}

// lockSession returns the locked cart for sessionID, creating it when create
// is true. It returns nil when the session has no cart and create is false.
func (r *MemoryRepository) lockSession(sessionID string, create bool) *sessionCart {
	for {
		r.mu.Lock()
		c, ok := r.sessions[sessionID]
		if !ok {
			if !create {
				r.mu.Unlock()
				return nil
			}
			c = &sessionCart{}
			r.sessions[sessionID] = c
		}
		r.mu.Unlock()

		c.mu.Lock()
		if !c.removed {
			return c
		}
		// Cleared and dropped while we waited; look it up again.
		c.mu.Unlock()
	}
}

// dropIfEmpty removes an empty cart from the index. c must be locked by the caller.
func (r *MemoryRepository) dropIfEmpty(sessionID string, c *sessionCart) {
	if len(c.items) > 0 {
		return
	}
	r.mu.Lock()
	if r.sessions[sessionID] == c {
		delete(r.sessions, sessionID)
	}
	r.mu.Unlock()
	c.removed = true
}

func (r *MemoryRepository) ListItems(ctx context.Context, sessionID string) []CartItem {
	c := r.lockSession(sessionID, false)
	if c == nil {
		return []CartItem{}
	}
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (r *MemoryRepository) AddItem(ctx context.Context, sessionID, productID string, quantity int) CartItem {
	if quantity <= 0 {
		quantity = 1
	}

	c := r.lockSession(sessionID, true)
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity += quantity
		return c.items[i]
	}

	item := CartItem{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	c.items = append(c.items, item)
	return item
}

func (r *MemoryRepository) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) bool {
	c := r.lockSession(sessionID, false)
	if c == nil {
		return false
	}
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return false
	}

	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		r.dropIfEmpty(sessionID, c)
		return true
	}

	c.items[i].Quantity = quantity
	return true
}

func (r *MemoryRepository) RemoveItem(ctx context.Context, sessionID, productID string) bool {
	c := r.lockSession(sessionID, false)
	if c == nil {
		return false
	}
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	r.dropIfEmpty(sessionID, c)
	return true
}

func (r *MemoryRepository) Clear(ctx context.Context, sessionID string) int {
	c := r.lockSession(sessionID, false)
	if c == nil {
		return 0
	}
	defer c.mu.Unlock()

	n := len(c.items)
	c.items = nil
	r.dropIfEmpty(sessionID, c)
	return n
}

var _ Repository = (*MemoryRepository)(nil)
