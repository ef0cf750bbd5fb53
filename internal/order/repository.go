package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) Order
	AddOrderItem(ctx context.Context, params AddOrderItemParams) OrderItem
	GetOrder(ctx context.Context, id string) (*Order, bool)
	GetOrderItems(ctx context.Context, orderID string) []OrderItem
	GetOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*Order, bool)
	UpdateOrderStatus(ctx context.Context, id string, status Status, paymentIntentID *string) bool
	ListByCustomerEmail(ctx context.Context, email string) []Order
}

type storedOrder struct {
	Order
	seq uint64
}

type MemoryRepository struct {
	mu    sync.RWMutex
	seq   uint64
	now   func() time.Time
	order map[string]*storedOrder
	items map[string][]OrderItem
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		now:   time.Now,
		order: make(map[string]*storedOrder),
		items: make(map[string][]OrderItem),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func copyOrder(o Order) Order {
	o.PaymentIntentID = cloneString(o.PaymentIntentID)
	o.CustomerEmail = cloneString(o.CustomerEmail)
	o.CustomerName = cloneString(o.CustomerName)
	o.ShippingAddress = cloneString(o.ShippingAddress)
	return o
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func (r *MemoryRepository) CreateOrder(ctx context.Context, params CreateOrderParams) Order {
	status := params.Status
	if status == "" {
		status = StatusPending
	}

	o := Order{
		ID:              uuid.NewString(),
		SessionID:       params.SessionID,
		TotalAmount:     params.TotalAmount,
		Status:          status,
		PaymentIntentID: optional(params.PaymentIntentID),
		CustomerEmail:   optional(params.CustomerEmail),
		CustomerName:    optional(params.CustomerName),
		ShippingAddress: optional(params.ShippingAddress),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	o.CreatedAt = r.now()
	r.order[o.ID] = &storedOrder{Order: o, seq: r.seq}

	return copyOrder(o)
}

// AddOrderItem appends an item to the order. The order id is not checked.
func (r *MemoryRepository) AddOrderItem(ctx context.Context, params AddOrderItemParams) OrderItem {
	item := OrderItem{
		ID:        uuid.NewString(),
		OrderID:   params.OrderID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
		Price:     params.Price,
	}

	r.mu.Lock()
	r.items[item.OrderID] = append(r.items[item.OrderID], item)
	r.mu.Unlock()

	return item
}

func (r *MemoryRepository) GetOrder(ctx context.Context, id string) (*Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.order[id]
	if !ok {
		return nil, false
	}
	o := copyOrder(stored.Order)
	return &o, true
}

func (r *MemoryRepository) GetOrderItems(ctx context.Context, orderID string) []OrderItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.items[orderID]
	out := make([]OrderItem, len(items))
	copy(out, items)
	return out
}

func (r *MemoryRepository) GetOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*Order, bool) {
	if paymentIntentID == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.order {
		if stored.PaymentIntentID != nil && *stored.PaymentIntentID == paymentIntentID {
			o := copyOrder(stored.Order)
			return &o, true
		}
	}
	return nil, false
}

// UpdateOrderStatus sets the status, and the payment intent id when one is
// given. It reports false for an unknown id.
func (r *MemoryRepository) UpdateOrderStatus(ctx context.Context, id string, status Status, paymentIntentID *string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.order[id]
	if !ok {
		return false
	}

	stored.Status = status
	if paymentIntentID != nil {
		stored.PaymentIntentID = cloneString(paymentIntentID)
	}
	return true
}

// ListByCustomerEmail returns the orders placed with email, newest first.
func (r *MemoryRepository) ListByCustomerEmail(ctx context.Context, email string) []Order {
	r.mu.RLock()
	matched := make([]*storedOrder, 0)
	for _, stored := range r.order {
		if stored.CustomerEmail != nil && *stored.CustomerEmail == email {
			matched = append(matched, stored)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	orders := make([]Order, 0, len(matched))
	for _, stored := range matched {
		orders = append(orders, copyOrder(stored.Order))
	}
	r.mu.RUnlock()

	return orders
}

var _ Repository = (*MemoryRepository)(nil)
