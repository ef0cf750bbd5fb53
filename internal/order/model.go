package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Order struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"sessionId"`
	TotalAmount     string    `json:"totalAmount"`
	Status          Status    `json:"status"`
	PaymentIntentID *string   `json:"paymentIntentId"`
	CustomerEmail   *string   `json:"customerEmail"`
	CustomerName    *string   `json:"customerName"`
	ShippingAddress *string   `json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OrderItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderDetail is an order together with its line items.
type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}

type CreateOrderParams struct {
	SessionID       string
	TotalAmount     string
	Status          Status
	PaymentIntentID string
	CustomerEmail   string
	CustomerName    string
	ShippingAddress string
}

type AddOrderItemParams struct {
	OrderID   string
	ProductID string
	Quantity  int
	Price     string
}
