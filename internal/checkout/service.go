package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-be/internal/apperror"
	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	CreatePaymentIntent(ctx context.Context, params CreatePaymentParams) (*PaymentIntentResult, error)
	HandlePaymentSucceeded(ctx context.Context, referenceID string, metadata map[string]string) error
	HandlePaymentFailed(ctx context.Context, referenceID string) error
}

type Options struct {
	Currency string
	Timeout  time.Duration
}

type service struct {
	carts   cart.Service
	orders  order.Repository
	gateway payment.Gateway
	opts    Options
}

func NewService(carts cart.Service, orders order.Repository, gateway payment.Gateway, opts Options) Service {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &service{carts: carts, orders: orders, gateway: gateway, opts: opts}
}

var hundred = decimal.NewFromInt(100)

// CreatePaymentIntent authorizes the session's cart total with the payment
// provider and records a pending order whose items snapshot the prices read
// with the cart. The cart is not locked between the read and the order write.
func (s *service) CreatePaymentIntent(ctx context.Context, params CreatePaymentParams) (*PaymentIntentResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreatePaymentIntent"),
		zap.String("session_id", params.SessionID),
	)

	amount, err := decimal.NewFromString(strings.TrimSpace(params.Amount))
	if err != nil || !amount.IsPositive() {
		log.Info("rejecting invalid amount", zap.String("amount", params.Amount))
		return nil, ErrInvalidAmount
	}
	if params.SessionID == "" {
		return nil, ErrSessionIDRequired
	}

	lines, err := s.carts.GetCart(ctx, params.SessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	total, err := cart.Total(lines)
	if err != nil {
		log.Error("failed to compute cart total", zap.Error(err))
		return nil, err
	}
	if !total.Equal(amount) {
		log.Info("amount does not match cart total",
			zap.String("amount", amount.StringFixed(2)),
			zap.String("cart_total", total.StringFixed(2)),
		)
		return nil, ErrAmountMismatch
	}

	items, err := snapshotItems(lines)
	if err != nil {
		log.Error("failed to snapshot cart prices", zap.Error(err))
		return nil, err
	}

	email := user.NormalizeEmail(params.Customer.Email)
	metadata := map[string]string{payment.MetadataSessionID: params.SessionID}
	if email != "" {
		metadata[payment.MetadataCustomerEmail] = email
	}
	if params.Customer.Name != "" {
		metadata[payment.MetadataCustomerName] = params.Customer.Name
	}

	auth, err := s.authorize(ctx, total, metadata)
	if err != nil {
		log.Error("payment authorization failed", zap.Error(err))
		if apperror.KindOf(err) == apperror.KindUpstream {
			return nil, err
		}
		return nil, apperror.Wrap(apperror.KindUpstream, ErrPaymentUnavailable.Message, err)
	}

	log = log.With(
		zap.String("payment_intent_id", auth.ReferenceID),
		zap.String("payment_intent_status", auth.Status),
	)

	o := s.orders.CreateOrder(ctx, order.CreateOrderParams{
		SessionID:       params.SessionID,
		TotalAmount:     total.StringFixed(2),
		Status:          order.StatusPending,
		PaymentIntentID: auth.ReferenceID,
		CustomerEmail:   email,
		CustomerName:    params.Customer.Name,
		ShippingAddress: params.Customer.Address,
	})
	metrics.OrdersByStatus.WithLabelValues(string(order.StatusPending)).Inc()

	for _, item := range items {
		item.OrderID = o.ID
		s.orders.AddOrderItem(ctx, item)
	}

	log.Info("payment intent created",
		zap.String("order_id", o.ID),
		zap.String("total", o.TotalAmount),
		zap.Int("items", len(items)),
	)

	return &PaymentIntentResult{ClientSecret: auth.ClientSecret, OrderID: o.ID}, nil
}

func snapshotItems(lines []cart.CartLine) ([]order.AddOrderItemParams, error) {
	items := make([]order.AddOrderItemParams, 0, len(lines))
	for _, line := range lines {
		price, err := line.Product.UnitPrice()
		if err != nil {
			return nil, err
		}
		items = append(items, order.AddOrderItemParams{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price.StringFixed(2),
		})
	}
	return items, nil
}

func (s *service) authorize(ctx context.Context, total decimal.Decimal, metadata map[string]string) (*payment.Authorization, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	timer := metrics.StartTimer()
	auth, err := s.gateway.CreatePaymentAuthorization(ctx, total.Mul(hundred).Round(0).IntPart(), s.opts.Currency, metadata)
	timer.ObserveMs(metrics.PaymentLatency)

	if err == nil && (auth == nil || auth.ReferenceID == "") {
		err = errors.New("payment provider returned no reference")
	}
	if err == nil && auth.Status == payment.AuthorizationCanceled {
		err = fmt.Errorf("payment intent %s was canceled by the provider", auth.ReferenceID)
	}
	if err != nil {
		metrics.PaymentIntents.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}

	metrics.PaymentIntents.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return auth, nil
}

// HandlePaymentSucceeded completes the order paid by referenceID and empties
// the cart it was created from. A replay for a completed order changes nothing.
func (s *service) HandlePaymentSucceeded(ctx context.Context, referenceID string, metadata map[string]string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "HandlePaymentSucceeded"),
		zap.String("payment_intent_id", referenceID),
	)

	if referenceID == "" {
		return ErrReferenceRequired
	}

	sessionID := metadata[payment.MetadataSessionID]

	o, ok := s.orders.GetOrderByPaymentIntentID(ctx, referenceID)
	if !ok {
		log.Warn("no order for succeeded payment", zap.String("session_id", sessionID))
	} else {
		if o.Status == order.StatusCompleted {
			log.Info("order already completed", zap.String("order_id", o.ID))
			return nil
		}
		if sessionID == "" {
			sessionID = o.SessionID
		}
		s.orders.UpdateOrderStatus(ctx, o.ID, order.StatusCompleted, nil)
		metrics.OrdersByStatus.WithLabelValues(string(order.StatusCompleted)).Inc()
		log.Info("order completed", zap.String("order_id", o.ID))
	}

	if sessionID == "" {
		return nil
	}
	return s.carts.ClearCart(ctx, sessionID)
}

// HandlePaymentFailed marks the pending order paid by referenceID as failed.
// The cart is kept so the customer can retry.
func (s *service) HandlePaymentFailed(ctx context.Context, referenceID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "HandlePaymentFailed"),
		zap.String("payment_intent_id", referenceID),
	)

	if referenceID == "" {
		return ErrReferenceRequired
	}

	o, ok := s.orders.GetOrderByPaymentIntentID(ctx, referenceID)
	if !ok {
		log.Warn("no order for failed payment")
		return nil
	}
	if o.Status != order.StatusPending {
		log.Info("ignoring failure for settled order", zap.String("status", string(o.Status)))
		return nil
	}

	s.orders.UpdateOrderStatus(ctx, o.ID, order.StatusFailed, nil)
	metrics.OrdersByStatus.WithLabelValues(string(order.StatusFailed)).Inc()
	log.Info("order marked failed", zap.String("order_id", o.ID))
	return nil
}
