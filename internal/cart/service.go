package cart

import (
	"context"

	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, sessionID string) ([]CartLine, error)
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateCartQuantity(ctx context.Context, params UpdateCartParams) error
	RemoveFromCart(ctx context.Context, params RemoveFromCartParams) error
	ClearCart(ctx context.Context, sessionID string) error
}

// service implements the Service interface
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// GetCart lists the session's items joined with their catalog products.
func (s *service) GetCart(ctx context.Context, sessionID string) ([]CartLine, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}

	items := s.repo.ListItems(ctx, sessionID)
	lines := make([]CartLine, 0, len(items))

	for _, item := range items {
		p, ok := s.productRepo.GetByID(ctx, item.ProductID)
		if !ok {
			logger.FromCtx(ctx).Warn("cart item references unknown product",
				zap.String("layer", "service"),
				zap.String("method", "GetCart"),
				zap.String("session_id", sessionID),
				zap.String("product_id", item.ProductID),
			)
			continue
		}
		lines = append(lines, CartLine{CartItem: item, Product: *p})
	}

	return lines, nil
}

// AddToCart adds a product to a session's cart
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.String("session_id", params.SessionID),
		zap.String("product_id", params.ProductID),
	)

	if params.SessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if params.ProductID == "" {
		return nil, ErrProductIDRequired
	}
	// zero means "not specified" and becomes 1 in the repository
	if params.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if _, ok := s.productRepo.GetByID(ctx, params.ProductID); !ok {
		log.Info("rejecting unknown product")
		return nil, ErrProductNotFound
	}

	item := s.repo.AddItem(ctx, params.SessionID, params.ProductID, params.Quantity)

	log.Debug("cart item saved", zap.String("cart_item_id", item.ID), zap.Int("quantity", item.Quantity))
	return &item, nil
}

// UpdateCartQuantity sets the quantity of a product in the session's cart.
// A quantity of zero or less removes the item; an unknown item is left alone.
func (s *service) UpdateCartQuantity(ctx context.Context, params UpdateCartParams) error {
	if params.SessionID == "" {
		return ErrSessionIDRequired
	}
	if params.ProductID == "" {
		return ErrProductIDRequired
	}

	if !s.repo.UpdateQuantity(ctx, params.SessionID, params.ProductID, params.Quantity) {
		logger.FromCtx(ctx).Debug("update ignored, no matching cart item",
			zap.String("session_id", params.SessionID),
			zap.String("product_id", params.ProductID),
		)
	}
	return nil
}

// RemoveFromCart deletes a product from the session's cart
func (s *service) RemoveFromCart(ctx context.Context, params RemoveFromCartParams) error {
	if params.SessionID == "" {
		return ErrSessionIDRequired
	}
	if params.ProductID == "" {
		return ErrProductIDRequired
	}

	s.repo.RemoveItem(ctx, params.SessionID, params.ProductID)
	return nil
}

// ClearCart removes all items for a given session
func (s *service) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDRequired
	}

	n := s.repo.Clear(ctx, sessionID)
	logger.FromCtx(ctx).Debug("cart cleared",
		zap.String("session_id", sessionID),
		zap.Int("removed", n),
	)
	return nil
}
