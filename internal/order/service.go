package order

import (
	"context"

	"storefront-be/internal/logger"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	GetOrder(ctx context.Context, id string) (*Order, error)
	GetOrderDetail(ctx context.Context, id string) (*OrderDetail, error)
	GetUserOrders(ctx context.Context, userID string) ([]Order, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	o, ok := s.repo.GetOrder(ctx, id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) GetOrderDetail(ctx context.Context, id string) (*OrderDetail, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		Order: *o,
		Items: s.repo.GetOrderItems(ctx, id),
	}, nil
}

// GetUserOrders lists the orders whose customer email matches the user's
// email. Orders carry no user id, so the email is the only link.
func (s *service) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	u, ok := s.userRepo.FindByID(ctx, userID)
	if !ok {
		logger.FromCtx(ctx).Info("orders requested for unknown user",
			zap.String("layer", "service"),
			zap.String("method", "GetUserOrders"),
			zap.String("user_id", userID),
		)
		return []Order{}, nil
	}

	return s.repo.ListByCustomerEmail(ctx, u.Email), nil
}
