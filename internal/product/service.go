package product

import (
	"context"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetProducts(ctx context.Context) []Product
	GetFeaturedProducts(ctx context.Context) []Product
	GetProductByID(ctx context.Context, id string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProducts(ctx context.Context) []Product {
	return s.repo.List(ctx)
}

func (s *service) GetFeaturedProducts(ctx context.Context) []Product {
	return s.repo.ListFeatured(ctx)
}

func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	p, ok := s.repo.GetByID(ctx, id)
	if !ok {
		logger.FromCtx(ctx).Debug("product not found",
			zap.String("layer", "service"),
			zap.String("product_id", id),
		)
		return nil, ErrProductNotFound
	}
	return p, nil
}
