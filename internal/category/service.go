package category

import (
	"context"
	"sort"
	"strings"

	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"go.uber.org/zap"
)

// Service derives categories from the product catalog; a category exists
// while at least one product carries it.
type Service interface {
	GetCategories(ctx context.Context) []Category
	GetProductsByCategory(ctx context.Context, name string) ([]product.Product, error)
}

type service struct {
	productRepo product.Repository
}

func NewService(productRepo product.Repository) Service {
	return &service{productRepo: productRepo}
}

func (s *service) GetCategories(ctx context.Context) []Category {
	counts := make(map[string]int)
	for _, p := range s.productRepo.List(ctx) {
		if p.Category == "" {
			continue
		}
		counts[p.Category]++
	}

	categories := make([]Category, 0, len(counts))
	for name, n := range counts {
		categories = append(categories, Category{Name: name, ProductCount: n})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	return categories
}

// GetProductsByCategory matches the category name case-insensitively.
func (s *service) GetProductsByCategory(ctx context.Context, name string) ([]product.Product, error) {
	products := make([]product.Product, 0)
	for _, p := range s.productRepo.List(ctx) {
		if strings.EqualFold(p.Category, name) {
			products = append(products, p)
		}
	}

	if len(products) == 0 {
		logger.FromCtx(ctx).Info("category not found",
			zap.String("layer", "service"),
			zap.String("method", "GetProductsByCategory"),
			zap.String("category", name),
		)
		return nil, ErrCategoryNotFound
	}
	return products, nil
}
