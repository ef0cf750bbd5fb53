package storage

import (
	"storefront-be/internal/cart"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/user"
)

// Storage groups the stores the services are built on.
type Storage interface {
	Products() product.Repository
	Carts() cart.Repository
	Orders() order.Repository
	Users() user.Repository
}

type memStorage struct {
	products *product.MemoryRepository
	carts    *cart.MemoryRepository
	orders   *order.MemoryRepository
	users    *user.MemoryRepository
}

// NewMemStorage returns process-local stores seeded with the default catalog.
// Nothing survives a restart.
func NewMemStorage() Storage {
	return NewMemStorageWithCatalog(product.DefaultCatalog())
}

func NewMemStorageWithCatalog(catalog []product.Product) Storage {
	return &memStorage{
		products: product.NewMemoryRepository(catalog),
		carts:    cart.NewMemoryRepository(),
		orders:   order.NewMemoryRepository(),
		users:    user.NewMemoryRepository(),
	}
}

func (s *memStorage) Products() product.Repository { return s.products }
func (s *memStorage) Carts() cart.Repository       { return s.carts }
func (s *memStorage) Orders() order.Repository     { return s.orders }
func (s *memStorage) Users() user.Repository       { return s.users }
