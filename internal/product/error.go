package product

import "storefront-be/internal/apperror"

var (
	ErrProductNotFound = apperror.New(apperror.KindNotFound, "Product not found")
)
