package order

import "storefront-be/internal/apperror"

var (
	ErrOrderNotFound = apperror.New(apperror.KindNotFound, "Order not found")
)
