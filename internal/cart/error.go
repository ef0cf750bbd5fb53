package cart

import "storefront-be/internal/apperror"

var (
	// -- Validation & Input --
	ErrInvalidQuantity   = apperror.New(apperror.KindInvalidInput, "quantity must be a positive integer")
	ErrSessionIDRequired = apperror.New(apperror.KindInvalidInput, "session ID is required")
	ErrProductIDRequired = apperror.New(apperror.KindInvalidInput, "product ID is required")

	// -- Resource State --
	ErrProductNotFound = apperror.New(apperror.KindNotFound, "product not found")
)
