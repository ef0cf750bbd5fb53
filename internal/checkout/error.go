package checkout

import "storefront-be/internal/apperror"

var (
	ErrInvalidAmount      = apperror.New(apperror.KindInvalidInput, "Amount must be a positive number")
	ErrSessionIDRequired  = apperror.New(apperror.KindInvalidInput, "Session ID is required")
	ErrCartEmpty          = apperror.New(apperror.KindInvalidInput, "Cart is empty")
	ErrAmountMismatch     = apperror.New(apperror.KindInvalidInput, "Amount does not match cart total")
	ErrReferenceRequired  = apperror.New(apperror.KindInvalidInput, "Payment reference is required")
	ErrPaymentUnavailable = apperror.New(apperror.KindUpstream, "Error creating payment intent")
)
