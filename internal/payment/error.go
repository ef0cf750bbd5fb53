package payment

import "storefront-be/internal/apperror"

var (
	ErrInvalidSignature      = apperror.New(apperror.KindInvalidInput, "Webhook signature verification failed")
	ErrWebhookSecretNotSet   = apperror.New(apperror.KindInvalidInput, "Webhook secret is not configured")
	ErrAuthorizationRejected = apperror.New(apperror.KindUpstream, "Payment provider rejected the request")
	ErrProviderUnavailable   = apperror.New(apperror.KindUpstream, "Payment provider unavailable")
)
