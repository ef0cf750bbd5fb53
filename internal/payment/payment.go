package payment

import "context"

// Gateway is the payment provider used by checkout and the webhook endpoint.
type Gateway interface {
	CreatePaymentAuthorization(
		ctx context.Context,
		amountMinor int64,
		currency string,
		metadata map[string]string,
	) (*Authorization, error)

	// ParseWebhook verifies the provider signature on payload and decodes it.
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
