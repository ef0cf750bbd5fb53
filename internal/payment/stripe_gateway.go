package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-be/internal/apperror"
	"storefront-be/internal/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const providerStripe = "STRIPE"

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// APIURL overrides the Stripe API base URL. Empty means the default.
	APIURL  string
	Timeout time.Duration
}

type stripeGateway struct {
	intents       *paymentintent.Client
	webhookSecret string
}

func NewStripeGateway(cfg StripeConfig) Gateway {
	if cfg.SecretKey == "" {
		logger.L().Warn("Stripe secret key is empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger.L().Sugar(),
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	return &stripeGateway{
		intents: &paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *stripeGateway) CreatePaymentAuthorization(
	ctx context.Context,
	amountMinor int64,
	currency string,
	metadata map[string]string,
) (*Authorization, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("provider", providerStripe),
		zap.Int64("amount", amountMinor),
		zap.String("currency", currency),
	)

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	log.Info("Sending payment intent request to Stripe")

	pi, err := g.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			log.Error("Stripe returned an error",
				zap.Int("status", stripeErr.HTTPStatusCode),
				zap.String("type", string(stripeErr.Type)),
				zap.String("code", string(stripeErr.Code)),
				zap.String("message", stripeErr.Msg),
			)
			return nil, apperror.Wrap(apperror.KindUpstream, ErrAuthorizationRejected.Message, err)
		}
		log.Error("Stripe request failed", zap.Error(err))
		return nil, apperror.Wrap(apperror.KindUpstream, ErrProviderUnavailable.Message, err)
	}

	log.Info("Stripe payment intent created",
		zap.String("payment_intent_id", pi.ID),
		zap.String("status", string(pi.Status)),
	)

	return &Authorization{
		ReferenceID:  pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

func (g *stripeGateway) ParseWebhook(payload []byte, signature string) (*Event, error) {
	if g.webhookSecret == "" {
		return nil, ErrWebhookSecretNotSet
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidInput, ErrInvalidSignature.Message, err)
	}

	out := &Event{
		ID:       event.ID,
		Type:     EventType(event.Type),
		Metadata: map[string]string{},
	}

	switch out.Type {
	case EventPaymentSucceeded, EventPaymentFailed:
		if event.Data == nil {
			return nil, apperror.New(apperror.KindInvalidInput, "Webhook event has no data")
		}
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, apperror.Wrap(apperror.KindInvalidInput, "Invalid payment intent payload", fmt.Errorf("decode payment intent: %w", err))
		}
		out.ReferenceID = pi.ID
		for k, v := range pi.Metadata {
			out.Metadata[k] = v
		}
	}

	return out, nil
}
