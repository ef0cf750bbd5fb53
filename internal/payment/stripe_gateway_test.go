package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-be/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T, handler http.HandlerFunc) Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewStripeGateway(StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		APIURL:        srv.URL,
		Timeout:       5 * time.Second,
	})
}

func TestStripeGateway_CreatePaymentAuthorization(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "89700", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, "session-1", r.PostForm.Get("metadata[sessionId]"))
			assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "pi_123",
				"object": "payment_intent",
				"amount": 89700,
				"currency": "usd",
				"status": "requires_payment_method",
				"client_secret": "pi_123_secret_abc"
			}`))
		})

		auth, err := gw.CreatePaymentAuthorization(context.Background(), 89700, "usd", map[string]string{
			MetadataSessionID: "session-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_123", auth.ReferenceID)
		assert.Equal(t, "pi_123_secret_abc", auth.ClientSecret)
		assert.Equal(t, "requires_payment_method", auth.Status)
	})

	t.Run("Provider error", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Amount must be at least 50 cents"}}`))
		})

		auth, err := gw.CreatePaymentAuthorization(context.Background(), 10, "usd", nil)
		assert.Nil(t, auth)
		require.Error(t, err)
		assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
		assert.Equal(t, ErrAuthorizationRejected.Message, apperror.MessageOf(err, ""))
		assert.ErrorIs(t, err, ErrAuthorizationRejected)
		assert.NotErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("Canceled context", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the provider")
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		auth, err := gw.CreatePaymentAuthorization(ctx, 100, "usd", nil)
		assert.Nil(t, auth)
		assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func signedPayload(t *testing.T, secret string, payload []byte) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func eventPayload(t *testing.T, id, eventType, intentID string, metadata map[string]string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"id":     id,
		"object": "event",
		"type":   eventType,
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":       intentID,
				"object":   "payment_intent",
				"metadata": metadata,
			},
		},
	})
	require.NoError(t, err)
	return body
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	gw := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123", WebhookSecret: testWebhookSecret})

	t.Run("Payment succeeded", func(t *testing.T) {
		payload := eventPayload(t, "evt_1", "payment_intent.succeeded", "pi_1", map[string]string{"sessionId": "s1"})

		event, err := gw.ParseWebhook(payload, signedPayload(t, testWebhookSecret, payload))
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, EventPaymentSucceeded, event.Type)
		assert.Equal(t, "pi_1", event.ReferenceID)
		assert.Equal(t, "s1", event.Metadata[MetadataSessionID])
	})

	t.Run("Other event type", func(t *testing.T) {
		payload := []byte(`{"id": "evt_2", "object": "event", "type": "charge.refunded", "data": {"object": {"id": "ch_1"}}}`)

		event, err := gw.ParseWebhook(payload, signedPayload(t, testWebhookSecret, payload))
		require.NoError(t, err)
		assert.Equal(t, EventType("charge.refunded"), event.Type)
		assert.Empty(t, event.ReferenceID)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		payload := eventPayload(t, "evt_3", "payment_intent.succeeded", "pi_1", nil)

		event, err := gw.ParseWebhook(payload, signedPayload(t, "whsec_other", payload))
		assert.Nil(t, event)
		assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("Missing signature", func(t *testing.T) {
		payload := eventPayload(t, "evt_4", "payment_intent.succeeded", "pi_1", nil)

		_, err := gw.ParseWebhook(payload, "")
		assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	})

	t.Run("Secret not configured", func(t *testing.T) {
		unconfigured := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123"})
		payload := eventPayload(t, "evt_5", "payment_intent.succeeded", "pi_1", nil)

		_, err := unconfigured.ParseWebhook(payload, signedPayload(t, testWebhookSecret, payload))
		assert.ErrorIs(t, err, ErrWebhookSecretNotSet)
	})
}
