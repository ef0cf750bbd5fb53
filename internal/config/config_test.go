package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
		t.Setenv("PAYMENT_CURRENCY", "eur")
		t.Setenv("PAYMENT_TIMEOUT", "5s")
		t.Setenv("JWT_SECRET", "jwt-secret")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("BCRYPT_COST", "4")
		t.Setenv("LOG_FILE", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
		assert.Equal(t, "whsec_123", cfg.StripeWebhookSecret)
		assert.Equal(t, "eur", cfg.PaymentCurrency)
		assert.Equal(t, 5*time.Second, cfg.PaymentTimeout)
		assert.Equal(t, "jwt-secret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, 4, cfg.BcryptCost)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
		t.Setenv("PAYMENT_CURRENCY", "")
		t.Setenv("PAYMENT_TIMEOUT", "not-a-duration")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("SESSION_TTL", "")
		t.Setenv("BCRYPT_COST", "abc")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "usd", cfg.PaymentCurrency)
		assert.Equal(t, 15*time.Second, cfg.PaymentTimeout)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.NotEmpty(t, cfg.JWTSecret)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Missing Stripe key", func(t *testing.T) {
		t.Setenv("STRIPE_SECRET_KEY", "")

		cfg, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Production requires JWT secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("STRIPE_SECRET_KEY", "sk_live_123")
		t.Setenv("JWT_SECRET", "")

		cfg, err := LoadConfig()
		assert.EqualError(t, err, "JWT_SECRET is not set")
		assert.Nil(t, cfg)
	})
}
