package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-be/internal/config"
	"storefront-be/internal/handler"
	"storefront-be/internal/product"
	"storefront-be/internal/storage"
	"storefront-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:             "8080",
		AppEnv:              "test",
		StripeSecretKey:     "sk_test_123",
		StripeWebhookSecret: "whsec_123",
		PaymentCurrency:     "usd",
		PaymentTimeout:      time.Second,
		JWTSecret:           "test-secret",
		SessionTTL:          time.Hour,
		BcryptCost:          4,
		CORSOrigin:          "http://localhost:5173",
	}
}

func TestSetupRouter(t *testing.T) {
	store := storage.NewMemStorage()
	sessions := user.NewService(store.Users(), user.Options{JWTSecret: "test-secret"})

	mockWebhookHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("webhook received"))
	}

	router := setupRouter(&handler.Handler{
		ProductSvc: product.NewService(store.Products()),
		Webhook:    mockWebhookHandler,
	}, sessions)

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("Metrics", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/metrics", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "go_goroutines")
	})

	t.Run("Payment Webhook", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/webhook", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "webhook received", rr.Body.String())
	})

	t.Run("Products", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/products/featured", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestNewServer(t *testing.T) {
	srv := newServer(testConfig(), storage.NewMemStorage())
	require.NotNil(t, srv)

	t.Run("Health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("OPTIONS", "/api/cart", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Webhook rejects unsigned payloads", func(t *testing.T) {
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("POST", "/api/webhook", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRun(t *testing.T) {
	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()

	var started *http.Server
	startServerFunc = func(srv *http.Server) error {
		started = srv
		return http.ErrServerClosed
	}

	t.Setenv("APP_PORT", "9999")
	t.Setenv("APP_ENV", "test")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("LOG_FILE", "")

	assert.NoError(t, run())
	require.NotNil(t, started)
	assert.Equal(t, ":9999", started.Addr)
}

func TestRun_MissingStripeKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	assert.Error(t, run())
}
