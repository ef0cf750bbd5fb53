package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-be/internal/cart"
	"storefront-be/internal/category"
	"storefront-be/internal/checkout"
	"storefront-be/internal/config"
	"storefront-be/internal/handler"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/payment/webhook"
	"storefront-be/internal/product"
	"storefront-be/internal/storage"
	"storefront-be/internal/user"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var startServerFunc = func(srv *http.Server) error {
	return srv.ListenAndServe()
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv, cfg.LogFile)
	defer logger.Sync()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(cfg, storage.NewMemStorage()),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newServer(cfg *config.Config, store storage.Storage) http.Handler {
	productSvc := product.NewService(store.Products())
	cartSvc := cart.NewService(store.Carts(), store.Products())
	orderSvc := order.NewService(store.Orders(), store.Users())

	userSvc := user.NewService(store.Users(), user.Options{
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: cfg.SessionTTL,
		BcryptCost: cfg.BcryptCost,
	})

	gateway := payment.NewStripeGateway(payment.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		APIURL:        cfg.StripeAPIURL,
		Timeout:       cfg.PaymentTimeout,
	})
	checkoutSvc := checkout.NewService(cartSvc, store.Orders(), gateway, checkout.Options{
		Currency: cfg.PaymentCurrency,
		Timeout:  cfg.PaymentTimeout,
	})
	webhookHandler := webhook.NewWebhookHandler(gateway, payment.NewMemoryEventLog(), checkoutSvc)

	h := &handler.Handler{
		ProductSvc:  productSvc,
		CategorySvc: category.NewService(store.Products()),
		CartSvc:     cartSvc,
		CheckoutSvc: checkoutSvc,
		UserSvc:     userSvc,
		OrderSvc:    orderSvc,
		Webhook:     webhookHandler.PaymentWebhookHandler,
		Session: handler.SessionOptions{
			TTL:    cfg.SessionTTL,
			Secure: cfg.IsProduction(),
		},
	}

	router := setupRouter(h, userSvc)

	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.CORS(cfg.CORSOrigin)(router),
		),
	)
}

func setupRouter(h *handler.Handler, sessions middleware.SessionParser) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.AuthMiddleware(sessions))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	h.Register(r)
	return r
}
