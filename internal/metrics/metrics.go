package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_ms",
			Help:    "Duration of HTTP requests in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"method", "route"},
	)

	PaymentIntents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_payment_intents_total",
			Help: "Payment authorizations requested from the payment provider, by outcome",
		},
		[]string{"outcome"},
	)

	PaymentLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_payment_provider_latency_ms",
			Help:    "Latency of payment provider calls in ms",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 15000},
		},
	)

	OrdersByStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_status_transitions_total",
			Help: "Orders moved into a status",
		},
		[]string{"status"},
	)

	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_webhook_events_total",
			Help: "Payment webhook events received, by type and result",
		},
		[]string{"type", "result"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveMs records the elapsed time in milliseconds on o.
func (t *Timer) ObserveMs(o prometheus.Observer) {
	o.Observe(float64(t.Duration().Milliseconds()))
}
