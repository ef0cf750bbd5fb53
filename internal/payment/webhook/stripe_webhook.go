package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"storefront-be/internal/apperror"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/payment"
	"storefront-be/internal/utils"

	"go.uber.org/zap"
)

const (
	provider       = "STRIPE"
	signatureHdr   = "Stripe-Signature"
	maxPayloadSize = int64(65536)
)

// PaymentProcessor applies payment outcomes to orders and carts.
type PaymentProcessor interface {
	HandlePaymentSucceeded(ctx context.Context, referenceID string, metadata map[string]string) error
	HandlePaymentFailed(ctx context.Context, referenceID string) error
}

type Handler struct {
	Gateway   payment.Gateway
	Events    payment.EventLog
	Processor PaymentProcessor
}

func NewWebhookHandler(gateway payment.Gateway, events payment.EventLog, processor PaymentProcessor) *Handler {
	return &Handler{
		Gateway:   gateway,
		Events:    events,
		Processor: processor,
	}
}

type receivedResponse struct {
	Received bool `json:"received"`
}

// PaymentWebhookHandler receives provider events. It answers 200 for every
// verified event, including ones it ignores, and 500 when applying the event
// failed so the provider redelivers it.
func (h *Handler) PaymentWebhookHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "handler"),
		zap.String("method", "PaymentWebhookHandler"),
	)

	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("webhook body too large", zap.Int64("limit", tooLarge.Limit))
			utils.WriteJSONError(w, "Payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Warn("failed to read webhook body", zap.Error(err))
		utils.WriteJSONError(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	event, err := h.Gateway.ParseWebhook(body, r.Header.Get(signatureHdr))
	if err != nil {
		log.Warn("webhook rejected", zap.Error(err))
		metrics.WebhookEvents.WithLabelValues("unknown", "rejected").Inc()
		utils.WriteJSONError(w, "Webhook Error: "+apperror.MessageOf(err, err.Error()), http.StatusBadRequest)
		return
	}

	log = log.With(
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("reference_id", event.ReferenceID),
	)

	if h.Events.Record(ctx, provider, *event) {
		result := "duplicate"
		if prior, ok := h.Events.Get(ctx, event.ID); ok && prior.Status == payment.EventStatusReceived {
			result = "in_progress"
		}
		log.Info("duplicate webhook ignored", zap.String("result", result))
		metrics.WebhookEvents.WithLabelValues(string(event.Type), result).Inc()
		utils.WriteJSON(w, receivedResponse{Received: true}, http.StatusOK)
		return
	}

	switch event.Type {
	case payment.EventPaymentSucceeded:
		err = h.Processor.HandlePaymentSucceeded(ctx, event.ReferenceID, event.Metadata)
	case payment.EventPaymentFailed:
		err = h.Processor.HandlePaymentFailed(ctx, event.ReferenceID)
	default:
		log.Info("unhandled webhook event type")
		h.Events.MarkProcessed(ctx, event.ID)
		metrics.WebhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
		utils.WriteJSON(w, receivedResponse{Received: true}, http.StatusOK)
		return
	}

	if err != nil {
		log.Error("failed to apply webhook event", zap.Error(err))
		h.Events.MarkFailed(ctx, event.ID, err.Error())
		metrics.WebhookEvents.WithLabelValues(string(event.Type), "failed").Inc()
		utils.WriteJSONError(w, "Failed to process event", http.StatusInternalServerError)
		return
	}

	h.Events.MarkProcessed(ctx, event.ID)
	metrics.WebhookEvents.WithLabelValues(string(event.Type), "processed").Inc()
	log.Info("webhook processed")
	utils.WriteJSON(w, receivedResponse{Received: true}, http.StatusOK)
}
