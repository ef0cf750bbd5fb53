package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventLog(t *testing.T) {
	ctx := context.Background()
	log := NewMemoryEventLog()
	event := Event{ID: "evt_1", Type: EventPaymentSucceeded, ReferenceID: "pi_1"}

	assert.False(t, log.Record(ctx, providerStripe, event))
	assert.True(t, log.Record(ctx, providerStripe, event))

	rec, ok := log.Get(ctx, "evt_1")
	require.True(t, ok)
	assert.Equal(t, EventStatusReceived, rec.Status)
	assert.Equal(t, "pi_1", rec.ReferenceID)

	log.MarkProcessed(ctx, "evt_1")
	rec, _ = log.Get(ctx, "evt_1")
	assert.Equal(t, EventStatusProcessed, rec.Status)
	assert.True(t, log.Record(ctx, providerStripe, event))

	t.Run("Failed events can be retried", func(t *testing.T) {
		retry := Event{ID: "evt_2", Type: EventPaymentSucceeded}
		assert.False(t, log.Record(ctx, providerStripe, retry))

		log.MarkFailed(ctx, "evt_2", "order store unavailable")
		rec, _ := log.Get(ctx, "evt_2")
		assert.Equal(t, EventStatusFailed, rec.Status)
		assert.Equal(t, "order store unavailable", rec.Reason)

		assert.False(t, log.Record(ctx, providerStripe, retry))
	})

	t.Run("Unknown ids are ignored", func(t *testing.T) {
		log.MarkProcessed(ctx, "missing")
		_, ok := log.Get(ctx, "missing")
		assert.False(t, ok)
	})
}
