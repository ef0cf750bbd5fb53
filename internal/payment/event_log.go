package payment

import (
	"context"
	"sync"
)

// EventLog records the provider events already handled so redelivered
// webhooks are not applied twice.
type EventLog interface {
	// Record stores the event. It reports duplicate when the event was
	// already received and not marked failed.
	Record(ctx context.Context, provider string, event Event) (duplicate bool)
	MarkProcessed(ctx context.Context, eventID string)
	MarkFailed(ctx context.Context, eventID, reason string)
	Get(ctx context.Context, eventID string) (EventRecord, bool)
}

type MemoryEventLog struct {
	mu     sync.Mutex
	events map[string]EventRecord
}

func NewMemoryEventLog() *MemoryEventLog {
	return &MemoryEventLog{events: make(map[string]EventRecord)}
}

func (l *MemoryEventLog) Record(ctx context.Context, provider string, event Event) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.events[event.ID]; ok && existing.Status != EventStatusFailed {
		return true
	}

	l.events[event.ID] = EventRecord{
		EventID:     event.ID,
		Provider:    provider,
		Type:        event.Type,
		ReferenceID: event.ReferenceID,
		Status:      EventStatusReceived,
	}
	return false
}

func (l *MemoryEventLog) MarkProcessed(ctx context.Context, eventID string) {
	l.setStatus(eventID, EventStatusProcessed, "")
}

func (l *MemoryEventLog) MarkFailed(ctx context.Context, eventID, reason string) {
	l.setStatus(eventID, EventStatusFailed, reason)
}

func (l *MemoryEventLog) setStatus(eventID string, status EventStatus, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.events[eventID]
	if !ok {
		return
	}
	rec.Status = status
	rec.Reason = reason
	l.events[eventID] = rec
}

func (l *MemoryEventLog) Get(ctx context.Context, eventID string) (EventRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.events[eventID]
	return rec, ok
}

var _ EventLog = (*MemoryEventLog)(nil)
