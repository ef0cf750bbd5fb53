package payment

type EventType string

const (
	EventPaymentSucceeded EventType = "payment_intent.succeeded"
	EventPaymentFailed    EventType = "payment_intent.payment_failed"
)

// Metadata keys attached to every payment authorization.
const (
	MetadataSessionID     = "sessionId"
	MetadataCustomerEmail = "customerEmail"
	MetadataCustomerName  = "customerName"
)

// AuthorizationCanceled is the provider status of an authorization that can
// no longer be confirmed.
const AuthorizationCanceled = "canceled"

type Authorization struct {
	ReferenceID  string
	ClientSecret string
	Status       string
}

type Event struct {
	ID          string
	Type        EventType
	ReferenceID string
	Metadata    map[string]string
}

type EventStatus string

const (
	EventStatusReceived  EventStatus = "received"
	EventStatusProcessed EventStatus = "processed"
	EventStatusFailed    EventStatus = "failed"
)

type EventRecord struct {
	EventID     string
	Provider    string
	Type        EventType
	ReferenceID string
	Status      EventStatus
	Reason      string
}
