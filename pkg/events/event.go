package events

import "time"

// Entitlement event types consumed by downstream enforcement services.
const (
	TypePlanFeaturesAssigned = "PLAN_FEATURES_ASSIGNED"
	TypePlanFeaturesCleared  = "PLAN_FEATURES_CLEARED"
	TypeFeatureCreated       = "FEATURE_CREATED"
	TypeFeatureDeleted       = "FEATURE_DELETED"
	TypeModelPricingUpdated  = "MODEL_PRICING_UPDATED"
	TypeCatalogSynced        = "CATALOG_SYNCED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "FEATURE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by all publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
