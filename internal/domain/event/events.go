package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypePredictionCompleted is emitted when a satisfaction prediction finishes.
	EventTypePredictionCompleted = "satisfaction.prediction.completed"

	// EventTypeDissatisfactionDetected is emitted when an order is predicted dissatisfied.
	EventTypeDissatisfactionDetected = "satisfaction.dissatisfaction.detected"
)

// DomainEvent is the minimal contract the messaging layer relies on.
type DomainEvent interface {
	EventType() string
	AggregateID() uuid.UUID
}

// PredictionCompleted is published when a satisfaction prediction has been
// made for an order.
type PredictionCompleted struct {
	PredictionID  uuid.UUID `json:"prediction_id"`
	Class         int       `json:"class"`
	Label         string    `json:"label"`
	Price         string    `json:"price"`
	CustomerState string    `json:"customer_state,omitempty"`
	PredictedAt   time.Time `json:"predicted_at"`
}

// EventType returns the event type identifier.
func (e PredictionCompleted) EventType() string {
	return EventTypePredictionCompleted
}

// AggregateID returns the prediction ID as the aggregate identifier.
func (e PredictionCompleted) AggregateID() uuid.UUID {
	return e.PredictionID
}

// DissatisfactionDetected is published when an order is predicted to leave
// the customer dissatisfied, so downstream consumers can trigger retention
// workflows.
type DissatisfactionDetected struct {
	PredictionID  uuid.UUID `json:"prediction_id"`
	Price         string    `json:"price"`
	CustomerState string    `json:"customer_state,omitempty"`
	DetectedAt    time.Time `json:"detected_at"`
}

// EventType returns the event type identifier.
func (e DissatisfactionDetected) EventType() string {
	return EventTypeDissatisfactionDetected
}

// AggregateID returns the prediction ID as the aggregate identifier.
func (e DissatisfactionDetected) AggregateID() uuid.UUID {
	return e.PredictionID
}
