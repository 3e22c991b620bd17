package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/event"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
)

// OrderPrediction is the aggregate root for satisfaction predictions. It
// records the classifier output for one order together with the order
// attributes worth reporting on.
type OrderPrediction struct {
	id            uuid.UUID
	class         int
	label         valueobject.Label
	price         decimal.Decimal
	customerState string
	paymentType   string
	predictedAt   time.Time
	createdAt     time.Time
	domainEvents  []event.DomainEvent
}

// NewOrderPrediction creates a prediction aggregate from a classifier output
// and the order it was computed for. Emits PredictionCompleted and, for
// dissatisfied outcomes, DissatisfactionDetected.
func NewOrderPrediction(class int, order Order) (*OrderPrediction, error) {
	if order.Price == nil {
		return nil, fmt.Errorf("order price is required")
	}

	label := valueobject.LabelFromClass(class)
	now := time.Now().UTC()

	p := &OrderPrediction{
		id:          uuid.New(),
		class:       class,
		label:       label,
		price:       decimal.NewFromFloat(*order.Price),
		predictedAt: now,
		createdAt:   now,
	}
	if order.CustomerState != nil {
		p.customerState = *order.CustomerState
	}
	if order.PaymentType != nil {
		p.paymentType = *order.PaymentType
	}

	p.domainEvents = append(p.domainEvents, event.PredictionCompleted{
		PredictionID:  p.id,
		Class:         p.class,
		Label:         p.label.String(),
		Price:         p.price.String(),
		CustomerState: p.customerState,
		PredictedAt:   p.predictedAt,
	})

	if p.label.Equal(valueobject.LabelDissatisfied) {
		p.domainEvents = append(p.domainEvents, event.DissatisfactionDetected{
			PredictionID:  p.id,
			Price:         p.price.String(),
			CustomerState: p.customerState,
			DetectedAt:    p.predictedAt,
		})
	}

	return p, nil
}

// ReconstructPrediction rebuilds an OrderPrediction from persisted data (no
// validation, no events).
func ReconstructPrediction(
	id uuid.UUID,
	class int,
	label valueobject.Label,
	price decimal.Decimal,
	customerState string,
	paymentType string,
	predictedAt time.Time,
	createdAt time.Time,
) *OrderPrediction {
	return &OrderPrediction{
		id:            id,
		class:         class,
		label:         label,
		price:         price,
		customerState: customerState,
		paymentType:   paymentType,
		predictedAt:   predictedAt,
		createdAt:     createdAt,
	}
}

// --- Accessors ---

func (p *OrderPrediction) ID() uuid.UUID            { return p.id }
func (p *OrderPrediction) Class() int               { return p.class }
func (p *OrderPrediction) Label() valueobject.Label { return p.label }
func (p *OrderPrediction) Price() decimal.Decimal   { return p.price }
func (p *OrderPrediction) CustomerState() string    { return p.customerState }
func (p *OrderPrediction) PaymentType() string      { return p.paymentType }
func (p *OrderPrediction) PredictedAt() time.Time   { return p.predictedAt }
func (p *OrderPrediction) CreatedAt() time.Time     { return p.createdAt }

// DomainEvents returns all accumulated domain events and clears them.
func (p *OrderPrediction) DomainEvents() []event.DomainEvent {
	evts := p.domainEvents
	p.domainEvents = nil
	return evts
}
