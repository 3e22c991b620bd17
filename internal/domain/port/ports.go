package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/event"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
)

// ErrPredictionNotFound is returned when a prediction does not exist.
var ErrPredictionNotFound = errors.New("prediction not found")

// Classifier is the trained-model contract: one class per input row, with
// the row layout fixed by the canonical column list. Implementations must be
// safe for concurrent use and side-effect free.
type Classifier interface {
	// Predict returns one binary class (0 or 1) per row.
	Predict(rows [][]float64) ([]int, error)

	// TypeName reports the declared type of the persisted model, for health
	// reporting (e.g. "RandomForestClassifier").
	TypeName() string
}

// Scaler is the persisted feature-scaler contract. Transform preserves row
// and column order.
type Scaler interface {
	Transform(rows [][]float64) ([][]float64, error)
	TypeName() string
}

// PredictionRepository defines the persistence port for order predictions.
type PredictionRepository interface {
	// Save persists a new prediction.
	Save(ctx context.Context, prediction *model.OrderPrediction) error

	// FindByID retrieves a prediction by its unique identifier. Returns
	// ErrPredictionNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrderPrediction, error)

	// FindRecent retrieves the most recent predictions, newest first.
	FindRecent(ctx context.Context, limit int) ([]*model.OrderPrediction, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
