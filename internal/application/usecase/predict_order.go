package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/application/dto"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/observability"
)

// ErrInvalidOrder marks request-level validation failures, so the boundary
// layer can distinguish them from internal errors.
var ErrInvalidOrder = errors.New("invalid order record")

// PredictOrder is the use case for predicting satisfaction of one order:
// the API path. It runs the shared pipeline on a single-record batch,
// persists the prediction and publishes the resulting domain events.
type PredictOrder struct {
	artifacts service.ArtifactSource
	pipeline  *service.Pipeline
	repo      port.PredictionRepository
	publisher port.EventPublisher
	metrics   *observability.Metrics
}

// NewPredictOrder creates a new PredictOrder use case. Metrics may be nil.
func NewPredictOrder(
	artifacts service.ArtifactSource,
	pipeline *service.Pipeline,
	repo port.PredictionRepository,
	publisher port.EventPublisher,
	metrics *observability.Metrics,
) *PredictOrder {
	return &PredictOrder{
		artifacts: artifacts,
		pipeline:  pipeline,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Execute validates the record, runs the pipeline and persists the result.
// All pipeline errors propagate unchanged; there is no retry and no default
// prediction on failure.
func (uc *PredictOrder) Execute(ctx context.Context, order model.Order) (dto.PredictionResponse, error) {
	// 1. Validate the raw record.
	if err := order.Validate(); err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	// 2. Load the cached artifact triple.
	arts, err := uc.artifacts.Get(ctx)
	if err != nil {
		return dto.PredictionResponse{}, err
	}

	// 3. Run the pipeline on a single-record batch.
	result, err := uc.pipeline.Run(arts, []model.Order{order})
	if err != nil {
		return dto.PredictionResponse{}, err
	}

	// 4. Create and persist the prediction aggregate.
	prediction, err := model.NewOrderPrediction(result.Classes[0], order)
	if err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("failed to create prediction: %w", err)
	}

	if err := uc.repo.Save(ctx, prediction); err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("failed to save prediction: %w", err)
	}

	// 5. Publish domain events.
	if events := prediction.DomainEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			return dto.PredictionResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	uc.record(ctx, result)

	return dto.FromModel(prediction), nil
}

func (uc *PredictOrder) record(ctx context.Context, result service.Result) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.Predictions.Add(ctx, 1,
		metric.WithAttributes(attribute.String("label", result.Labels[0].String())),
	)
	if result.UnseenCategories > 0 {
		uc.metrics.UnseenCategories.Add(ctx, int64(result.UnseenCategories))
	}
}
