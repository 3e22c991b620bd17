package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/application/dto"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/observability"
)

// PredictBatch is the use case behind the dashboard path: a table of orders
// predicted as one batch, sharing one canonical column set and one
// freight-percentage median. Batch predictions are not persisted; the
// aggregates are a thin consumer of the per-row output.
type PredictBatch struct {
	artifacts service.ArtifactSource
	pipeline  *service.Pipeline
	metrics   *observability.Metrics
}

// NewPredictBatch creates a new PredictBatch use case. Metrics may be nil.
func NewPredictBatch(artifacts service.ArtifactSource, pipeline *service.Pipeline, metrics *observability.Metrics) *PredictBatch {
	return &PredictBatch{artifacts: artifacts, pipeline: pipeline, metrics: metrics}
}

// Execute runs the pipeline over all rows and computes the dissatisfaction
// aggregates: count, percentage, and mean price among dissatisfied rows.
func (uc *PredictBatch) Execute(ctx context.Context, orders []model.Order) (dto.BatchResponse, error) {
	if len(orders) == 0 {
		return dto.BatchResponse{}, fmt.Errorf("%w: batch is empty", ErrInvalidOrder)
	}

	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return dto.BatchResponse{}, fmt.Errorf("%w: row %d: %v", ErrInvalidOrder, i, err)
		}
	}

	arts, err := uc.artifacts.Get(ctx)
	if err != nil {
		return dto.BatchResponse{}, err
	}

	result, err := uc.pipeline.Run(arts, orders)
	if err != nil {
		return dto.BatchResponse{}, err
	}

	rows := make([]dto.BatchRow, len(orders))
	dissatisfied := 0
	priceSum := decimal.Zero

	for i, label := range result.Labels {
		rows[i] = dto.BatchRow{
			Index:           i,
			Prediction:      result.Classes[i],
			PredictionLabel: label.String(),
		}
		if label.Equal(valueobject.LabelDissatisfied) {
			dissatisfied++
			priceSum = priceSum.Add(decimal.NewFromFloat(*orders[i].Price))
		}
	}

	resp := dto.BatchResponse{
		Rows:            rows,
		Total:           len(orders),
		Dissatisfied:    dissatisfied,
		DissatisfiedPct: float64(dissatisfied) / float64(len(orders)) * 100,
	}
	if dissatisfied > 0 {
		mean := priceSum.Div(decimal.NewFromInt(int64(dissatisfied))).Round(2).String()
		resp.DissatisfiedMeanPrice = &mean
	}

	uc.record(ctx, result)

	return resp, nil
}

func (uc *PredictBatch) record(ctx context.Context, result service.Result) {
	if uc.metrics == nil {
		return
	}
	for _, label := range result.Labels {
		uc.metrics.Predictions.Add(ctx, 1,
			metric.WithAttributes(attribute.String("label", label.String())),
		)
	}
	if result.UnseenCategories > 0 {
		uc.metrics.UnseenCategories.Add(ctx, int64(result.UnseenCategories))
	}
}
