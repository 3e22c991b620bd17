package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
)

// PredictionResponse is the output DTO for a single-order prediction.
type PredictionResponse struct {
	ID              uuid.UUID `json:"id"`
	Prediction      int       `json:"prediction"`
	PredictionLabel string    `json:"prediction_label"`
	PredictedAt     time.Time `json:"predicted_at"`
}

// FromModel maps a prediction aggregate to the response DTO.
func FromModel(p *model.OrderPrediction) PredictionResponse {
	return PredictionResponse{
		ID:              p.ID(),
		Prediction:      p.Class(),
		PredictionLabel: p.Label().String(),
		PredictedAt:     p.PredictedAt(),
	}
}

// BatchRow is the per-row output of a batch prediction, in input order.
type BatchRow struct {
	Index           int    `json:"index"`
	Prediction      int    `json:"prediction"`
	PredictionLabel string `json:"prediction_label"`
}

// BatchResponse is the output DTO for a batch prediction: per-row labels
// plus the dissatisfaction aggregates the dashboard reports.
type BatchResponse struct {
	Rows []BatchRow `json:"rows"`

	Total           int     `json:"total"`
	Dissatisfied    int     `json:"dissatisfied"`
	DissatisfiedPct float64 `json:"dissatisfied_pct"`

	// DissatisfiedMeanPrice is the mean price among rows predicted
	// dissatisfied, as a decimal string. Nil when no row is dissatisfied.
	DissatisfiedMeanPrice *string `json:"dissatisfied_mean_price,omitempty"`
}
