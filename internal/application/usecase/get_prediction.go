package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/application/dto"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
)

// GetPrediction is the use case for retrieving a persisted prediction.
type GetPrediction struct {
	repo port.PredictionRepository
}

// NewGetPrediction creates a new GetPrediction use case.
func NewGetPrediction(repo port.PredictionRepository) *GetPrediction {
	return &GetPrediction{repo: repo}
}

// Execute retrieves a prediction by ID.
func (uc *GetPrediction) Execute(ctx context.Context, id uuid.UUID) (dto.PredictionResponse, error) {
	prediction, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("failed to get prediction: %w", err)
	}

	return dto.FromModel(prediction), nil
}
