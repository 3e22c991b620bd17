package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/application/usecase"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
)

// Compile-time assertion that SatisfactionServiceHandler implements SatisfactionServiceServer.
var _ SatisfactionServiceServer = (*SatisfactionServiceHandler)(nil)

// SatisfactionServiceHandler implements the gRPC SatisfactionServiceServer interface.
type SatisfactionServiceHandler struct {
	UnimplementedSatisfactionServiceServer
	predictOrder  *usecase.PredictOrder
	getPrediction *usecase.GetPrediction
	logger        *slog.Logger
}

// NewSatisfactionServiceHandler creates a new gRPC handler.
func NewSatisfactionServiceHandler(
	predictOrder *usecase.PredictOrder,
	getPrediction *usecase.GetPrediction,
	logger *slog.Logger,
) *SatisfactionServiceHandler {
	return &SatisfactionServiceHandler{
		predictOrder:  predictOrder,
		getPrediction: getPrediction,
		logger:        logger,
	}
}

// Proto-aligned request/response message types.

// PredictOrderRequest represents the proto PredictOrderRequest message. The
// order is carried as its JSON document to keep the wire schema aligned
// with the REST body.
type PredictOrderRequest struct {
	Order *model.Order `json:"order"`
}

// PredictionMsg represents the proto Prediction message.
type PredictionMsg struct {
	ID              string `json:"id"`
	Prediction      int32  `json:"prediction"`
	PredictionLabel string `json:"prediction_label"`
	PredictedAt     string `json:"predicted_at"`
}

// PredictOrderResponse represents the proto PredictOrderResponse message.
type PredictOrderResponse struct {
	Prediction *PredictionMsg `json:"prediction"`
}

// GetPredictionRequest represents the proto GetPredictionRequest message.
type GetPredictionRequest struct {
	ID string `json:"id"`
}

// GetPredictionResponse represents the proto GetPredictionResponse message.
type GetPredictionResponse struct {
	Prediction *PredictionMsg `json:"prediction"`
}

// PredictOrder handles a single-order prediction request.
func (h *SatisfactionServiceHandler) PredictOrder(ctx context.Context, req *PredictOrderRequest) (*PredictOrderResponse, error) {
	if req == nil || req.Order == nil {
		return nil, status.Error(codes.InvalidArgument, "order is required")
	}

	resp, err := h.predictOrder.Execute(ctx, *req.Order)
	if err != nil {
		return nil, h.toStatus(err)
	}

	return &PredictOrderResponse{Prediction: &PredictionMsg{
		ID:              resp.ID.String(),
		Prediction:      int32(resp.Prediction),
		PredictionLabel: resp.PredictionLabel,
		PredictedAt:     resp.PredictedAt.Format("2006-01-02T15:04:05Z07:00"),
	}}, nil
}

// GetPrediction handles retrieval of a persisted prediction.
func (h *SatisfactionServiceHandler) GetPrediction(ctx context.Context, req *GetPredictionRequest) (*GetPredictionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id: %v", err)
	}

	resp, err := h.getPrediction.Execute(ctx, id)
	if err != nil {
		return nil, h.toStatus(err)
	}

	return &GetPredictionResponse{Prediction: &PredictionMsg{
		ID:              resp.ID.String(),
		Prediction:      int32(resp.Prediction),
		PredictionLabel: resp.PredictionLabel,
		PredictedAt:     resp.PredictedAt.Format("2006-01-02T15:04:05Z07:00"),
	}}, nil
}

// toStatus maps use-case errors onto gRPC status codes.
func (h *SatisfactionServiceHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, service.ErrDateParse):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrPredictionNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		h.logger.Error("prediction RPC failed", slog.String("error", err.Error()))
		return status.Error(codes.Internal, err.Error())
	}
}
