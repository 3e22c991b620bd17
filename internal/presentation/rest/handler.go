package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/application/usecase"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
)

// Handler exposes the prediction use cases over HTTP.
type Handler struct {
	predictOrder  *usecase.PredictOrder
	predictBatch  *usecase.PredictBatch
	getPrediction *usecase.GetPrediction
	logger        *slog.Logger
}

// NewHandler creates a new REST handler.
func NewHandler(
	predictOrder *usecase.PredictOrder,
	predictBatch *usecase.PredictBatch,
	getPrediction *usecase.GetPrediction,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		predictOrder:  predictOrder,
		predictBatch:  predictBatch,
		getPrediction: getPrediction,
		logger:        logger,
	}
}

// RegisterRoutes registers the prediction endpoints on the provided ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /predict", h.Predict)
	mux.HandleFunc("POST /predict/batch", h.PredictBatch)
	mux.HandleFunc("GET /predictions/{id}", h.GetPrediction)
}

// Predict handles a single-order prediction request.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.predictOrder.Execute(r.Context(), order)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// batchRequest is the request body for batch predictions.
type batchRequest struct {
	Orders []model.Order `json:"orders"`
}

// PredictBatch handles a batch prediction request.
func (h *Handler) PredictBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.predictBatch.Execute(r.Context(), req.Orders)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPrediction handles retrieval of a persisted prediction.
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prediction id")
		return
	}

	resp, err := h.getPrediction.Execute(r.Context(), id)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeUsecaseError translates pipeline and use-case errors into HTTP
// statuses. Validation and parse failures are the client's to fix; artifact
// and schema failures are server-side contract violations.
func (h *Handler) writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, service.ErrDateParse):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, port.ErrPredictionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("prediction request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
