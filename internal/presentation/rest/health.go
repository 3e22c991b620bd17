package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
)

// HealthHandler provides HTTP health check endpoints. The root endpoint
// reports whether the model artifacts loaded and their declared types.
type HealthHandler struct {
	artifacts service.ArtifactSource
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(artifacts service.ArtifactSource, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		artifacts: artifacts,
		logger:    logger,
		startTime: time.Now(),
	}
}

// ModelHealthResponse is the JSON response for the model health endpoint.
type ModelHealthResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	ModelType  string `json:"model_type"`
	ScalerType string `json:"scaler_type"`
}

// HealthResponse is the JSON response for liveness checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.ModelHealth)
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// ModelHealth reports artifact-load success and the loaded model and scaler
// type names. Artifact failures surface as a 500 without crashing the
// process.
func (h *HealthHandler) ModelHealth(w http.ResponseWriter, r *http.Request) {
	arts, err := h.artifacts.Get(r.Context())
	if err != nil {
		h.logger.Error("model health check failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ModelHealthResponse{
		Status:     "healthy",
		Message:    "Olist e-commerce satisfaction prediction API",
		ModelType:  arts.Classifier.TypeName(),
		ScalerType: arts.Scaler.TypeName(),
	})
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "satisfaction-service",
		Uptime:  time.Since(h.startTime).String(),
	})
}

// Readyz handles readiness probe requests: ready once the artifacts load.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if _, err := h.artifacts.Get(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "model artifacts unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
