package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// Metrics bundles the service-level instruments used by the prediction
// pipeline's boundary layers.
type Metrics struct {
	// Predictions counts completed predictions, partitioned by label.
	Predictions metric.Int64Counter

	// UnseenCategories counts categorical values that had no matching
	// indicator column at inference time.
	UnseenCategories metric.Int64Counter
}

// InitMetrics initializes the Prometheus metrics exporter and the service
// instruments. Returns the MeterProvider, the instruments, and an HTTP
// handler for the /metrics endpoint.
func InitMetrics(cfg MetricsConfig) (*sdkmetric.MeterProvider, *Metrics, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	meter := provider.Meter(cfg.ServiceName)

	predictions, err := meter.Int64Counter("satisfaction_predictions_total",
		metric.WithDescription("Completed satisfaction predictions by label"),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	unseen, err := meter.Int64Counter("satisfaction_unseen_categories_total",
		metric.WithDescription("Categorical values with no matching indicator column"),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	m := &Metrics{
		Predictions:      predictions,
		UnseenCategories: unseen,
	}

	return provider, m, promhttp.Handler(), nil
}
