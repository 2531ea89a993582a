// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Decode metrics
	RowsDecoded  prometheus.Counter
	DecodeErrors *prometheus.CounterVec // by format

	// Engine metrics
	ReportsGenerated prometheus.Counter
	EmptyDatasets    prometheus.Counter
	ComputeDuration  prometheus.Histogram

	// HTTP metrics
	UploadRequests *prometheus.CounterVec // by status class
	UploadDuration prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "payment_metrics_lab"
	}

	return &Metrics{
		RowsDecoded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decode",
			Name:      "rows_decoded_total",
			Help:      "Total number of rows decoded from uploaded files",
		}),
		DecodeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decode",
			Name:      "errors_total",
			Help:      "Total number of decode failures",
		}, []string{"format"}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "reports_generated_total",
			Help:      "Total number of metrics reports generated",
		}),
		EmptyDatasets: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "empty_datasets_total",
			Help:      "Total number of uploads that decoded to zero rows",
		}),
		ComputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "compute_duration_seconds",
			Help:      "Time spent computing a metrics report",
			Buckets:   prometheus.DefBuckets,
		}),
		UploadRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "upload_requests_total",
			Help:      "Total number of report upload requests",
		}, []string{"status"}),
		UploadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "upload_duration_seconds",
			Help:      "End-to-end time for a report upload request",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
