// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// TurnsTotal tracks handled chat turns by product and sentiment.
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total handled chat turns",
		},
		[]string{"product", "sentiment"},
	)

	// ProductPromptsTotal tracks turns short-circuited for product selection.
	ProductPromptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_product_prompts_total",
			Help: "Turns answered with a product selection prompt",
		},
	)

	// TicketsCreated tracks tickets created by product.
	TicketsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_created_total",
			Help: "Total tickets created",
		},
		[]string{"product"},
	)

	// TranslationDuration tracks translation call duration by outcome.
	TranslationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "translation_duration_seconds",
			Help:    "Translation call duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"status"},
	)

	// TranscriptExportsTotal tracks transcript exports.
	TranscriptExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transcript_exports_total",
			Help: "Total transcript documents rendered",
		},
	)

	// AuditAppendFailures tracks audit sink append failures.
	AuditAppendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_append_failures_total",
			Help: "Audit record append failures by sink",
		},
		[]string{"sink"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordTurn records a successfully dispatched chat turn.
func RecordTurn(product, sentiment string) {
	TurnsTotal.WithLabelValues(product, sentiment).Inc()
}

// RecordTranslation records a translation call outcome.
func RecordTranslation(status string, duration float64) {
	TranslationDuration.WithLabelValues(status).Observe(duration)
}
