package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus metrics of the advisor service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ResponsesSubmittedTotal    prometheus.Counter
	RecommendationsServedTotal prometheus.Counter
	PlansExportedTotal         *prometheus.CounterVec
}

// New creates and registers the advisor metrics. sync.Once guards the
// promauto registration so repeated construction cannot panic with a
// duplicate collector.
//
// All metrics are prefixed with "advisor_":
//   - advisor_http_requests_total{method,route,status}
//   - advisor_http_request_duration_seconds{method,route}
//   - advisor_responses_submitted_total
//   - advisor_recommendations_served_total
//   - advisor_plans_exported_total{format}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "advisor_http_requests_total",
					Help: "Total number of HTTP requests handled",
				},
				[]string{"method", "route", "status"},
			),

			RequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "advisor_http_request_duration_seconds",
					Help:    "Duration of HTTP request handling in seconds",
					Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
				},
				[]string{"method", "route"},
			),

			ResponsesSubmittedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "advisor_responses_submitted_total",
					Help: "Total number of questionnaire responses accepted",
				},
			),

			RecommendationsServedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "advisor_recommendations_served_total",
					Help: "Total number of recommendation lists served",
				},
			),

			PlansExportedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "advisor_plans_exported_total",
					Help: "Total number of implementation plans exported",
				},
				[]string{"format"},
			),
		}
	})

	return globalMetrics
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordResponseSubmitted counts one accepted questionnaire response.
func (m *Metrics) RecordResponseSubmitted() {
	m.ResponsesSubmittedTotal.Inc()
}

// RecordRecommendationsServed counts one served recommendation list.
func (m *Metrics) RecordRecommendationsServed() {
	m.RecommendationsServedTotal.Inc()
}

// RecordPlanExported counts one exported plan by format.
func (m *Metrics) RecordPlanExported(format string) {
	m.PlansExportedTotal.WithLabelValues(format).Inc()
}
