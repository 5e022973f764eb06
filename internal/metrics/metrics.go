package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	RecordsCreated     *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	FormEdits          *prometheus.CounterVec
	gatherer           prometheus.Gatherer
}

// New registers every collector on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sellos_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sellos_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		RecordsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sellos_stamp_records_created_total",
			Help: "Stamp records registered, by act code",
		}, []string{"act"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sellos_form_validation_failures_total",
			Help: "Rejected submissions, by failed condition",
		}, []string{"condition"}),
		FormEdits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sellos_form_edits_total",
			Help: "Form edits applied, by operation",
		}, []string{"op"}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) RecordCreated(act string) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(act).Inc()
}

func (m *Metrics) ValidationFailed(condition string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(condition).Inc()
}

func (m *Metrics) FormEdited(op string) {
	if m == nil {
		return
	}
	m.FormEdits.WithLabelValues(op).Inc()
}
