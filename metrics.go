package stripeapi

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is an Observer that records Prometheus metrics for each request.
// Requests are labelled by path template, so identifiers never become label
// values.
type Metrics struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

var _ Observer = (*Metrics)(nil)

// NewMetrics registers the request metrics with the given registry. If nil,
// the default registry is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stripeapi_requests_total",
				Help: "The total number of requests made to the Stripe API",
			},
			[]string{"method", "path", "status"},
		),
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stripeapi_request_errors_total",
				Help: "The total number of failed requests made to the Stripe API, by kind of failure",
			},
			[]string{"method", "path", "kind"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stripeapi_request_duration_seconds",
				Help:    "The duration of requests made to the Stripe API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// Observe implements the Observer interface.
func (m *Metrics) Observe(_ context.Context, r Record) {
	status := "none"

	if r.StatusCode != 0 {
		status = strconv.Itoa(r.StatusCode)
	}

	m.Requests.WithLabelValues(r.Method, r.Path, status).Inc()
	m.Duration.WithLabelValues(r.Method, r.Path).Observe(r.Duration.Seconds())

	if kind := r.ErrorKind(); kind != "" {
		m.Errors.WithLabelValues(r.Method, r.Path, kind).Inc()
	}
}
