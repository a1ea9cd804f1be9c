package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the client collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "timer_client",
			Name:      "requests_total",
			Help:      "Requests issued to the timer service, by operation and HTTP status. Code 0 means no response.",
		}, []string{"service", "operation", "method", "code"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "timer_client",
			Name:      "request_duration_seconds",
			Help:      "Round trip time of requests to the timer service.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"service", "operation", "method"}),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration)
	return m
}

// Observe is a no-op on a nil receiver so transports can run without metrics.
func (m *Metrics) Observe(service, operation, method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(service, operation, method, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(service, operation, method).Observe(d.Seconds())
}
