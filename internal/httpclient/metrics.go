package httpclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records outbound bridge calls.
type Metrics struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the bridge call metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_requests_total",
				Help: "Total number of calls made to remote services.",
			},
			[]string{"bridge", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bridge_request_duration_seconds",
				Help:    "Latency of calls made to remote services.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"bridge"},
		),
	}

	if err := reg.Register(m.requestCount); err != nil {
		return nil, err
	}
	if err := reg.Register(m.requestDuration); err != nil {
		return nil, err
	}
	return m, nil
}

// Observe records one call. A nil *Metrics is a no-op so bridges can be
// constructed without metrics.
func (m *Metrics) Observe(bridgeName, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestCount.WithLabelValues(bridgeName, outcome).Inc()
	m.requestDuration.WithLabelValues(bridgeName).Observe(d.Seconds())
}
