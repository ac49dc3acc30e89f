package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for upstream_requests_total.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomePayload   = "payload"
	OutcomeTimeout   = "timeout"
	OutcomeTransport = "transport"
)

// Metrics holds the outbound call collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates and registers the upstream collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of vehicle-data upstream calls by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Latency of vehicle-data upstream calls.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}
