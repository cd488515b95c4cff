package identity_client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeOK             = "ok"
	outcomeSerialization  = "serialization_error"
	outcomeURLComposition = "url_composition_error"
	outcomeTransport      = "transport_error"
)

// Metrics holds the Prometheus collectors for client dispatches.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

// NewMetrics registers the client collectors with reg. A nil reg uses a
// private registry, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_client_requests_total",
				Help: "Total number of identity requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "identity_client_request_duration_seconds",
				Help:    "Identity request latency in seconds, transport round trip included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		RequestsInFlight: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "identity_client_requests_in_flight",
				Help: "Current number of identity requests awaiting a response",
			},
		),
	}
}

func (m *Metrics) begin() {
	if m == nil {
		return
	}
	m.RequestsInFlight.Inc()
}

func (m *Metrics) observe(endpoint string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsInFlight.Dec()
	m.RequestsTotal.WithLabelValues(endpoint, outcomeOf(err)).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case IsSerialization(err):
		return outcomeSerialization
	case IsURLComposition(err):
		return outcomeURLComposition
	default:
		return outcomeTransport
	}
}
