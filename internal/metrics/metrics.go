// Package metrics counts guard decisions for Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name
const Namespace = "lspcontract"

// Directions of a checked message
const (
	Inbound  = "inbound"
	Outbound = "outbound"
)

// Outcomes of a guard decision
const (
	OutcomeOK           = "ok"
	OutcomeViolation    = "violation"
	OutcomeRejected     = "rejected"
	OutcomeUnresolvable = "unresolvable"
	OutcomeUnregistered = "unregistered"
)

// UnregisteredMethod replaces the method label of messages the registry does
// not know, so clients cannot grow the label set without bound
const UnregisteredMethod = "<unregistered>"

// Collector holds the guard metrics. A nil *Collector records nothing.
type Collector struct {
	Messages      *prometheus.CounterVec
	CheckDuration *prometheus.HistogramVec
}

// New creates a collector registered with the default registry
func New() *Collector {
	return newCollector(promauto.With(prometheus.DefaultRegisterer))
}

// NewWithRegistry creates a collector registered with reg.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	return newCollector(promauto.With(reg))
}

func newCollector(factory promauto.Factory) *Collector {
	return &Collector{
		Messages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "messages_total",
				Help:      "Messages seen by the guard, by method, direction and outcome",
			},
			[]string{"method", "direction", "outcome"},
		),
		CheckDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "check_duration_seconds",
				Help:      "Time spent decoding and checking one payload",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
			[]string{"part"},
		),
	}
}

// Record counts one guard decision
func (c *Collector) Record(method, direction, outcome string) {
	if c == nil {
		return
	}
	c.Messages.WithLabelValues(method, direction, outcome).Inc()
}

// ObserveCheck records how long checking one payload part took
func (c *Collector) ObserveCheck(part string, d time.Duration) {
	if c == nil {
		return
	}
	c.CheckDuration.WithLabelValues(part).Observe(d.Seconds())
}
