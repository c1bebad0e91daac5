// Package instrumentation holds the Prometheus metrics of the service.
package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the simulator service.
type Metrics struct {
	BookUpdatesTotal    *prometheus.CounterVec
	FeedStatesTotal     *prometheus.CounterVec
	SimulationsTotal    *prometheus.CounterVec
	SimulationLatencyMs prometheus.Histogram
}

// NewMetrics creates and registers all Prometheus metrics on the default
// registry.
func NewMetrics() *Metrics {
	return &Metrics{
		BookUpdatesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "obsim_book_updates_total",
			Help: "Total number of depth snapshots applied per venue",
		}, []string{"venue"}),

		FeedStatesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "obsim_feed_state_transitions_total",
			Help: "Total number of feed connection state transitions per venue and state",
		}, []string{"venue", "state"}),

		SimulationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "obsim_simulations_total",
			Help: "Total number of order simulations by order type and outcome status",
		}, []string{"order_type", "status"}),

		SimulationLatencyMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "obsim_simulation_latency_ms",
			Help:    "Time to run one order simulation in milliseconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 5, 10},
		}),
	}
}

// RecordBookUpdate increments the applied-snapshot counter for a venue.
func (m *Metrics) RecordBookUpdate(venue string) {
	m.BookUpdatesTotal.WithLabelValues(venue).Inc()
}

// RecordFeedState increments the state-transition counter for a venue.
func (m *Metrics) RecordFeedState(venue, state string) {
	m.FeedStatesTotal.WithLabelValues(venue, state).Inc()
}

// RecordSimulation increments the simulation counter and records latency.
func (m *Metrics) RecordSimulation(orderType, status string, latencyMs float64) {
	m.SimulationsTotal.WithLabelValues(orderType, status).Inc()
	m.SimulationLatencyMs.Observe(latencyMs)
}
