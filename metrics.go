package cityroute

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultFound       = "found"
	resultNotFound    = "not_found"
	resultInvalidNode = "invalid_node"
	resultError       = "error"
)

// Metrics holds query counters of a single Planner. Each instance owns its registry
type Metrics struct {
	registry *prometheus.Registry

	Queries       *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	SettledNodes  prometheus.Histogram
}

// NewMetrics creates metrics registered in a fresh registry
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of shortest path queries by result",
			},
			[]string{"result"},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Shortest path query duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		SettledNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "settled_nodes",
				Help:      "Number of cities settled by a successful query",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
	registry.MustRegister(m.Queries, m.QueryDuration, m.SettledNodes)
	return m
}

// Registry returns registry which holds the metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile dumps metrics in text exposition format (node_exporter textfile collector)
func (m *Metrics) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}
