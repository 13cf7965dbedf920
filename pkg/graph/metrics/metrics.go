// Package metrics holds the prometheus collectors shared across the
// generation pipeline.
package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// System metrics
	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_bytes",
		Help: "Current system memory usage",
	})

	SystemGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_goroutines",
		Help: "Number of goroutines",
	})

	// Generation metrics
	GenerationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kg_generation_errors_total",
			Help: "Total number of graph generation errors",
		},
		[]string{"stage"},
	)

	GraphTripleCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kg_graph_triples_total",
		Help: "Number of triples in the last assembled graph",
	})

	GraphEntityCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kg_graph_entities_total",
			Help: "Number of entities in the last assembled graph",
		},
		[]string{"entity_type"},
	)
)

// UpdateSystemMetrics updates system-level metrics.
func UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	SystemMemoryUsage.Set(float64(m.Alloc))
	SystemGoroutines.Set(float64(runtime.NumGoroutine()))
}
