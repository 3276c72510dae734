package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gofolio",
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Storage operations by method and backend.",
		},
		[]string{"op", "backend"},
	)

	storageFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gofolio",
			Subsystem: "storage",
			Name:      "fallback_total",
			Help:      "Operations retried on the in-memory store after a durable-backend failure.",
		},
		[]string{"op"},
	)

	connectionUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gofolio",
			Subsystem: "storage",
			Name:      "connection_up",
			Help:      "1 while the document database connection is established.",
		},
	)
)

// RecordStorageOperation counts one storage call against the backend that served it.
func RecordStorageOperation(op, backend string) {
	storageOperationTotal.WithLabelValues(op, backend).Inc()
}

// RecordStorageFallback counts one durable-to-volatile fallback event.
func RecordStorageFallback(op string) {
	storageFallbackTotal.WithLabelValues(op).Inc()
}

// SetConnectionUp reflects the live connection state on the gauge.
func SetConnectionUp(up bool) {
	if up {
		connectionUp.Set(1)
		return
	}
	connectionUp.Set(0)
}
