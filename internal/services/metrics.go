package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// catalogOps counts catalog mutations by operation and outcome
	// (ok|rejected|persist_error).
	catalogOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Catalog mutations by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	downloadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_downloads_total",
		Help: "Download events recorded across all entries.",
	})

	reviewsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_reviews_total",
		Help: "Reviews submitted across all entries.",
	})

	uploadBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_media_payload_bytes",
		Help:    "Size of encoded media payloads in bytes.",
		Buckets: prometheus.ExponentialBuckets(1<<10, 4, 8),
	})
)

func init() {
	prometheus.MustRegister(catalogOps, downloadsTotal, reviewsTotal, uploadBytes)
}

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomePersist  = "persist_error"
)

func observe(op string, err error) {
	switch {
	case err == nil:
		catalogOps.WithLabelValues(op, outcomeOK).Inc()
	case isPersist(err):
		catalogOps.WithLabelValues(op, outcomePersist).Inc()
	default:
		catalogOps.WithLabelValues(op, outcomeRejected).Inc()
	}
}
