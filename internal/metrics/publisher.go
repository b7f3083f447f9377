package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publisherOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dingonft",
		Subsystem: "publisher",
		Name:      "operations_total",
		Help:      "Count of cache publish operations.",
	}, []string{"operation", "status"})
	publisherOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dingonft",
		Subsystem: "publisher",
		Name:      "operation_duration_seconds",
		Help:      "Duration of cache publish operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Publisher tracks metrics for Redis publish operations.
type Publisher struct{}

// NewPublisher creates a Publisher metrics collector.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Observe records duration and status of a publish operation.
func (m Publisher) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	publisherOperationsTotal.WithLabelValues(operation, status).Inc()
	publisherOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
