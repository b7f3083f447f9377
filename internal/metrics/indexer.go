package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dingonft",
		Subsystem: "indexer",
		Name:      "height",
		Help:      "Latest fully indexed block height.",
	})
	indexerTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dingonft",
		Subsystem: "indexer",
		Name:      "transactions_total",
		Help:      "Count of indexed protocol transactions.",
	}, []string{"kind"})
)

// Indexer tracks indexing progress.
type Indexer struct{}

// NewIndexer creates an Indexer metrics collector.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// SetHeight records the latest fully indexed block height.
func (m Indexer) SetHeight(height uint64) {
	indexerHeight.Set(float64(height))
}

// ObserveTransaction counts an indexed protocol transaction by kind.
func (m Indexer) ObserveTransaction(kind string) {
	indexerTransactionsTotal.WithLabelValues(kind).Inc()
}
