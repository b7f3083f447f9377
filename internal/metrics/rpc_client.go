package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dingonft",
		Subsystem: "rpc_client",
		Name:      "requests_total",
		Help:      "Count of node RPC requests.",
	}, []string{"operation", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dingonft",
		Subsystem: "rpc_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of node RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// RPCClient tracks metrics for Dingocoin node RPC calls.
type RPCClient struct{}

// NewRPCClient creates an RPCClient metrics collector.
func NewRPCClient() *RPCClient {
	return &RPCClient{}
}

// Observe records duration and status of an RPC request.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
