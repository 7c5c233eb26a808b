package metrics

import (
	"time"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherScanBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "scan_blocks_total",
		Help:      "Count of block range scans.",
	}, []string{"network", "status"})

	watcherScanBlocksDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "scan_blocks_duration_seconds",
		Help:      "Duration of scanning a block range.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	watcherScanBlocksSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "scan_blocks_size",
		Help:      "Number of heights per scanned range.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	watcherScanMempoolTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "scan_mempool_total",
		Help:      "Count of mempool scans.",
	}, []string{"network", "status"})

	watcherScanMempoolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "scan_mempool_duration_seconds",
		Help:      "Duration of a mempool scan.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	watcherImportedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "imported_total",
		Help:      "Count of marketplace records imported into the registry.",
	}, []string{"network", "kind", "status"})

	watcherHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mmp",
		Subsystem: "watcher",
		Name:      "scanned_height",
		Help:      "Highest block height scanned for marketplace records.",
	}, []string{"network"})
)

// Watcher tracks metrics for the chain watcher.
type Watcher struct {
	network model.Network
}

// NewWatcher constructs a Watcher with defaults.
func NewWatcher(network model.Network) *Watcher {
	if network == "" {
		network = "unknown"
	}
	return &Watcher{network: network}
}

// ObserveScanBlocks records a block range scan.
func (m Watcher) ObserveScanBlocks(err error, heights int, started time.Time) {
	status := statusOf(err)
	watcherScanBlocksTotal.WithLabelValues(string(m.network), status).Inc()
	watcherScanBlocksDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	watcherScanBlocksSize.WithLabelValues(string(m.network)).
		Observe(float64(heights))
}

// ObserveScanMempool records a mempool scan.
func (m Watcher) ObserveScanMempool(err error, started time.Time) {
	status := statusOf(err)
	watcherScanMempoolTotal.WithLabelValues(string(m.network), status).Inc()
	watcherScanMempoolDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveImport records one imported posting or application.
func (m Watcher) ObserveImport(kind string, err error) {
	watcherImportedTotal.WithLabelValues(string(m.network), kind, statusOf(err)).Inc()
}

// SetHeight publishes the highest scanned height.
func (m Watcher) SetHeight(height uint32) {
	watcherHeight.WithLabelValues(string(m.network)).Set(float64(height))
}
