package metrics

import (
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmp",
		Subsystem: "registry",
		Name:      "state_transitions_total",
		Help:      "Count of applied contract state transitions.",
	}, []string{"from", "to"})

	registryRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmp",
		Subsystem: "registry",
		Name:      "rejected_operations_total",
		Help:      "Count of registry operations rejected by lifecycle rules.",
	}, []string{"operation"})

	registryContracts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "mmp",
		Subsystem: "registry",
		Name:      "contracts",
		Help:      "Number of contracts held by the registry.",
	})
)

// Registry tracks metrics for the contract registry.
type Registry struct{}

// NewRegistry creates a Registry metrics collector.
func NewRegistry() *Registry {
	return &Registry{}
}

// ObserveTransition records an applied state transition.
func (m Registry) ObserveTransition(from, to model.JobState) {
	registryTransitionsTotal.WithLabelValues(from.String(), to.String()).Inc()
}

// ObserveRejected records an operation refused by the registry.
func (m Registry) ObserveRejected(operation string) {
	registryRejectedTotal.WithLabelValues(operation).Inc()
}

// SetContracts publishes the number of stored contracts.
func (m Registry) SetContracts(n int) {
	registryContracts.Set(float64(n))
}
