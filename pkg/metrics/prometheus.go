// Package metrics provides Prometheus metrics for the fungo simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the simulator.
type Manager struct {
	namespace   string
	subsystem   string
	runsBuckets []float64
	registry    prometheus.Registerer

	// Simulation throughput
	gamesSimulated   prometheus.Counter
	lineupsEvaluated prometheus.Counter
	plateAppearances *prometheus.CounterVec

	// Score distribution
	runsPerGame prometheus.Histogram

	// Operational health
	workerActive     prometheus.Gauge
	sweepTotal       prometheus.Gauge
	sweepCompleted   prometheus.Gauge
	simulationErrors *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "fungo",
		subsystem: "simulation",
		// Per-game run totals are small integers; bucket accordingly.
		runsBuckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 13, 16, 20},
		registry:    prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.gamesSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_simulated_total",
		Help:      "Total number of games simulated",
	})

	m.lineupsEvaluated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lineups_evaluated_total",
		Help:      "Total number of batting orders evaluated",
	})

	m.plateAppearances = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "plate_appearances_total",
			Help:      "Total plate appearances simulated, by outcome kind",
		},
		[]string{"outcome"},
	)

	m.runsPerGame = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_per_game",
		Help:      "Distribution of run totals across simulated games",
		Buckets:   m.runsBuckets,
	})

	m.workerActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_active",
		Help:      "Current number of active simulation workers",
	})

	m.sweepTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sweep_lineups_total",
		Help:      "Total number of lineups queued in the current sweep",
	})

	m.sweepCompleted = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sweep_lineups_completed",
		Help:      "Number of lineups completed in the current sweep",
	})

	m.simulationErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_total",
			Help:      "Total simulation errors, by component",
		},
		[]string{"component"},
	)
}

// GetRegistry returns the custom registry used for metrics, for serving
// via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordGameSimulated records one completed game and its run total.
func RecordGameSimulated(runs int) {
	globalManager.gamesSimulated.Inc()
	globalManager.runsPerGame.Observe(float64(runs))
}

// RecordLineupEvaluated records one completed lineup evaluation.
func RecordLineupEvaluated() {
	globalManager.lineupsEvaluated.Inc()
}

// RecordPlateAppearance records one plate appearance by outcome kind.
func RecordPlateAppearance(outcome string) {
	globalManager.plateAppearances.WithLabelValues(outcome).Inc()
}

// AddWorkerActive adjusts the active worker gauge by delta. Workers add
// one on start and subtract one on exit.
func AddWorkerActive(delta int) {
	globalManager.workerActive.Add(float64(delta))
}

// UpdateSweepProgress sets the sweep progress gauges.
func UpdateSweepProgress(completed, total int) {
	globalManager.sweepCompleted.Set(float64(completed))
	globalManager.sweepTotal.Set(float64(total))
}

// RecordSimulationError records an error attributed to a component.
func RecordSimulationError(component string) {
	globalManager.simulationErrors.WithLabelValues(component).Inc()
}
