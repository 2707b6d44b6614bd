// Package metrics provides Prometheus metrics for start list conversions.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion stages used as the stage label of error metrics.
const (
	StageRead  = "read"
	StageBuild = "build"
	StageWrite = "write"
)

// Manager holds the metrics of conversion runs.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         *prometheus.Registry

	athletesRead       prometheus.Counter
	teamsWritten       prometheus.Counter
	conversionErrors   *prometheus.CounterVec
	conversionDuration prometheus.Histogram
	teamsByCategory    *prometheus.GaugeVec
	teamsByGender      *prometheus.GaugeVec
	lastBib            prometheus.Gauge
	lastSuccess        prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics for the CLI

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager on its own registry unless one is
// provided.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "startlist",
		subsystem:        "conversion",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		customLabels:     map[string]string{},
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.athletesRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "athletes_read_total",
		Help:        "Total number of athlete rows read from rosters",
		ConstLabels: labels,
	})

	m.teamsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "teams_written_total",
		Help:        "Total number of team rows written to start lists",
		ConstLabels: labels,
	})

	m.conversionErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Total number of failed conversions by stage",
		ConstLabels: labels,
	}, []string{"stage"})

	m.conversionDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duration_seconds",
		Help:        "Duration of conversion runs in seconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.teamsByCategory = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "teams_by_category",
		Help:        "Teams of the last successful run per team category",
		ConstLabels: labels,
	}, []string{"category"})

	m.teamsByGender = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "teams_by_gender",
		Help:        "Teams of the last successful run per team gender",
		ConstLabels: labels,
	}, []string{"gender"})

	m.lastBib = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_bib",
		Help:        "Highest bib assigned by the last successful run",
		ConstLabels: labels,
	})

	m.lastSuccess = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_success_timestamp_seconds",
		Help:        "Unix time of the last successful run",
		ConstLabels: labels,
	})
}

// RecordAthletesRead adds n athlete rows to the read counter.
func (m *Manager) RecordAthletesRead(n int) { m.athletesRead.Add(float64(n)) }

// RecordError counts a failed conversion at stage.
func (m *Manager) RecordError(stage string) { m.conversionErrors.WithLabelValues(stage).Inc() }

// RecordDuration observes the duration of one run.
func (m *Manager) RecordDuration(d time.Duration) { m.conversionDuration.Observe(d.Seconds()) }

// RecordSuccess publishes the outcome of a successful run. byCategory and
// byGender replace the previous run's breakdown.
func (m *Manager) RecordSuccess(teams, lastBib int, byCategory, byGender map[string]int) {
	m.teamsWritten.Add(float64(teams))
	m.teamsByCategory.Reset()
	for k, v := range byCategory {
		m.teamsByCategory.WithLabelValues(k).Set(float64(v))
	}
	m.teamsByGender.Reset()
	for k, v := range byGender {
		m.teamsByGender.WithLabelValues(k).Set(float64(v))
	}
	m.lastBib.Set(float64(lastBib))
	m.lastSuccess.SetToCurrentTime()
}

// Registry returns the registry the manager's metrics live on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the registry to path in the Prometheus text format,
// as read by the node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Default returns the process-wide manager.
func Default() *Manager { return globalManager }

// GetRegistry returns the registry of the process-wide manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}
