// Package metrics provides Prometheus metrics for the marks grading tools.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for check counters.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Function labels for check counters.
const (
	FuncAverage  = "average"
	FuncFullName = "full_name"
	FuncDivide   = "divide"
)

// Manager manages all Prometheus metrics for the marks tools.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core Business Metrics - validation outcomes per function
	checksTotal        *prometheus.CounterVec
	validationFailures *prometheus.CounterVec

	// Grade distribution
	averagePercent prometheus.Histogram

	// Report Metrics
	reportsBuilt   prometheus.Counter
	reportStudents prometheus.Counter
	reportFailures prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Get returns the global metrics manager.
func Get() *Manager {
	return globalManager
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "marks",
		subsystem:        "grading",
		histogramBuckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.register()
	return m
}

func (m *Manager) register() {
	factory := promauto.With(m.registry)

	m.checksTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "checks_total",
		Help:      "Validated calls by function and outcome.",
	}, []string{"function", "outcome"})

	m.validationFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Guard-clause rejections by function.",
	}, []string{"function"})

	m.averagePercent = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "average_percent",
		Help:      "Distribution of computed average percentages.",
		Buckets:   m.histogramBuckets,
	})

	m.reportsBuilt = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_built_total",
		Help:      "Grade reports rendered.",
	})

	m.reportStudents = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_students_total",
		Help:      "Students processed across all reports.",
	})

	m.reportFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_failures_total",
		Help:      "Students rejected by validation across all reports.",
	})
}

// RecordCheck counts one validated call for the given function label.
func (m *Manager) RecordCheck(function string, err error) {
	if !m.enabled {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeInvalid
		m.validationFailures.WithLabelValues(function).Inc()
	}
	m.checksTotal.WithLabelValues(function, outcome).Inc()
}

// ObserveAverage records a successfully computed average percentage.
func (m *Manager) ObserveAverage(pct float64) {
	if !m.enabled {
		return
	}
	m.averagePercent.Observe(pct)
}

// RecordReport counts one rendered report and its row counts.
func (m *Manager) RecordReport(students, failures int) {
	if !m.enabled {
		return
	}
	m.reportsBuilt.Inc()
	m.reportStudents.Add(float64(students))
	m.reportFailures.Add(float64(failures))
}
