// Package metrics provides Prometheus metrics for the studytrack analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recompute outcomes reported by RecordRecompute.
const (
	OutcomeRecomputed   = "recomputed"
	OutcomeCached       = "cached"
	OutcomeInsufficient = "insufficient"
	OutcomeFailed       = "failed"
)

// Manager manages all Prometheus metrics for the analytics service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Correlation engine
	recomputeTotal       *prometheus.CounterVec
	recomputeDuration    prometheus.Histogram
	correlationSetSize   prometheus.Gauge
	populationSize       prometheus.Gauge
	predictorFailures    prometheus.Counter
	normalizedExports    prometheus.Counter
	correlationQueries   prometheus.Counter
	eligibleRows         prometheus.Gauge
	assessmentsSubmitted prometheus.Counter

	// Recommendations
	recommendationsGenerated prometheus.Counter
	recommendationStatus     *prometheus.CounterVec
	careerRankings           *prometheus.CounterVec
	careerRankingSize        prometheus.Histogram

	// Repository
	repositoryRecords      *prometheus.GaugeVec
	repositoryQueryLatency *prometheus.HistogramVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "studytrack",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gauge(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.recomputeTotal = auto.NewCounterVec(
		m.counter("correlation_recompute_total", "Correlation recompute requests by outcome"),
		[]string{"outcome"},
	)
	m.recomputeDuration = auto.NewHistogram(
		m.histogram("correlation_recompute_duration_milliseconds", "Duration of full correlation recomputes in milliseconds", m.histogramBuckets),
	)
	m.correlationSetSize = auto.NewGauge(
		m.gauge("correlation_records", "Number of records in the current correlation set"),
	)
	m.populationSize = auto.NewGauge(
		m.gauge("population_assessments", "Number of assessments in the last recomputed population"),
	)
	m.eligibleRows = auto.NewGauge(
		m.gauge("population_eligible_rows", "Assessments with at least one performance target in the last recompute"),
	)
	m.predictorFailures = auto.NewCounter(
		m.counter("predictor_failures_total", "Assessments for which the productivity predictor produced no score"),
	)
	m.normalizedExports = auto.NewCounter(
		m.counter("normalized_exports_total", "Normalized assessment copies written"),
	)
	m.correlationQueries = auto.NewCounter(
		m.counter("correlation_queries_total", "Filtered correlation reads"),
	)
	m.assessmentsSubmitted = auto.NewCounter(
		m.counter("assessments_submitted_total", "Assessments accepted for analysis"),
	)

	m.recommendationsGenerated = auto.NewCounter(
		m.counter("recommendations_generated_total", "Recommendations persisted after generation"),
	)
	m.recommendationStatus = auto.NewCounterVec(
		m.counter("recommendation_status_updates_total", "Recommendation feedback by new status"),
		[]string{"status"},
	)
	m.careerRankings = auto.NewCounterVec(
		m.counter("career_rankings_total", "Career aligned subject rankings served"),
		[]string{"career", "simulated"},
	)
	m.careerRankingSize = auto.NewHistogram(
		m.histogram("career_ranking_size", "Subjects returned per career aligned ranking", []float64{0, 1, 2, 3, 5, 10}),
	)

	m.repositoryRecords = auto.NewGaugeVec(
		m.gauge("repository_records", "Rows held by the repository by kind"),
		[]string{"store", "kind"},
	)
	m.repositoryQueryLatency = auto.NewHistogramVec(
		m.histogram("repository_query_latency_milliseconds", "Repository operation latency in milliseconds", []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500}),
		[]string{"store", "op"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counter("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogram("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counter("errors_by_component_total", "Errors by component and type"),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(
		m.gauge("system_memory_usage_bytes", "Heap bytes in use"),
	)
	m.systemGoroutineCount = auto.NewGauge(
		m.gauge("system_goroutine_count", "Number of goroutines"),
	)
}

// RecordRecompute increments the recompute counter for outcome.
func RecordRecompute(outcome string) {
	globalManager.recomputeTotal.WithLabelValues(outcome).Inc()
}

// RecordRecomputeDuration records a full recompute duration in milliseconds.
func RecordRecomputeDuration(ms float64) {
	globalManager.recomputeDuration.Observe(ms)
}

// UpdateCorrelationSetSize sets the size of the current correlation set.
func UpdateCorrelationSetSize(n int) {
	globalManager.correlationSetSize.Set(float64(n))
}

// UpdatePopulationSize sets the size of the last recomputed population.
func UpdatePopulationSize(n int) {
	globalManager.populationSize.Set(float64(n))
}

// UpdateEligibleRows sets the eligible row count of the last recompute.
func UpdateEligibleRows(n int) {
	globalManager.eligibleRows.Set(float64(n))
}

// RecordPredictorFailure counts one row without a predicted score.
func RecordPredictorFailure() {
	globalManager.predictorFailures.Inc()
}

// RecordNormalizedExports counts written normalized copies.
func RecordNormalizedExports(n int) {
	globalManager.normalizedExports.Add(float64(n))
}

// RecordCorrelationQuery counts one filtered correlation read.
func RecordCorrelationQuery() {
	globalManager.correlationQueries.Inc()
}

// RecordAssessmentSubmitted counts one accepted assessment.
func RecordAssessmentSubmitted() {
	globalManager.assessmentsSubmitted.Inc()
}

// RecordRecommendationsGenerated counts persisted recommendations.
func RecordRecommendationsGenerated(n int) {
	globalManager.recommendationsGenerated.Add(float64(n))
}

// RecordRecommendationStatus counts one feedback update.
func RecordRecommendationStatus(status string) {
	globalManager.recommendationStatus.WithLabelValues(status).Inc()
}

// RecordCareerRanking counts one served ranking and its size.
func RecordCareerRanking(career string, simulated bool, size int) {
	sim := "false"
	if simulated {
		sim = "true"
	}
	globalManager.careerRankings.WithLabelValues(career, sim).Inc()
	globalManager.careerRankingSize.Observe(float64(size))
}

// UpdateRepositoryRecords sets the row count of kind held by store.
func UpdateRepositoryRecords(store, kind string, n int) {
	globalManager.repositoryRecords.WithLabelValues(store, kind).Set(float64(n))
}

// RecordRepositoryQueryLatency records the latency of one repository operation.
func RecordRepositoryQueryLatency(store, op string, ms float64) {
	globalManager.repositoryQueryLatency.WithLabelValues(store, op).Observe(ms)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error by component and type.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
