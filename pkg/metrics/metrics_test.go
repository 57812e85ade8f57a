package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then collectors are registered under the default namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.recomputeTotal.WithLabelValues(OutcomeCached).Inc()
				n, err := testutil.GatherAndCount(registry, "studytrack_analytics_correlation_recompute_total")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("engine"),
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then names and labels follow the options", func() {
				manager.correlationSetSize.Set(36)
				expected := `
# HELP test_engine_correlation_records Number of records in the current correlation set
# TYPE test_engine_correlation_records gauge
test_engine_correlation_records{env="test"} 36
`
				err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "test_engine_correlation_records")
				So(err, ShouldBeNil)
			})
		})

		Convey("When empty options are passed", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithSubsystem(""), WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "studytrack")
				So(manager.subsystem, ShouldEqual, "analytics")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Recompute outcomes are counted per label", func() {
			before := testutil.ToFloat64(globalManager.recomputeTotal.WithLabelValues(OutcomeRecomputed))
			RecordRecompute(OutcomeRecomputed)
			RecordRecompute(OutcomeRecomputed)
			So(testutil.ToFloat64(globalManager.recomputeTotal.WithLabelValues(OutcomeRecomputed)), ShouldEqual, before+2)
		})

		Convey("Gauges take the last value", func() {
			UpdateCorrelationSetSize(12)
			UpdateCorrelationSetSize(30)
			So(testutil.ToFloat64(globalManager.correlationSetSize), ShouldEqual, 30)

			UpdatePopulationSize(40)
			So(testutil.ToFloat64(globalManager.populationSize), ShouldEqual, 40)

			UpdateEligibleRows(38)
			So(testutil.ToFloat64(globalManager.eligibleRows), ShouldEqual, 38)

			UpdateRepositoryRecords("memory", "assessments", 7)
			So(testutil.ToFloat64(globalManager.repositoryRecords.WithLabelValues("memory", "assessments")), ShouldEqual, 7)
		})

		Convey("Counters accumulate", func() {
			before := testutil.ToFloat64(globalManager.recommendationsGenerated)
			RecordRecommendationsGenerated(3)
			So(testutil.ToFloat64(globalManager.recommendationsGenerated), ShouldEqual, before+3)

			beforeFail := testutil.ToFloat64(globalManager.predictorFailures)
			RecordPredictorFailure()
			So(testutil.ToFloat64(globalManager.predictorFailures), ShouldEqual, beforeFail+1)
		})

		Convey("Labelled recorders do not panic", func() {
			So(func() {
				RecordRecomputeDuration(12.5)
				RecordNormalizedExports(4)
				RecordCorrelationQuery()
				RecordAssessmentSubmitted()
				RecordRecommendationStatus("completed")
				RecordCareerRanking("software-developer", true, 3)
				RecordRepositoryQueryLatency("memory", "correlations", 0.2)
				RecordHTTPRequest("/healthz", "GET", "200")
				RecordHTTPRequestDuration("/healthz", "GET", "200", 1.2)
				RecordErrorByComponent("store", "replace_all")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
		})

		Convey("GetRegistry exposes the custom registry", func() {
			So(GetRegistry(), ShouldEqual, customRegistry)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
