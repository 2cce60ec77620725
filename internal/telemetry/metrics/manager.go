package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandlerPanics       *prometheus.CounterVec
	CounterRateLimitedRequests prometheus.Counter
	CounterSetsIngested        prometheus.Counter
	CounterReadingsIngested    prometheus.Counter
	CounterLateSetReaggregated prometheus.Counter
	CounterAggregates          prometheus.Counter
	CounterDirectives          *prometheus.CounterVec
	CounterDuplicateDirectives prometheus.Counter
	CounterDeloads             *prometheus.CounterVec
	CounterDriftWarnings       prometheus.Counter
	CounterNutritionNudges     *prometheus.CounterVec
	CounterSafetyFloorApplied  prometheus.Counter
	CounterPipelineFailures    prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistPipelineDuration     prometheus.Histogram
	HistReadiness            prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("coach", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("coach", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterDirectives := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "weekly_directives",
		Help:      "Weekly directives emitted, by the rule flag that fired",
	}, []string{"flag"})
	counterDeloads := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "deload_weeks",
		Help:      "Deload weeks entered, by plan goal",
	}, []string{"goal"})
	counterNutritionNudges := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "nutrition_nudges",
		Help:      "Weekly kcal nudges, by direction (up, down, hold)",
	}, []string{"direction"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histPipelineDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "weekly_pipeline_duration_seconds",
		Help:      "Duration of a single user's weekly pipeline run in seconds",
		Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})
	histReadiness := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "readiness_score",
		Help:      "Distribution of computed readiness scores",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})
	counterHandlerPanics := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handler_panics",
		Help:      "API handler panics recovered, per route",
	}, []string{"route"})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandlerPanics:       counterHandlerPanics,
		CounterRateLimitedRequests: counter("rate_limited_requests", "The total number of rate limited requests"),
		CounterSetsIngested:        counter("sets_ingested", "Workout sets accepted by ingest"),
		CounterReadingsIngested:    counter("readings_ingested", "Daily physiological readings accepted by ingest"),
		CounterLateSetReaggregated: counter("late_set_reaggregations", "Closed weeks re-aggregated because of late sets"),
		CounterAggregates:          counter("weekly_aggregates", "Weekly aggregates computed"),
		CounterDirectives:          counterDirectives,
		CounterDuplicateDirectives: counter("duplicate_directives", "Directive emissions skipped because one already exists for the week"),
		CounterDeloads:             counterDeloads,
		CounterDriftWarnings:       counter("calibration_drift_warnings", "RIR calibration drift warnings"),
		CounterNutritionNudges:     counterNutritionNudges,
		CounterSafetyFloorApplied:  counter("kcal_safety_floor_applied", "Nutrition weeks clamped to the kcal safety floor"),
		CounterPipelineFailures:    counter("weekly_pipeline_failures", "Failed per-user weekly pipeline runs"),
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistPipelineDuration:       histPipelineDuration,
		HistReadiness:              histReadiness,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
