package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ComparisonCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_comparison_cache_hits_total",
			Help: "Total number of comparisons served from the session cache.",
		},
	)
	ComparisonSavedLoads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_comparison_saved_loads_total",
			Help: "Total number of comparisons loaded from the store.",
		},
	)
	ComparisonComputes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_comparison_computes_total",
			Help: "Total number of successfully computed comparisons.",
		},
	)
	ComparisonComputeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_comparison_compute_failures_total",
			Help: "Total number of failed comparison computations.",
		},
	)
	ComparisonComputeDuration = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name:       "fit_comparison_compute_duration_seconds",
			Help:       "Duration of each comparison computation in seconds.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)
	FeedbackSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_feedback_submissions_total",
			Help: "Total number of submitted interview feedbacks.",
		},
		[]string{"interview_type"},
	)
	CleanedComparisonsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_comparisons_cleaned_total",
			Help: "Total number of saved comparisons removed as expired.",
		},
	)
)

func Register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ComparisonCacheHits)
	prometheus.MustRegister(ComparisonSavedLoads)
	prometheus.MustRegister(ComparisonComputes)
	prometheus.MustRegister(ComparisonComputeFailures)
	prometheus.MustRegister(ComparisonComputeDuration)
	prometheus.MustRegister(FeedbackSubmissions)
	prometheus.MustRegister(CleanedComparisonsCounter)
}

func StartMetricsServer(address string) {
	Register()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, nil))
	}()
}
