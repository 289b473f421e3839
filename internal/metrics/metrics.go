package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Recommendation metrics
	Recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommendations_total",
			Help: "Total number of recommendations computed",
		},
		[]string{"action"}, // BUY|SELL|HOLD
	)

	RecommendationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommendation_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"reason"}, // insufficient_data|invalid_input|unknown_symbol|internal
	)

	ComputeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_compute_duration_seconds",
			Help:    "Time spent computing one recommendation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// Scheduler metrics
	ScanRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_scan_runs_total",
			Help: "Total number of watchlist scans",
		},
		[]string{"status"}, // success|error
	)

	ScanLastRun = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_scan_last_run_timestamp",
			Help: "Unix timestamp of the last watchlist scan",
		},
	)

	// HTTP metrics
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)

var once sync.Once

// Init registers all collectors with the default registry. Safe to call more
// than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(Recommendations)
		prometheus.MustRegister(RecommendationErrors)
		prometheus.MustRegister(ComputeDuration)
		prometheus.MustRegister(ScanRuns)
		prometheus.MustRegister(ScanLastRun)
		prometheus.MustRegister(HTTPRequests)
	})
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRecommendation records a successful computation.
func RecordRecommendation(action string, duration time.Duration) {
	Recommendations.WithLabelValues(action).Inc()
	ComputeDuration.Observe(duration.Seconds())
}

// RecordError records a failed request by reason.
func RecordError(reason string) {
	RecommendationErrors.WithLabelValues(reason).Inc()
}

// RecordScan records a watchlist scan
func RecordScan(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ScanRuns.WithLabelValues(status).Inc()
	ScanLastRun.SetToCurrentTime()
}

// RecordHTTPRequest records a served request.
func RecordHTTPRequest(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
