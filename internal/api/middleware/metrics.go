package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	datasetRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_dataset_refreshes_total",
			Help: "Total number of dataset refresh operations",
		},
		[]string{"status"},
	)

	snapshotGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_snapshot_generation",
			Help: "Generation number of the currently served snapshot",
		},
	)
)

// statusWriter captures the response status for instrumentation.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Metrics records a Prometheus counter and latency histogram per request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(sw.status)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)
	})
}

// RecordRefresh tracks the outcome of a dataset refresh.
func RecordRefresh(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	datasetRefreshes.WithLabelValues(status).Inc()
}

// SetSnapshotGeneration publishes the generation of the installed snapshot.
func SetSnapshotGeneration(generation uint64) {
	snapshotGeneration.Set(float64(generation))
}
