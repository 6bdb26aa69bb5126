package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"lawgan/internal/handler/http/pathutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration tracks request latency with buckets tuned for
	// API response times, from fast local reads to slow image uploads.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// Business metrics
	contentMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_mutations_total",
			Help: "Total number of content mutations by resource and action",
		},
		[]string{"resource", "action"},
	)

	adminSignInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_sign_ins_total",
			Help: "Total number of admin sign-in attempts",
		},
		[]string{"status"},
	)
)

// metricsResponseWriter wraps http.ResponseWriter to record status code and response size.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *metricsResponseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsMiddleware records HTTP request metrics including duration, size,
// and status codes. Paths are normalized so ID and slug segments do not
// explode label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(r.ContentLength))
		}

		rw := &metricsResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.size))

		if rw.statusCode >= 200 && rw.statusCode < 300 {
			recordMutationFromRequest(r)
		}
	})
}

// recordMutationFromRequest counts successful create, update, and delete
// operations per content resource, keyed by the first path segment.
func recordMutationFromRequest(r *http.Request) {
	var action string
	switch r.Method {
	case http.MethodPost:
		action = "create"
	case http.MethodPatch, http.MethodPut:
		action = "update"
	case http.MethodDelete:
		action = "delete"
	default:
		return
	}

	seg := strings.TrimPrefix(r.URL.Path, "/")
	if idx := strings.IndexByte(seg, '/'); idx != -1 {
		seg = seg[:idx]
	}
	if seg == "" || seg == "admin" {
		return
	}
	RecordContentMutation(seg, action)
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordContentMutation records a successful create, update, or delete on a
// content resource.
func RecordContentMutation(resource, action string) {
	contentMutationsTotal.WithLabelValues(resource, action).Inc()
}

// RecordAdminSignIn records the outcome of an admin sign-in attempt.
func RecordAdminSignIn(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	adminSignInsTotal.WithLabelValues(status).Inc()
}
