package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	statusCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 3xx, 4xx, 5xx)",
		},
		[]string{"service", "category"},
	)

	registerMetricsOnce sync.Once
)

// HTTPMetrics records request counts and latency per route.
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics creates the HTTP metrics collector. Collectors are package
// level and registered once, so constructing several routers (tests) is safe.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(requestCounter, requestDuration, statusCategoryCounter)
	})
	return &HTTPMetrics{ServiceName: serviceName}
}

func category(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

// Middleware records metrics for every request passing through.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		status := strconv.Itoa(sw.status)
		requestCounter.WithLabelValues(m.ServiceName, r.Method, r.URL.Path, status).Inc()
		requestDuration.WithLabelValues(m.ServiceName, r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		if cat := category(sw.status); cat != "" {
			statusCategoryCounter.WithLabelValues(m.ServiceName, cat).Inc()
		}
	})
}
