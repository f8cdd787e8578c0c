package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics holds request counters and latency histograms labelled by
// module, matched route pattern, and status code.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers request collectors with the given registerer.
func NewHTTPMetrics(reg prometheus.Registerer, namespace string) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"module", "pattern", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"module", "pattern"}),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// Metrics returns middleware that records request metrics under the module label.
// The pattern label is the ServeMux pattern that matched, or "unmatched".
func Metrics(m *HTTPMetrics, module string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			pattern := r.Pattern
			if pattern == "" {
				pattern = "unmatched"
			}

			m.requests.WithLabelValues(module, pattern, strconv.Itoa(rec.status)).Inc()
			m.duration.WithLabelValues(module, pattern).Observe(time.Since(start).Seconds())
		})
	}
}
