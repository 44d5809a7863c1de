// Package metrics provides Prometheus instrumentation for the hedge API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Computations counts hedge calculations by outcome: ok, invalid, out_of_bounds.
	Computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hedger_computations_total",
		Help: "Total hedge computations by outcome",
	}, []string{"outcome"})

	// LotsNeeded observes the hedge size of successful computations.
	LotsNeeded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hedger_lots_needed",
		Help:    "Futures lots sized per successful computation",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	// JournalErrors counts scenarios that failed to persist.
	JournalErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hedger_journal_errors_total",
		Help: "Scenarios that could not be written to the journal",
	})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hedger_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hedger_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := routePattern(r)
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// routePattern labels a request by its chi route ("/api/v1/hedge") rather
// than the raw path, so unmatched scans can't grow label cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
