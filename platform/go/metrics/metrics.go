// Package metrics owns the Prometheus collectors of the events API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "events"

// Registry groups every collector the API exports. It satisfies the events service
// Metrics interface.
type Registry struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	slugCollisions      prometheus.Counter
	duplicateKeyRetries prometheus.Counter
	bookingsCreated     prometheus.Counter
	notificationsFailed *prometheus.CounterVec
}

// New registers the collectors on a private registry, plus the Go runtime and process
// collectors.
func New() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "code"})
	r.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	r.slugCollisions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slug_collisions_total",
		Help:      "Slug candidates found taken during uniqueness resolution",
	})
	r.duplicateKeyRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slug_duplicate_key_retries_total",
		Help:      "Writes retried after the slug unique constraint rejected them",
	})
	r.bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Bookings committed",
	})
	r.notificationsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Domain notifications that could not be published, by routing key",
	}, []string{"routing_key"})

	r.registry.MustRegister(
		r.httpRequests, r.httpDuration,
		r.slugCollisions, r.duplicateKeyRetries,
		r.bookingsCreated, r.notificationsFailed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Registry) SlugCollision()     { r.slugCollisions.Inc() }
func (r *Registry) DuplicateKeyRetry() { r.duplicateKeyRetries.Inc() }
func (r *Registry) BookingCreated()    { r.bookingsCreated.Inc() }

// NotificationFailed counts a publish that the broker rejected.
func (r *Registry) NotificationFailed(routingKey string) {
	r.notificationsFailed.WithLabelValues(routingKey).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Middleware records request counts and latency labelled by chi route pattern, so
// /api/v1/events/{slug} is one series regardless of slug.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		r.httpRequests.WithLabelValues(route, req.Method, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
	})
}
