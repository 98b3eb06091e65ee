package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	reg := New()

	router := chi.NewRouter()
	router.Use(reg.Middleware)
	router.Get("/api/v1/events/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, slug := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/events/"+slug, nil))
	}

	got := testutil.ToFloat64(reg.httpRequests.WithLabelValues("/api/v1/events/{slug}", http.MethodGet, "404"))
	require.Equal(t, float64(2), got)
}

func TestDomainCounters(t *testing.T) {
	reg := New()
	reg.SlugCollision()
	reg.SlugCollision()
	reg.DuplicateKeyRetry()
	reg.BookingCreated()
	reg.NotificationFailed("event.created")

	require.Equal(t, float64(2), testutil.ToFloat64(reg.slugCollisions))
	require.Equal(t, float64(1), testutil.ToFloat64(reg.duplicateKeyRetries))
	require.Equal(t, float64(1), testutil.ToFloat64(reg.bookingsCreated))

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "events_slug_collisions_total 2"))
	require.Contains(t, rec.Body.String(), `events_notifications_failed_total{routing_key="event.created"} 1`)
}
