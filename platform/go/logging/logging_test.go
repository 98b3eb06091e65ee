package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerEmitsGCPSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Component: "events-api", Level: "debug", Output: &buf})
	require.NoError(t, err)

	logger.Warn("slug collision", zap.String("slug", "launch-party"))
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "WARNING", entry["severity"])
	require.Equal(t, "events-api", entry["component"])
	require.Equal(t, "slug collision", entry["message"])
	require.Equal(t, "launch-party", entry["slug"])
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(Config{Level: "loud"})
	require.Error(t, err)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogger(zap.New(core)))
	router.Get("/api/v1/events/{slug}", func(w http.ResponseWriter, r *http.Request) {
		logger, ok := FromContext(r.Context())
		require.True(t, ok)
		logger.Info("lookup")
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "lookup", entries[0].Message)
	require.NotEmpty(t, entries[0].ContextMap()["request_id"])

	completed := entries[1]
	require.Equal(t, zapcore.WarnLevel, completed.Level)
	require.Equal(t, "/api/v1/events/{slug}", completed.ContextMap()["route"])
	require.EqualValues(t, http.StatusNotFound, completed.ContextMap()["status"])
}
