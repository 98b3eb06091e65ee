package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	bookingshandler "github.com/zenGate-Global/palmyra-events/domains/bookings/be/handler"
	eventshandler "github.com/zenGate-Global/palmyra-events/domains/events/be/handler"
	bookingsapi "github.com/zenGate-Global/palmyra-events/generated/go/bookings"
	eventsapi "github.com/zenGate-Global/palmyra-events/generated/go/events"
	platformauth "github.com/zenGate-Global/palmyra-events/platform/go/auth"
	platformlogging "github.com/zenGate-Global/palmyra-events/platform/go/logging"
	"github.com/zenGate-Global/palmyra-events/platform/go/metrics"
	platformmiddleware "github.com/zenGate-Global/palmyra-events/platform/go/middleware"
	"github.com/zenGate-Global/palmyra-events/platform/go/problem"
)

type readinessCheck struct {
	name  string
	check func(ctx context.Context) error
}

type routerDeps struct {
	logger         *zap.Logger
	events         *eventshandler.Handler
	bookings       *bookingshandler.Handler
	metrics        *metrics.Registry
	loaders        map[string]func() (*openapi3.T, error)
	verify         platformauth.VerifyFunc
	readiness      []readinessCheck
	media          http.Handler
	corsOrigins    []string
	requestTimeout time.Duration
}

func newRouter(deps routerDeps) (http.Handler, error) {
	eventsValidator, err := newSpecValidator(deps, "events")
	if err != nil {
		return nil, err
	}
	bookingsValidator, err := newSpecValidator(deps, "bookings")
	if err != nil {
		return nil, err
	}

	rootRouter := chi.NewRouter()

	rootRouter.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		chimw.Timeout(deps.requestTimeout),
		platformmiddleware.CORS(deps.corsOrigins),
	)
	rootRouter.Use(platformlogging.RequestLogger(deps.logger))
	rootRouter.Use(deps.metrics.Middleware)

	rootRouter.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rootRouter.Get("/readyz", readyHandler(deps.readiness, deps.logger))
	rootRouter.Handle("/metrics", deps.metrics.Handler())

	// ---- Swagger UI + OpenAPI JSON (public) ----
	registerDocsRoutes(rootRouter, deps.loaders, deps.logger)

	if deps.media != nil {
		rootRouter.Handle("/media/*", deps.media)
	}

	// Contract paths carry the /api/v1 prefix, so the generated routes attach at the root.
	rootRouter.Group(func(apiRouter chi.Router) {
		apiRouter.Use(platformauth.JWT(deps.verify, platformauth.DefaultCredentialExtractor))
		apiRouter.Use(platformmiddleware.RequestTrace)

		apiRouter.Group(func(r chi.Router) {
			r.Use(eventsValidator)
			_ = eventsapi.HandlerWithOptions(
				eventsapi.NewStrictHandler(deps.events, nil),
				eventsapi.ChiServerOptions{
					BaseRouter:       r,
					Middlewares:      []eventsapi.MiddlewareFunc{platformauth.RequireScopes(eventsapi.BearerAuthScopes)},
					ErrorHandlerFunc: parameterErrorHandler,
				},
			)
		})

		apiRouter.Group(func(r chi.Router) {
			r.Use(bookingsValidator)
			_ = bookingsapi.HandlerWithOptions(
				bookingsapi.NewStrictHandler(deps.bookings, nil),
				bookingsapi.ChiServerOptions{
					BaseRouter:       r,
					ErrorHandlerFunc: parameterErrorHandler,
				},
			)
		})

		// Binary payloads stay outside the JSON contracts.
		apiRouter.Get("/api/v1/events/{slug}/calendar.ics", deps.events.Calendar)
		apiRouter.With(platformauth.RequireRole(platformauth.RoleAdmin)).Post("/api/v1/events/{slug}/image", deps.events.UploadImage)
	})

	return rootRouter, nil
}

// newSpecValidator loads the named contract and builds validator middleware for its route group.
func newSpecValidator(deps routerDeps, name string) (func(http.Handler) http.Handler, error) {
	loaderFn, ok := deps.loaders[name]
	if !ok {
		return nil, fmt.Errorf("no contract loader for %q", name)
	}

	spec, err := loaderFn()
	if err != nil {
		return nil, fmt.Errorf("load %s contract: %w", name, err)
	}

	return platformmiddleware.OpenAPIValidator(spec, deps.logger), nil
}

// parameterErrorHandler renders path binding failures from the generated wrappers.
func parameterErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	problem.Write(w, problem.New(http.StatusBadRequest, problem.TypeValidation, "Invalid request", err.Error(), nil))
}

func readyHandler(checks []readinessCheck, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, c := range checks {
			if err := c.check(r.Context()); err != nil {
				platformlogging.FromRequest(r, logger).Warn("readiness check failed", zap.String("check", c.name), zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
