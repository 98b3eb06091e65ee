package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	bookingshandler "github.com/zenGate-Global/palmyra-events/domains/bookings/be/handler"
	bookingsrepo "github.com/zenGate-Global/palmyra-events/domains/bookings/be/repo"
	bookingsservice "github.com/zenGate-Global/palmyra-events/domains/bookings/be/service"
	eventshandler "github.com/zenGate-Global/palmyra-events/domains/events/be/handler"
	eventsrepo "github.com/zenGate-Global/palmyra-events/domains/events/be/repo"
	eventsservice "github.com/zenGate-Global/palmyra-events/domains/events/be/service"
	bookingsapi "github.com/zenGate-Global/palmyra-events/generated/go/bookings"
	eventsapi "github.com/zenGate-Global/palmyra-events/generated/go/events"
	"github.com/zenGate-Global/palmyra-events/platform/go/gcp"
	platformlogging "github.com/zenGate-Global/palmyra-events/platform/go/logging"
	"github.com/zenGate-Global/palmyra-events/platform/go/messaging"
	"github.com/zenGate-Global/palmyra-events/platform/go/metrics"
	"github.com/zenGate-Global/palmyra-events/platform/go/persistence"
	"github.com/zenGate-Global/palmyra-events/platform/go/storage"
)

// swaggerLoaders maps public contract names to their embedded documents.
var swaggerLoaders = map[string]func() (*openapi3.T, error){
	"events":   eventsapi.GetSwagger,
	"bookings": bookingsapi.GetSwagger,
}

type config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	MemoryStore     bool          `env:"MEMORY_STORE" envDefault:"false"` // keep everything in process; local runs only
	ApplySchema     bool          `env:"APPLY_SCHEMA" envDefault:"false"`
	AuthProvider    string        `env:"AUTH_PROVIDER" envDefault:"firebase"` // firebase | dev
	ProjectID       string        `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	StorageBackend       string `env:"STORAGE_BACKEND" envDefault:"local"`             // gcs | local | none
	StorageBucket        string `env:"STORAGE_BUCKET"`                                 // required when STORAGE_BACKEND=gcs
	StoragePrefix        string `env:"STORAGE_PREFIX"`                                 // optional key prefix inside the bucket or directory
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"./.data/storage"` // used when STORAGE_BACKEND=local
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:3000/media"`

	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"events"`

	SlugWriteAttempts  int      `env:"SLUG_WRITE_ATTEMPTS" envDefault:"3"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "events-api",
		Level:     cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	gcpConfig := gcp.Config{ProjectID: cfg.ProjectID, CredentialsFile: cfg.CredentialsFile}
	registry := metrics.New()

	var checks []readinessCheck

	var (
		eventsRepository   eventsservice.Repository
		bookingsRepository bookingsservice.Repository
	)
	switch {
	case cfg.MemoryStore:
		logger.Warn("using in-memory store; data is lost on restart")
		eventsRepository = eventsrepo.NewMemoryRepository()
		bookingsRepository = bookingsrepo.NewMemoryRepository()
	case cfg.DatabaseURL == "":
		logger.Fatal("DATABASE_URL is required unless MEMORY_STORE=true")
	default:
		pool, err := persistence.NewPool(ctx, persistence.PoolConfig{ConnString: cfg.DatabaseURL})
		if err != nil {
			logger.Fatal("init postgres pool", zap.Error(err))
		}
		defer persistence.ClosePool(pool)

		if cfg.ApplySchema {
			if err := persistence.ApplySchema(ctx, pool); err != nil {
				logger.Fatal("apply schema", zap.Error(err))
			}
		}

		eventStore, err := persistence.NewEventStore(ctx, pool)
		if err != nil {
			logger.Fatal("init event store", zap.Error(err))
		}
		bookingStore, err := persistence.NewBookingStore(ctx, pool)
		if err != nil {
			logger.Fatal("init booking store", zap.Error(err))
		}

		eventsRepository = eventsrepo.NewPostgresRepository(eventStore)
		bookingsRepository = bookingsrepo.NewPostgresRepository(bookingStore)
		checks = append(checks, readinessCheck{name: "postgres", check: pool.Ping})
	}

	var (
		blobs storage.BlobStore
		media http.Handler
	)
	switch cfg.StorageBackend {
	case "gcs":
		if cfg.StorageBucket == "" {
			logger.Fatal("storage bucket required when STORAGE_BACKEND=gcs")
		}
		gcsClient, err := gcp.NewStorageClient(ctx, gcpConfig)
		if err != nil {
			logger.Fatal("init gcs client", zap.Error(err))
		}
		defer gcsClient.Close()
		blobs = storage.NewGCSStore(gcsClient, cfg.StorageBucket, cfg.StoragePrefix, "")
	case "local":
		if strings.TrimSpace(cfg.StorageLocalDir) == "" {
			logger.Fatal("storage local dir required when STORAGE_BACKEND=local")
		}
		local := storage.NewLocalStore(cfg.StorageLocalDir, cfg.StoragePrefix, cfg.StoragePublicBaseURL)
		blobs = local
		media = http.StripPrefix("/media/", http.FileServer(http.Dir(local.Dir())))
	case "none":
		logger.Warn("banner storage disabled")
	default:
		logger.Fatal("invalid STORAGE_BACKEND (use gcs, local or none)", zap.String("backend", cfg.StorageBackend))
	}
	if blobs != nil {
		checks = append(checks, readinessCheck{name: "storage", check: blobs.Check})
	}

	var publisher eventsservice.Publisher = messaging.Nop{}
	if cfg.AMQPURL != "" {
		producer := messaging.NewProducer(cfg.AMQPURL, cfg.AMQPExchange, logger)
		if err := producer.Open(); err != nil {
			logger.Fatal("connect to amqp broker", zap.Error(err))
		}
		defer func() {
			_ = producer.Close()
		}()
		publisher = producer
	}

	eventsService := eventsservice.New(eventsRepository, eventsservice.Deps{
		Logger:        logger,
		Publisher:     publisher,
		Metrics:       registry,
		WriteAttempts: cfg.SlugWriteAttempts,
	})
	bookingsService := bookingsservice.New(bookingsRepository, eventsService, bookingsservice.Deps{
		Logger:    logger,
		Publisher: publisher,
		Metrics:   registry,
	})

	router, err := newRouter(routerDeps{
		logger:         logger,
		events:         eventshandler.New(eventsService, blobs, logger),
		bookings:       bookingshandler.New(bookingsService, logger),
		metrics:        registry,
		loaders:        swaggerLoaders,
		verify:         buildVerifier(ctx, cfg, gcpConfig, logger),
		readiness:      checks,
		media:          media,
		corsOrigins:    cfg.CORSAllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		logger.Info("starting api server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
