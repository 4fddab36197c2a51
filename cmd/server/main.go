package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/config"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/database"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/events"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/logging"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/all"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/ratelimit"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/routes"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/services"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/storage"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	db := database.DB

	if err := database.MigrateShared(db); err != nil {
		slog.Error("shared migration failed", "error", err)
		os.Exit(1)
	}

	mods := all.Modules()
	for _, m := range mods {
		if models := m.Models(); len(models) > 0 {
			if err := database.MigrateModels(db, models); err != nil {
				slog.Error("module migration failed", "module", m.ID(), "error", err)
				os.Exit(1)
			}
			slog.Info("module migrated", "module", m.ID(), "models", len(models))
		}
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db, 5*time.Second)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout),
		pgLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Submission delivery: Kafka when brokers are configured, the log otherwise.
	var publisher events.Publisher = events.NewLogPublisher(nil)
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaPublishTimeout)
		if err != nil {
			slog.Error("kafka publisher init failed", "error", err)
			os.Exit(1)
		}
		publisher = kp
		slog.Info("publishing events to kafka", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	}

	store, err := storage.NewClient(storage.Config{
		Endpoint:        cfg.StorageEndpoint,
		AccessKeyID:     cfg.StorageAccessKey,
		SecretAccessKey: cfg.StorageSecretKey,
		Bucket:          cfg.StorageBucket,
		UseSSL:          cfg.StorageUseSSL,
		PublicURL:       cfg.StoragePublicURL,
	})
	if err != nil {
		slog.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	if store.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.EnsureBucket(ctx); err != nil {
			slog.Error("storage bucket check failed", "bucket", cfg.StorageBucket, "error", err)
		}
		cancel()
	} else {
		slog.Warn("STORAGE_ENDPOINT not set, uploads are disabled")
	}

	// Limiter counters go to Redis when configured so every instance shares them.
	var limiterStorage fiber.Storage
	redisStorage, err := ratelimit.NewRedisStorage(cfg.RedisURL, "ratelimit:")
	if err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisStorage != nil {
		limiterStorage = redisStorage
	}

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		slog.Error("authz init failed", "error", err)
		os.Exit(1)
	}
	appMetrics := metrics.New()

	// Services
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)

	// Handlers
	h := routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService, userService),
		Health: handlers.NewHealthHandler(db, store),
		Users:  handlers.NewUserHandler(userService),
		Upload: handlers.NewUploadHandler(store, cfg.UploadMaxBytes, appMetrics),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.UploadMaxBytes) + 1024*1024,
		ErrorHandler: routes.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(appMetrics.Middleware())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	deps := &modules.Deps{
		DB:      db,
		Config:  cfg,
		Events:  publisher,
		Metrics: appMetrics,
		Authz:   enforcer,
	}
	routes.Setup(app, deps, h, mods, limiterStorage)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	publisher.Close()
	if redisStorage != nil {
		if err := redisStorage.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
