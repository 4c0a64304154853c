package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/itemregistry/docs/swagger"
	"github.com/ghuser/itemregistry/pkg/app"
	"github.com/ghuser/itemregistry/pkg/config"
	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/events"
	"github.com/ghuser/itemregistry/pkg/httpx"
	"github.com/ghuser/itemregistry/pkg/logger"
	"github.com/ghuser/itemregistry/pkg/telemetry"
	itemApi "github.com/ghuser/itemregistry/services/item/application/api"
	itemServices "github.com/ghuser/itemregistry/services/item/application/services"
	"github.com/ghuser/itemregistry/services/item/infrastructure/messaging"
)

// @title					Item Registry API
// @version				1.0
// @description			CRUD API over an in-memory item registry.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	tel, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

	// Crash reporting is optional: log and continue on failure.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	errhttp.ExposeInternalErrors(cfg.Environment != config.EnvProduction)

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	if err := messaging.RegisterAuditSubscribers(ctx, eventBus, log); err != nil {
		log.Error("failed to register audit subscribers", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Meter:    tel.Meter(cfg.ServiceName),
	}
	svcs := itemServices.New(appConfig)

	if cfg.SeedFixtures {
		if err := svcs.Item.SeedFixtures(ctx, itemServices.DefaultFixtures); err != nil {
			log.Error("failed to seed fixtures", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("registry seeded", "items", len(itemServices.DefaultFixtures))
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(
		httpx.HealthCheck{Name: "registry", Checker: svcs.Item},
		httpx.HealthCheck{Name: "event_bus", Checker: eventBus},
	))
	r.Get("/metrics", tel.MetricsHandler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, svcs)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, svcs *itemServices.Services) {
	itemApi.ItemRoutes(r, svcs)
}
