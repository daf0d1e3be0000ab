// Package main is the entry point for the portfolio service.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/http"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/memory"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/sqlite"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/websocket"
	"github.com/jsamuelsen/portfolio-service/internal/app"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
	"github.com/jsamuelsen/portfolio-service/internal/platform/telemetry"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("storage", cfg.Storage.Driver),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	metrics := telemetry.NewMetrics()
	healthRegistry := ports.NewHealthRegistry()

	mirror, db, err := openMirror(cfg.Storage)
	if err != nil {
		return err
	}

	if db != nil {
		defer db.Close()

		if err := healthRegistry.Register(sqlite.NewHealthChecker(db)); err != nil {
			return fmt.Errorf("registering sqlite health check: %w", err)
		}
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Todo.BaseURL,
		ServiceName: cfg.Services.Todo.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	todoClient := acl.NewTodoClient(acl.TodoClientConfig{
		Client: httpClient,
		Logger: logger,
	})

	// The todo API being down only degrades the service; the mirror covers it.
	if err := healthRegistry.RegisterOptional(todoClient); err != nil {
		return fmt.Errorf("registering todo client health check: %w", err)
	}

	hub := websocket.NewHub(websocket.HubConfig{
		Logger:    logger,
		OnClients: metrics.SetClients,
	})

	var seed []domain.Quote
	if cfg.Quotes.Seed {
		seed = domain.SeedQuotes()
	}

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  memory.NewQuoteStore(seed),
		Events: hub,
		Logger: logger,
	})

	todoService := app.NewTodoService(app.TodoServiceConfig{
		Remote:          todoClient,
		Mirror:          mirror,
		Events:          hub,
		Logger:          logger,
		SyncConcurrency: cfg.Todos.SyncConcurrency,
		OnFallback:      metrics.ObserveFallback,
		OnSync:          metrics.ObserveSync,
		OnReorder:       logReorder(logger),
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	server := http.New(&cfg.Server, cfg.CORS, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:         logger,
		ServiceName:    cfg.Telemetry.ServiceName,
		Tracing:        telProvider.Enabled(),
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, buildInfo, metrics.Handler()),
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
		TodoHandler:    handlers.NewTodoHandler(todoService),
		Hub:            hub,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Timeout:        cfg.Server.RequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, hub, serverErr, cfg.Server.ShutdownTimeout)
}

// logReorder records session-only reorders; nothing else consumes them.
func logReorder(logger *slog.Logger) func([]domain.Todo) {
	return func(todos []domain.Todo) {
		logger.Debug("todo list reordered", slog.Int("count", len(todos)))
	}
}

// openMirror picks the todo mirror backend. db is nil for the memory driver.
func openMirror(cfg config.StorageConfig) (ports.TodoMirror, *sql.DB, error) {
	if cfg.Driver == config.StorageDriverMemory {
		return memory.NewTodoMirror(), nil, nil
	}

	db, err := sqlite.Open(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening todo mirror: %w", err)
	}

	return sqlite.NewTodoMirror(db), db, nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then drains HTTP requests and disconnects websocket pages.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	hub *websocket.Hub,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		hub.Close()
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Hijacked websocket connections outlive http.Server.Shutdown otherwise.
	hub.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
