//go:build integration

package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients/acl"
	apihttp "github.com/jsamuelsen/portfolio-service/internal/adapters/http"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/memory"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/websocket"
	"github.com/jsamuelsen/portfolio-service/internal/app"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen/portfolio-service/internal/platform/telemetry"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// harness runs the whole service in-process against a fake todo API.
type harness struct {
	api     *fakeTodoAPI
	hub     *websocket.Hub
	mirror  ports.TodoMirror
	metrics *telemetry.Metrics
	server  *httptest.Server
}

func newHarness(mirror ports.TodoMirror) (*harness, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := newFakeTodoAPI()

	client, err := clients.New(&clients.Config{
		BaseURL:     api.URL(),
		ServiceName: "todo-api",
		Timeout:     2 * time.Second,
		Retry:       config.RetryConfig{MaxAttempts: 1},
		// A high threshold keeps the breaker closed while scenarios flip
		// the fake between up and down.
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   1000,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Logger: logger,
	})
	if err != nil {
		api.Close()
		return nil, fmt.Errorf("creating todo client: %w", err)
	}

	todoClient := acl.NewTodoClient(acl.TodoClientConfig{Client: client, Logger: logger})

	registry := ports.NewHealthRegistry()
	if err := registry.RegisterOptional(todoClient); err != nil {
		api.Close()
		return nil, err
	}

	metrics := telemetry.NewMetrics()
	hub := websocket.NewHub(websocket.HubConfig{Logger: logger, OnClients: metrics.SetClients})

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  memory.NewQuoteStore(domain.SeedQuotes()),
		Events: hub,
		Logger: logger,
	})

	todos := app.NewTodoService(app.TodoServiceConfig{
		Remote:     todoClient,
		Mirror:     mirror,
		Events:     hub,
		Logger:     logger,
		OnFallback: metrics.ObserveFallback,
		OnSync:     metrics.ObserveSync,
	})

	engine := gin.New()
	apihttp.SetupRouter(engine, apihttp.RouterConfig{
		Logger:         logger,
		ServiceName:    "portfolio-service",
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "never"), metrics.Handler()),
		QuoteHandler:   handlers.NewQuoteHandler(quotes),
		TodoHandler:    handlers.NewTodoHandler(todos),
		Hub:            hub,
		AllowedOrigins: []string{"*"},
		Timeout:        5 * time.Second,
	})

	return &harness{
		api:     api,
		hub:     hub,
		mirror:  mirror,
		metrics: metrics,
		server:  httptest.NewServer(engine),
	}, nil
}

func (h *harness) URL() string { return h.server.URL }

func (h *harness) Close() {
	h.hub.Close()
	h.server.Close()
	h.api.Close()
}
