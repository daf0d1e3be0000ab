package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/memory"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/websocket"
	"github.com/jsamuelsen/portfolio-service/internal/app"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/mocks"
	"github.com/jsamuelsen/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		port         int
		expectedAddr string
	}{
		{"localhost with port 8080", "localhost", 8080, "localhost:8080"},
		{"all interfaces", "0.0.0.0", 3000, "0.0.0.0:3000"},
		{"dynamic port", "127.0.0.1", 0, "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testServerConfig()
			cfg.Host = tt.host
			cfg.Port = tt.port

			srv := New(cfg, config.CORSConfig{}, discardLogger())
			assert.Equal(t, tt.expectedAddr, srv.Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(), config.CORSConfig{}, discardLogger())

	errCh := srv.Start()

	time.Sleep(50 * time.Millisecond)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServer_CORS(t *testing.T) {
	corsCfg := config.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	srv := New(testServerConfig(), corsCfg, discardLogger())
	srv.Engine().GET("/api/v1/quotes", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/quotes", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		req.Header.Set("Access-Control-Request-Headers", "content-type,x-request-id")

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("simple request from foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil)
		req.Header.Set("Origin", "https://evil.example")

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled leaves the engine bare", func(t *testing.T) {
		bare := New(testServerConfig(), config.CORSConfig{}, discardLogger())
		assert.Same(t, bare.Engine(), bare.Handler())
	})
}

func TestMaxBodySize(t *testing.T) {
	cfg := testServerConfig()
	cfg.MaxRequestSize = 100

	srv := New(cfg, config.CORSConfig{}, discardLogger())
	srv.Engine().POST("/import", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	tests := []struct {
		name       string
		size       int
		wantStatus int
	}{
		{"under limit", 50, http.StatusOK},
		{"over limit", 200, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(strings.Repeat("x", tt.size)))

			w := httptest.NewRecorder()
			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func newTestRouter(t *testing.T, hub *websocket.Hub) *gin.Engine {
	t.Helper()

	logger := discardLogger()

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  memory.NewQuoteStore(domain.SeedQuotes()),
		Logger: logger,
	})
	todos := app.NewTodoService(app.TodoServiceConfig{
		Remote: mocks.NewMockTodoRemote(t),
		Mirror: memory.NewTodoMirror(),
		Logger: logger,
	})

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:         logger,
		ServiceName:    "portfolio-service",
		HealthHandler:  handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{}, nil),
		QuoteHandler:   handlers.NewQuoteHandler(quotes),
		TodoHandler:    handlers.NewTodoHandler(todos),
		Hub:            hub,
		AllowedOrigins: []string{"*"},
	})

	return engine
}

func TestSetupRouter_Routes(t *testing.T) {
	hub := websocket.NewHub(websocket.HubConfig{Logger: discardLogger()})
	t.Cleanup(hub.Close)

	engine := newTestRouter(t, hub)

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/metrics",
		"GET /ws",
		"GET /api/v1/quotes",
		"GET /api/v1/quotes/export",
		"POST /api/v1/quotes/import",
		"GET /api/v1/todos",
		"POST /api/v1/todos/sync",
		"PATCH /api/v1/todos/:id/toggle",
	} {
		assert.True(t, routes[want], "missing route: %s", want)
	}
}

func TestSetupRouter_WithoutHub(t *testing.T) {
	engine := newTestRouter(t, nil)

	for _, r := range engine.Routes() {
		assert.NotEqual(t, PathWebSocket, r.Path)
	}
}

func TestSetupRouter_MiddlewareChain(t *testing.T) {
	engine := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes?q=%E8%80%81%E5%AD%90", nil)
	req.Header.Set(middleware.HeaderCorrelationID, "corr-1")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-1", w.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupRouter_WebSocketRequiresUpgrade(t *testing.T) {
	hub := websocket.NewHub(websocket.HubConfig{Logger: discardLogger()})
	t.Cleanup(hub.Close)

	w := httptest.NewRecorder()
	newTestRouter(t, hub).ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathWebSocket, nil))

	assert.NotEqual(t, http.StatusNotFound, w.Code)
	assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest)
}
