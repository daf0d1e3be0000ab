package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/websocket"
	"github.com/jsamuelsen/portfolio-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// PathWebSocket is where pages subscribe to change notifications.
const PathWebSocket = "/ws"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// Tracing enables otelgin spans.
	Tracing bool

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler
	TodoHandler   *handlers.TodoHandler

	// Hub serves /ws when set.
	Hub *websocket.Hub

	// AllowedOrigins gates websocket upgrades. "*" accepts any origin.
	AllowedOrigins []string

	// Timeout bounds /api/v1 requests. Zero means DefaultRequestTimeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. ContextLogger - seed the request logger
//  3. Request ID and Correlation ID
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints and /ws)
//  6. Timeout - /api/v1 only
//
// Route groups:
//   - /-/ (internal): health, build info and metrics
//   - /ws: change notifications, long-lived so never under the timeout
//   - /api/v1/: quote gallery and todo list
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	chain := []gin.HandlerFunc{
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	}

	if cfg.Tracing {
		chain = append(chain, telemetry.TracingMiddleware(cfg.ServiceName))
	}

	chain = append(chain,
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger, PathWebSocket),
	)

	engine.Use(chain...)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.Hub != nil {
		engine.GET(PathWebSocket, websocket.Handler(cfg.Hub, cfg.AllowedOrigins))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(timeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}

	if cfg.TodoHandler != nil {
		cfg.TodoHandler.RegisterTodoRoutes(apiV1)
	}
}
