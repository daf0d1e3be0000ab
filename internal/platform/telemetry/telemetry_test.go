package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMetrics_Fallbacks(t *testing.T) {
	m := NewMetrics()

	m.ObserveFallback("create")
	m.ObserveFallback("create")
	m.ObserveFallback("toggle")

	assert.InDelta(t, 2, testutil.ToFloat64(m.todoFallbacks.WithLabelValues("create")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.todoFallbacks.WithLabelValues("toggle")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveSync("ok")
	m.SetClients(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `portfolio_todo_sync_total{outcome="ok"} 1`)
	assert.Contains(t, body, "portfolio_ws_clients 3")
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(TracingMiddleware("portfolio-test"), Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
