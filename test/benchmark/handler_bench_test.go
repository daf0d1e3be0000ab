package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	apihttp "github.com/jsamuelsen/portfolio-service/internal/adapters/http"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio-service/internal/adapters/memory"
	"github.com/jsamuelsen/portfolio-service/internal/app"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

func init() {
	// Release mode keeps gin's debug output out of the measurements.
	gin.SetMode(gin.ReleaseMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// downRemote fails every call so todo requests always take the mirror path.
type downRemote struct{}

var errDown = domain.NewUnavailableError("todo-api", "connection refused")

func (downRemote) ListTodos(context.Context) ([]domain.Todo, error) {
	return nil, errDown
}

func (downRemote) CreateTodo(context.Context, domain.TodoDraft) (*domain.Todo, error) {
	return nil, errDown
}

func (downRemote) UpdateTodo(context.Context, int64, domain.TodoPatch) (*domain.Todo, error) {
	return nil, errDown
}

func (downRemote) ToggleTodo(context.Context, int64) (*domain.Todo, error) {
	return nil, errDown
}

func (downRemote) DeleteTodo(context.Context, int64) error {
	return errDown
}

// largeGallery returns the seed quotes plus n generated ones.
func largeGallery(n int) []domain.Quote {
	quotes := domain.SeedQuotes()
	for i := range n {
		quotes = append(quotes, domain.Quote{
			ID:       "gen" + strconv.Itoa(i),
			Quote:    "generated wisdom number " + strconv.Itoa(i),
			Author:   "author " + strconv.Itoa(i%50),
			Category: domain.SuggestedCategories[i%len(domain.SuggestedCategories)],
		})
	}

	return quotes
}

// setupRouter wires the full middleware chain over in-memory adapters.
func setupRouter(b *testing.B, quotes []domain.Quote, todos []domain.Todo) *gin.Engine {
	b.Helper()

	logger := discardLogger()

	mirror := memory.NewTodoMirror()
	if err := mirror.Save(context.Background(), todos); err != nil {
		b.Fatal(err)
	}

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  memory.NewQuoteStore(quotes),
		Logger: logger,
	})
	todoService := app.NewTodoService(app.TodoServiceConfig{
		Remote: downRemote{},
		Mirror: mirror,
		Logger: logger,
	})
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2026-01-01T00:00:00Z")

	engine := gin.New()
	apihttp.SetupRouter(engine, apihttp.RouterConfig{
		Logger:        logger,
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), buildInfo, nil),
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
		TodoHandler:   handlers.NewTodoHandler(todoService),
	})

	return engine
}

func benchmarkGET(b *testing.B, router http.Handler, target string) {
	b.Helper()

	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// BenchmarkLiveness measures a probe through the full middleware chain.
func BenchmarkLiveness(b *testing.B) {
	benchmarkGET(b, setupRouter(b, domain.SeedQuotes(), nil), "/-/live")
}

func BenchmarkQuoteList(b *testing.B) {
	benchmarkGET(b, setupRouter(b, largeGallery(1000), nil), "/api/v1/quotes")
}

// BenchmarkQuoteSearch measures the case-insensitive scan over every field.
func BenchmarkQuoteSearch(b *testing.B) {
	benchmarkGET(b, setupRouter(b, largeGallery(1000), nil), "/api/v1/quotes?q=AUTHOR+7")
}

func BenchmarkQuoteExport(b *testing.B) {
	benchmarkGET(b, setupRouter(b, largeGallery(1000), nil), "/api/v1/quotes/export")
}

// BenchmarkTodoListFallback measures listing from the mirror after the
// remote call fails.
func BenchmarkTodoListFallback(b *testing.B) {
	todos := make([]domain.Todo, 200)
	for i := range todos {
		todos[i] = domain.Todo{ID: int64(i + 1), Title: "todo " + strconv.Itoa(i), Completed: i%3 == 0}
	}

	benchmarkGET(b, setupRouter(b, domain.SeedQuotes(), todos), "/api/v1/todos")
}
