// Package app contains the application services. They orchestrate domain
// rules over the ports and never import an adapter.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

// QuoteExportPrefix starts every quote export filename.
const QuoteExportPrefix = "东方智慧语录库_"

// ExportFile is a downloadable JSON document.
type ExportFile struct {
	Filename string
	Data     []byte
}

// QuoteService manages the wisdom gallery.
type QuoteService struct {
	store  ports.QuoteStore
	events ports.EventPublisher
	exec   *Executor
	now    func() time.Time
	logger *slog.Logger
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Events ports.EventPublisher // optional
	Logger *slog.Logger
	Now    func() time.Time // defaults to time.Now
}

// NewQuoteService creates a quote service. It panics without a store.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: quote service requires a store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.QuoteService"))

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &QuoteService{
		store:  cfg.Store,
		events: cfg.Events,
		exec:   NewExecutor(logger),
		now:    now,
		logger: logger,
	}
}

// List returns every quote in insertion order.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return quotes, nil
}

// Get returns the quote with id.
func (s *QuoteService) Get(ctx context.Context, id string) (domain.Quote, error) {
	q, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

// Filter returns the quotes matching f, recomputed from the full list.
func (s *QuoteService) Filter(ctx context.Context, f domain.QuoteFilter) ([]domain.Quote, error) {
	quotes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return f.Apply(quotes), nil
}

// Categories returns the suggested categories followed by any other
// category in use, each once.
func (s *QuoteService) Categories(ctx context.Context) ([]string, error) {
	quotes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(domain.SuggestedCategories)

	for _, q := range quotes {
		if q.Category != "" && !slices.Contains(out, q.Category) {
			out = append(out, q.Category)
		}
	}

	return out, nil
}

// Add validates q, assigns an id if it has none, and appends it.
func (s *QuoteService) Add(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	q = q.Normalize()

	if err := q.Validate(); err != nil {
		return domain.Quote{}, err
	}

	if q.ID == "" {
		q.ID = domain.NewQuoteID(s.now())
	}

	if err := s.store.Append(ctx, q); err != nil {
		return domain.Quote{}, fmt.Errorf("adding quote: %w", err)
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "quote added", slog.String("quote_id", q.ID))
	publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityQuote, domain.ActionCreated, q.ID))

	return q, nil
}

// Edit replaces the quote with q.ID in place. An unknown id is a
// NotFoundError and leaves the store unchanged.
func (s *QuoteService) Edit(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	q = q.Normalize()

	if q.ID == "" {
		return domain.Quote{}, domain.NewValidationError("id", "id is required")
	}

	if err := q.Validate(); err != nil {
		return domain.Quote{}, err
	}

	if err := s.store.Replace(ctx, q); err != nil {
		return domain.Quote{}, fmt.Errorf("editing quote: %w", err)
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "quote edited", slog.String("quote_id", q.ID))
	publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityQuote, domain.ActionUpdated, q.ID))

	return q, nil
}

// Delete removes the quote with id.
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "quote deleted", slog.String("quote_id", id))
	publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityQuote, domain.ActionDeleted, id))

	return nil
}

// Export serializes the filtered view as indented JSON.
func (s *QuoteService) Export(ctx context.Context, f domain.QuoteFilter) (*ExportFile, error) {
	quotes, err := s.Filter(ctx, f)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding quotes: %w", err)
	}

	return &ExportFile{
		Filename: QuoteExportPrefix + s.now().Format(time.DateOnly) + ".json",
		Data:     data,
	}, nil
}
