// Package memory holds in-process implementations of the storage ports.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

var _ ports.QuoteStore = (*QuoteStore)(nil)

// QuoteStore keeps quotes in insertion order with an id index.
// One mutex serializes writers; readers get copies.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	index  map[string]int
}

// NewQuoteStore returns a store holding a copy of initial.
// Later entries with an id already seen are dropped.
func NewQuoteStore(initial []domain.Quote) *QuoteStore {
	s := &QuoteStore{
		quotes: make([]domain.Quote, 0, len(initial)),
		index:  make(map[string]int, len(initial)),
	}

	for _, q := range initial {
		if _, ok := s.index[q.ID]; ok {
			continue
		}

		s.index[q.ID] = len(s.quotes)
		s.quotes = append(s.quotes, q)
	}

	return s
}

// List returns a copy of every quote in order.
func (s *QuoteStore) List(context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.quotes), nil
}

// Get returns the quote with id.
func (s *QuoteStore) Get(_ context.Context, id string) (domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Quote{}, domain.NewNotFoundError(domain.EntityQuote, id)
	}

	return s.quotes[i], nil
}

// Append adds q at the end.
func (s *QuoteStore) Append(_ context.Context, q domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[q.ID]; ok {
		return domain.NewConflictError(domain.EntityQuote, "id "+q.ID+" already exists")
	}

	s.index[q.ID] = len(s.quotes)
	s.quotes = append(s.quotes, q)

	return nil
}

// Replace overwrites the quote with the same id, keeping its position.
func (s *QuoteStore) Replace(_ context.Context, q domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[q.ID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityQuote, q.ID)
	}

	s.quotes[i] = q

	return nil
}

// Remove deletes the quote with id and shifts later quotes down.
func (s *QuoteStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.NewNotFoundError(domain.EntityQuote, id)
	}

	s.quotes = slices.Delete(s.quotes, i, i+1)
	delete(s.index, id)

	for j := i; j < len(s.quotes); j++ {
		s.index[s.quotes[j].ID] = j
	}

	return nil
}

// Len returns the number of stored quotes.
func (s *QuoteStore) Len(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes), nil
}
