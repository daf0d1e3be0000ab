// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the app layer never imports an adapter.
//
// Port design:
//   - Context first on anything that may block
//   - Domain types in, domain types out
//   - Failures are domain errors (ErrNotFound, ErrUnavailable, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

// QuoteStore owns the gallery's quotes in insertion order.
// Implementations serialize writers; callers never see partially applied changes.
type QuoteStore interface {
	// List returns a copy of every quote in order.
	List(ctx context.Context) ([]domain.Quote, error)

	// Get returns the quote with id or domain.ErrNotFound.
	Get(ctx context.Context, id string) (domain.Quote, error)

	// Append adds q at the end. Returns domain.ErrConflict if the id is taken.
	Append(ctx context.Context, q domain.Quote) error

	// Replace overwrites the quote with q.ID in place.
	// Returns domain.ErrNotFound if no quote has that id.
	Replace(ctx context.Context, q domain.Quote) error

	// Remove deletes the quote with id. Returns domain.ErrNotFound if absent.
	Remove(ctx context.Context, id string) error

	// Len returns the number of stored quotes.
	Len(ctx context.Context) (int, error)
}

// TodoRemote is the remote todo API.
// List must fail unless the response body is a JSON array.
type TodoRemote interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)
	ToggleTodo(ctx context.Context, id int64) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// TodoMirror is the local copy of the todo list used when the remote is
// unreachable. It stores the whole list under a single key.
type TodoMirror interface {
	// Load returns the mirrored list, or an empty list if nothing was saved.
	Load(ctx context.Context) ([]domain.Todo, error)

	// Save replaces the mirrored list.
	Save(ctx context.Context, todos []domain.Todo) error
}

// EventPublisher delivers change notifications to interested listeners.
type EventPublisher interface {
	// Publish sends an event. Implementations must not block on slow listeners.
	Publish(ctx context.Context, event Event) error
}

// Event represents a domain event that can be published.
type Event interface {
	// EventType returns the type identifier for routing.
	EventType() string

	// Payload returns the event data for serialization.
	Payload() any
}
