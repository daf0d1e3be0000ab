package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

var _ ports.TodoMirror = (*TodoMirror)(nil)

// TodoMirror keeps the local todo list in process memory. It is used when
// storage.driver is "memory" and in tests; its contents die with the process.
type TodoMirror struct {
	mu    sync.Mutex
	todos []domain.Todo
	saves int
}

// NewTodoMirror returns an empty mirror.
func NewTodoMirror() *TodoMirror {
	return &TodoMirror{}
}

// Load returns a copy of the mirrored list; never nil.
func (m *TodoMirror) Load(context.Context) ([]domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.todos == nil {
		return []domain.Todo{}, nil
	}

	return slices.Clone(m.todos), nil
}

// Save replaces the mirrored list with a copy of todos.
func (m *TodoMirror) Save(_ context.Context, todos []domain.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.todos = slices.Clone(todos)
	m.saves++

	return nil
}

// Saves reports how many times Save has been called.
func (m *TodoMirror) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}
