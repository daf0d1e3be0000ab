package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

// todosKey is the single key the whole list is stored under.
const todosKey = "todos"

var _ ports.TodoMirror = (*TodoMirror)(nil)

// TodoMirror stores the todo list as one JSON document in the kv table.
type TodoMirror struct {
	db *sql.DB
}

// NewTodoMirror returns a mirror backed by db. Open must have migrated db.
func NewTodoMirror(db *sql.DB) *TodoMirror {
	return &TodoMirror{db: db}
}

// Load returns the stored list, or an empty list if nothing was saved.
// A corrupt document is reported, not silently discarded.
func (m *TodoMirror) Load(ctx context.Context) ([]domain.Todo, error) {
	var raw string

	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, todosKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Todo{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}

	todos := []domain.Todo{}
	if err := json.Unmarshal([]byte(raw), &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	return todos, nil
}

// Save replaces the stored list.
func (m *TodoMirror) Save(ctx context.Context, todos []domain.Todo) error {
	if todos == nil {
		todos = []domain.Todo{}
	}

	raw, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("encode todos: %w", err)
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		todosKey, string(raw))
	if err != nil {
		return fmt.Errorf("save todos: %w", err)
	}

	return nil
}
