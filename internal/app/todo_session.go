package app

import (
	"slices"
	"sync"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

// Mode is the connectivity state of the todo session.
type Mode string

const (
	// ModeUnknown is the state before the first List.
	ModeUnknown Mode = "unknown"

	// ModeOnline means the last List or Sync reached the remote API.
	ModeOnline Mode = "online"

	// ModeOffline means an operation fell back to the local mirror.
	ModeOffline Mode = "offline"
)

// TodoStatus reports the session state.
type TodoStatus struct {
	Mode    Mode `json:"mode"`
	Syncing bool `json:"syncing"`
}

// session is the current view of the todo list. Its order may differ from
// the mirror's after a Reorder.
type session struct {
	mu      sync.Mutex
	todos   []domain.Todo
	mode    Mode
	syncing bool
}

func newSession() *session {
	return &session{todos: []domain.Todo{}, mode: ModeUnknown}
}

func (s *session) setMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = m
}

func (s *session) status() TodoStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return TodoStatus{Mode: s.mode, Syncing: s.syncing}
}

// beginSync sets the syncing flag. It returns false if a sync is running.
func (s *session) beginSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.syncing {
		return false
	}

	s.syncing = true

	return true
}

func (s *session) endSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncing = false
}

func (s *session) snapshot() []domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.todos)
}

func (s *session) replace(todos []domain.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = slices.Clone(todos)
}

// upsert replaces the todo with t.ID in place, or appends it.
func (s *session) upsert(t domain.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = upsertTodo(s.todos, t)
}

func (s *session) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos, _ = removeTodo(s.todos, id)
}

func upsertTodo(todos []domain.Todo, t domain.Todo) []domain.Todo {
	if i := domain.IndexTodo(todos, t.ID); i >= 0 {
		todos[i] = t
		return todos
	}

	return append(todos, t)
}

func removeTodo(todos []domain.Todo, id int64) ([]domain.Todo, bool) {
	i := domain.IndexTodo(todos, id)
	if i < 0 {
		return todos, false
	}

	return slices.Delete(todos, i, i+1), true
}
