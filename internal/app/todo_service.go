package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

// TodoExportFilename names the todo export download.
const TodoExportFilename = "todos.json"

const defaultSyncConcurrency = 4

// SyncResult reports what a sync pushed to the remote API.
type SyncResult struct {
	Pushed      int `json:"pushed"`
	Failed      int `json:"failed"`
	RemoteTotal int `json:"remote_total"`
}

// TodoImportResult reports how many imported records were created.
type TodoImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// TodoService is the todo list: remote API first, local mirror when the
// API is unreachable.
type TodoService struct {
	remote ports.TodoRemote
	mirror ports.TodoMirror
	events ports.EventPublisher
	logger *slog.Logger
	now    func() time.Time

	syncConcurrency int
	onFallback      func(operation string)
	onSync          func(outcome string)
	onReorder       func(todos []domain.Todo)

	// mirrorMu serializes read-modify-write cycles on the mirror.
	mirrorMu sync.Mutex
	session  *session
}

// TodoServiceConfig contains the dependencies of the todo service.
type TodoServiceConfig struct {
	Remote ports.TodoRemote
	Mirror ports.TodoMirror
	Events ports.EventPublisher // optional
	Logger *slog.Logger
	Now    func() time.Time // defaults to time.Now

	// SyncConcurrency bounds parallel creates during Sync.
	SyncConcurrency int

	// OnFallback is called with the operation name each time the mirror
	// serves a request the remote API failed.
	OnFallback func(operation string)

	// OnSync is called with "ok" or "failed" after each sync.
	OnSync func(outcome string)

	// OnReorder receives the session order after a Reorder. The order is
	// never persisted; this is the only way it leaves the service.
	OnReorder func(todos []domain.Todo)
}

// NewTodoService creates a todo service. It panics without a remote or mirror.
func NewTodoService(cfg TodoServiceConfig) *TodoService {
	if cfg.Remote == nil {
		panic("app: todo service requires a remote")
	}

	if cfg.Mirror == nil {
		panic("app: todo service requires a mirror")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &TodoService{
		remote:          cfg.Remote,
		mirror:          cfg.Mirror,
		events:          cfg.Events,
		logger:          logger.With(slog.String("component", "app.TodoService")),
		now:             cfg.Now,
		syncConcurrency: cfg.SyncConcurrency,
		onFallback:      cfg.OnFallback,
		onSync:          cfg.OnSync,
		onReorder:       cfg.OnReorder,
		session:         newSession(),
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.syncConcurrency <= 0 {
		s.syncConcurrency = defaultSyncConcurrency
	}

	if s.onFallback == nil {
		s.onFallback = func(string) {}
	}

	if s.onSync == nil {
		s.onSync = func(string) {}
	}

	return s
}

// Status returns the session mode and syncing flag.
func (s *TodoService) Status() TodoStatus {
	return s.session.status()
}

// Todos returns the current session view without contacting anything.
func (s *TodoService) Todos() []domain.Todo {
	return s.session.snapshot()
}

// Stats counts the session view.
func (s *TodoService) Stats() domain.TodoStats {
	return domain.ComputeStats(s.session.snapshot())
}

// List fetches the remote list. Coming back from offline, or on the first
// List over a mirror left by a previous run, it first pushes local-only
// records, as Sync does. When the API fails the mirror is returned and the
// session goes offline.
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	todos, err := withFallback(ctx, s, "list",
		func(ctx context.Context) ([]domain.Todo, error) {
			remote, err := s.remote.ListTodos(ctx)
			if err != nil {
				return nil, err
			}

			if s.needsReconcile(ctx) {
				if !s.session.beginSync() {
					// A running sync owns the mirror; show the remote list meanwhile.
					return remote, nil
				}
				defer s.session.endSync()

				merged, _, err := s.reconcile(ctx, remote)
				if err != nil {
					s.onSync("failed")
					return nil, err
				}

				s.onSync("ok")

				return merged, nil
			}

			s.saveMirror(ctx, remote)
			s.session.setMode(ModeOnline)

			return remote, nil
		},
		func(ctx context.Context) ([]domain.Todo, error) {
			return s.loadMirror(ctx)
		},
	)
	if err != nil {
		return nil, err
	}

	s.session.replace(todos)

	return slices.Clone(todos), nil
}

// needsReconcile reports whether the mirror may hold records the remote API
// has never seen: after an offline spell, or before the first successful
// List when the mirror is not empty.
func (s *TodoService) needsReconcile(ctx context.Context) bool {
	switch s.session.status().Mode {
	case ModeOffline:
		return true
	case ModeUnknown:
		local, err := s.mirror.Load(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "mirror not readable", slog.Any("error", err))
			return false
		}

		return len(local) > 0
	default:
		return false
	}
}

// Create adds a todo.
func (s *TodoService) Create(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	created, err := withFallback(ctx, s, "create",
		func(ctx context.Context) (*domain.Todo, error) {
			t, err := s.remote.CreateTodo(ctx, draft)
			if err != nil {
				return nil, err
			}

			s.mirrorUpsert(ctx, *t)

			return t, nil
		},
		func(ctx context.Context) (*domain.Todo, error) {
			return s.createLocal(ctx, draft)
		},
	)
	if err != nil {
		return nil, err
	}

	s.session.upsert(*created)
	s.changed(ctx, domain.ActionCreated, created.ID)

	return created, nil
}

// Toggle flips the completed flag of the todo with id.
func (s *TodoService) Toggle(ctx context.Context, id int64) (*domain.Todo, error) {
	toggled, err := withFallback(ctx, s, "toggle",
		func(ctx context.Context) (*domain.Todo, error) {
			t, err := s.remote.ToggleTodo(ctx, id)
			if err != nil {
				return nil, err
			}

			s.mirrorUpsert(ctx, *t)

			return t, nil
		},
		func(ctx context.Context) (*domain.Todo, error) {
			return s.modifyLocal(ctx, id, func(t *domain.Todo) {
				t.Completed = !t.Completed
				t.UpdatedAt = domain.FormatTimestamp(s.now())
			})
		},
	)
	if err != nil {
		return nil, err
	}

	s.session.upsert(*toggled)
	s.changed(ctx, domain.ActionUpdated, id)

	return toggled, nil
}

// Update applies patch to the todo with id.
func (s *TodoService) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := withFallback(ctx, s, "update",
		func(ctx context.Context) (*domain.Todo, error) {
			t, err := s.remote.UpdateTodo(ctx, id, patch)
			if err != nil {
				return nil, err
			}

			s.mirrorUpsert(ctx, *t)

			return t, nil
		},
		func(ctx context.Context) (*domain.Todo, error) {
			return s.modifyLocal(ctx, id, func(t *domain.Todo) {
				patch.Apply(t, s.now())
			})
		},
	)
	if err != nil {
		return nil, err
	}

	s.session.upsert(*updated)
	s.changed(ctx, domain.ActionUpdated, id)

	return updated, nil
}

// Delete removes the todo with id.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	_, err := withFallback(ctx, s, "delete",
		func(ctx context.Context) (struct{}, error) {
			if err := s.remote.DeleteTodo(ctx, id); err != nil {
				return struct{}{}, err
			}

			s.mirrorRemove(ctx, id)

			return struct{}{}, nil
		},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.deleteLocal(ctx, id)
		},
	)
	if err != nil {
		return err
	}

	s.session.remove(id)
	s.changed(ctx, domain.ActionDeleted, id)

	return nil
}

// Sync pushes local-only records to the remote API and makes the mirror the
// remote list plus whatever could not be pushed. A failed fetch leaves the
// session offline and returns an UnavailableError.
func (s *TodoService) Sync(ctx context.Context) (SyncResult, error) {
	if !s.session.beginSync() {
		return SyncResult{}, domain.NewConflictError(domain.EntityTodo, "sync already in progress")
	}
	defer s.session.endSync()

	remote, err := s.remote.ListTodos(ctx)
	if err != nil {
		s.session.setMode(ModeOffline)
		s.onSync("failed")

		return SyncResult{}, domain.NewUnavailableError("todo-api", err.Error())
	}

	merged, result, err := s.reconcile(ctx, remote)
	if err != nil {
		s.onSync("failed")
		return SyncResult{}, err
	}

	s.session.replace(merged)
	s.onSync("ok")

	return result, nil
}

// reconcile pushes mirror records absent from remote, saves the merged list
// and marks the session online. Records already present remotely are never
// re-created.
func (s *TodoService) reconcile(ctx context.Context, remote []domain.Todo) ([]domain.Todo, SyncResult, error) {
	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	local, err := s.mirror.Load(ctx)
	if err != nil {
		return nil, SyncResult{}, fmt.Errorf("loading local todos: %w", err)
	}

	var pending []domain.Todo

	for _, t := range local {
		if !domain.PresentRemotely(t, remote) {
			pending = append(pending, t)
		}
	}

	pushes := make([]func(context.Context) (*domain.Todo, error), len(pending))
	for i, t := range pending {
		pushes[i] = func(ctx context.Context) (*domain.Todo, error) {
			return s.remote.CreateTodo(ctx, domain.TodoDraft{Title: t.Title, Priority: t.Priority, Completed: t.Completed})
		}
	}

	merged := slices.Clone(remote)
	result := SyncResult{RemoteTotal: len(remote)}

	for i, r := range ParallelPartialLimit(ctx, s.syncConcurrency, pushes...) {
		if r.Err != nil {
			result.Failed++
			merged = append(merged, pending[i])

			s.logger.WarnContext(ctx, "todo not pushed",
				slog.Int64("todo_id", pending[i].ID),
				slog.Any("error", r.Err),
			)

			continue
		}

		result.Pushed++
		merged = append(merged, *r.Value)
	}

	if err := s.mirror.Save(ctx, merged); err != nil {
		return nil, SyncResult{}, fmt.Errorf("saving local todos: %w", err)
	}

	s.session.setMode(ModeOnline)

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "todos synced",
		slog.Int("pushed", result.Pushed),
		slog.Int("failed", result.Failed),
		slog.Int("remote_total", result.RemoteTotal),
	)
	publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityTodo, domain.ActionSynced, ""))

	return merged, result, nil
}

// Reorder rearranges the session view. ids must be a permutation of the
// current list. The order is not persisted.
func (s *TodoService) Reorder(ctx context.Context, ids []int64) ([]domain.Todo, error) {
	s.session.mu.Lock()

	if len(ids) != len(s.session.todos) {
		s.session.mu.Unlock()
		return nil, domain.NewValidationError("ids", "must list every todo exactly once")
	}

	reordered := make([]domain.Todo, 0, len(ids))
	seen := make(map[int64]bool, len(ids))

	for _, id := range ids {
		i := domain.IndexTodo(s.session.todos, id)
		if i < 0 || seen[id] {
			s.session.mu.Unlock()
			return nil, domain.NewValidationError("ids", "must list every todo exactly once")
		}

		seen[id] = true
		reordered = append(reordered, s.session.todos[i])
	}

	s.session.todos = reordered
	s.session.mu.Unlock()

	if s.onReorder != nil {
		s.onReorder(slices.Clone(reordered))
	}

	publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityTodo, domain.ActionReordered, ""))

	return slices.Clone(reordered), nil
}

// Export serializes the mirror as indented JSON.
func (s *TodoService) Export(ctx context.Context) (*ExportFile, error) {
	todos, err := s.loadMirror(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding todos: %w", err)
	}

	return &ExportFile{Filename: TodoExportFilename, Data: data}, nil
}

// Import creates one todo per element of a JSON array, using each element's
// title and priority. Ids and timestamps in the payload are ignored.
func (s *TodoService) Import(ctx context.Context, payload []byte) (TodoImportResult, error) {
	if trimmed := bytes.TrimSpace(payload); len(trimmed) == 0 || trimmed[0] != '[' {
		return TodoImportResult{}, domain.NewValidationError("file", "import payload must be a JSON array of todos")
	}

	var records []domain.Todo
	if err := json.Unmarshal(payload, &records); err != nil {
		return TodoImportResult{}, domain.NewValidationError("file", "import payload must be a JSON array of todos")
	}

	var result TodoImportResult

	for _, r := range records {
		if _, err := s.Create(ctx, domain.TodoDraft{Title: r.Title, Priority: r.Priority}); err != nil {
			result.Failed++
			continue
		}

		result.Imported++
	}

	return result, nil
}

func (s *TodoService) loadMirror(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.mirror.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading local todos: %w", err)
	}

	return todos, nil
}

// saveMirror replaces the mirror after a remote success. The remote result
// stands even if the mirror cannot be written.
func (s *TodoService) saveMirror(ctx context.Context, todos []domain.Todo) {
	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	if err := s.mirror.Save(ctx, todos); err != nil {
		s.logger.WarnContext(ctx, "mirror not updated", slog.Any("error", err))
	}
}

func (s *TodoService) mirrorUpsert(ctx context.Context, t domain.Todo) {
	s.mirrorEdit(ctx, func(todos []domain.Todo) []domain.Todo { return upsertTodo(todos, t) })
}

func (s *TodoService) mirrorRemove(ctx context.Context, id int64) {
	s.mirrorEdit(ctx, func(todos []domain.Todo) []domain.Todo {
		todos, _ = removeTodo(todos, id)
		return todos
	})
}

func (s *TodoService) mirrorEdit(ctx context.Context, edit func([]domain.Todo) []domain.Todo) {
	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	todos, err := s.mirror.Load(ctx)
	if err == nil {
		err = s.mirror.Save(ctx, edit(todos))
	}

	if err != nil {
		s.logger.WarnContext(ctx, "mirror not updated", slog.Any("error", err))
	}
}

// createLocal synthesizes a todo in the mirror. Its id is the current time
// in milliseconds, bumped past any id already in use.
func (s *TodoService) createLocal(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error) {
	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	todos, err := s.mirror.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading local todos: %w", err)
	}

	now := s.now()
	id := now.UnixMilli()

	for domain.IndexTodo(todos, id) >= 0 {
		id++
	}

	stamp := domain.FormatTimestamp(now)
	t := domain.Todo{
		ID:        id,
		Title:     draft.Title,
		Priority:  draft.Priority,
		Completed: false,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}

	if err := s.mirror.Save(ctx, append(todos, t)); err != nil {
		return nil, fmt.Errorf("saving local todos: %w", err)
	}

	return &t, nil
}

// modifyLocal applies edit to the mirrored todo with id.
func (s *TodoService) modifyLocal(ctx context.Context, id int64, edit func(*domain.Todo)) (*domain.Todo, error) {
	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	todos, err := s.mirror.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading local todos: %w", err)
	}

	i := domain.IndexTodo(todos, id)
	if i < 0 {
		return nil, domain.NewNotFoundError(domain.EntityTodo, domain.FormatTodoID(id))
	}

	edit(&todos[i])

	if err := s.mirror.Save(ctx, todos); err != nil {
		return nil, fmt.Errorf("saving local todos: %w", err)
	}

	t := todos[i]

	return &t, nil
}

func (s *TodoService) deleteLocal(ctx context.Context, id int64) error {
	s.mirrorMu.Lock()
	defer s.mirrorMu.Unlock()

	todos, err := s.mirror.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading local todos: %w", err)
	}

	todos, found := removeTodo(todos, id)
	if !found {
		return domain.NewNotFoundError(domain.EntityTodo, domain.FormatTodoID(id))
	}

	if err := s.mirror.Save(ctx, todos); err != nil {
		return fmt.Errorf("saving local todos: %w", err)
	}

	return nil
}

func (s *TodoService) changed(ctx context.Context, action string, id int64) {
	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "todo "+action, slog.Int64("todo_id", id))
	publish(ctx, s.events, s.logger, domain.NewChange(domain.EntityTodo, action, domain.FormatTodoID(id)))
}
