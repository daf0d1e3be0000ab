package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
)

const (
	todosPath = "/api/todos"

	// maxListBody bounds the list response read into memory.
	maxListBody = 8 << 20
)

// TodoClientConfig contains configuration for the todo client.
type TodoClientConfig struct {
	// Client must have its BaseURL pointing at the todo API host.
	Client *clients.Client

	Logger *slog.Logger
}

// TodoClient implements ports.TodoRemote against the todo REST API:
//
//	GET    /api/todos
//	POST   /api/todos
//	PATCH  /api/todos/:id
//	PATCH  /api/todos/:id/toggle
//	DELETE /api/todos/:id
type TodoClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewTodoClient creates a todo client. It panics if Client is nil.
func NewTodoClient(cfg TodoClientConfig) *TodoClient {
	if cfg.Client == nil {
		panic("TodoClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger.With(slog.String("component", "acl.TodoClient")),
	}
}

// externalTodo is the wire shape of a todo in the remote API.
type externalTodo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  int    `json:"priority"`
	UserID    *int64 `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// externalDraft is the create request body.
type externalDraft struct {
	Title     string `json:"title"`
	Priority  int    `json:"priority"`
	Completed bool   `json:"completed"`
}

// externalPatch is the update request body. Only set fields are sent.
type externalPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Priority  *int    `json:"priority,omitempty"`
}

// ListTodos fetches every todo. The body must be a JSON array; an object,
// null or anything else is an error so the caller falls back to the mirror.
func (c *TodoClient) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	ec := ErrorContext{Operation: "list todos", Entity: domain.EntityTodo}

	c.trace(ctx, "starting request", http.MethodGet, todosPath)

	body, err := c.Send(ctx, http.MethodGet, todosPath, nil, ec)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(body, maxListBody))
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("reading todo list: %v", err))
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.NewUnavailableError(c.ServiceName(), "todo list response is not a JSON array")
	}

	var external []externalTodo
	if err := json.Unmarshal(trimmed, &external); err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("decoding todo list: %v", err))
	}

	todos, err := TranslateSlice(external, translateTodo)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	c.trace(ctx, "translated todo list", http.MethodGet, todosPath, slog.Int("count", len(todos)))

	return todos, nil
}

// CreateTodo posts a new todo and returns the record the API stored.
func (c *TodoClient) CreateTodo(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error) {
	payload := externalDraft{Title: draft.Title, Priority: int(draft.Priority), Completed: draft.Completed}

	return c.sendOne(ctx, http.MethodPost, todosPath, payload,
		ErrorContext{Operation: "create todo", Entity: domain.EntityTodo})
}

// UpdateTodo patches the todo with id.
func (c *TodoClient) UpdateTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	payload := externalPatch{Title: patch.Title, Completed: patch.Completed}
	if patch.Priority != nil {
		p := int(*patch.Priority)
		payload.Priority = &p
	}

	return c.sendOne(ctx, http.MethodPatch, todoPath(id), payload,
		ErrorContext{Operation: "update todo", Entity: domain.EntityTodo, ID: domain.FormatTodoID(id)})
}

// ToggleTodo flips the completed flag of the todo with id.
func (c *TodoClient) ToggleTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	return c.sendOne(ctx, http.MethodPatch, todoPath(id)+"/toggle", nil,
		ErrorContext{Operation: "toggle todo", Entity: domain.EntityTodo, ID: domain.FormatTodoID(id)})
}

// DeleteTodo removes the todo with id.
func (c *TodoClient) DeleteTodo(ctx context.Context, id int64) error {
	path := todoPath(id)
	c.trace(ctx, "starting request", http.MethodDelete, path)

	body, err := c.Send(ctx, http.MethodDelete, path, nil,
		ErrorContext{Operation: "delete todo", Entity: domain.EntityTodo, ID: domain.FormatTodoID(id)})
	if err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()

	return nil
}

// Name implements ports.HealthChecker.
func (c *TodoClient) Name() string {
	return c.ServiceName()
}

// Check implements ports.HealthChecker. Any response below 500 counts as up.
func (c *TodoClient) Check(ctx context.Context) error {
	resp, err := c.Client().Get(ctx, todosPath)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("todo API returned status %d", resp.StatusCode)
	}

	return nil
}

func (c *TodoClient) sendOne(ctx context.Context, method, path string, payload any, ec ErrorContext) (*domain.Todo, error) {
	var reqBody io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s request: %w", ec.Operation, err)
		}

		reqBody = bytes.NewReader(data)
	}

	c.trace(ctx, "starting request", method, path)

	body, err := c.Send(ctx, method, path, reqBody, ec)
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[externalTodo](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("%s: %v", ec.Operation, err))
	}

	todo, err := translateTodo(ext)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("%s: %v", ec.Operation, err))
	}

	c.trace(ctx, "translated todo", method, path, slog.Int64("todo_id", todo.ID))

	return todo, nil
}

func (c *TodoClient) trace(ctx context.Context, msg, method, path string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("method", method), slog.String("path", path))
	logging.FromContextOr(ctx, c.logger).LogAttrs(ctx, logging.LevelTrace, msg, attrs...)
}

// translateTodo validates an external todo and converts it. Unknown
// priorities are read as low so one odd record does not hide the list.
func translateTodo(ext *externalTodo) (*domain.Todo, error) {
	if err := ValidatePositive(ext.ID, "id"); err != nil {
		return nil, err
	}

	priority := domain.Priority(ext.Priority)
	if !priority.Valid() {
		priority = domain.PriorityLow
	}

	return &domain.Todo{
		ID:        ext.ID,
		Title:     ext.Title,
		Completed: ext.Completed,
		Priority:  priority,
		UserID:    ext.UserID,
		CreatedAt: ext.CreatedAt,
		UpdatedAt: ext.UpdatedAt,
	}, nil
}

func todoPath(id int64) string {
	return todosPath + "/" + domain.FormatTodoID(id)
}
