package dto

import (
	"github.com/jsamuelsen/portfolio-service/internal/app"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

// CreateTodoRequest is the body of POST /api/v1/todos.
type CreateTodoRequest struct {
	Title    string `json:"title"    validate:"required,notempty,max=500"`
	Priority int    `json:"priority" validate:"min=0,max=2"`
}

// ToDomain converts the request to a draft.
func (r CreateTodoRequest) ToDomain() domain.TodoDraft {
	return domain.TodoDraft{Title: r.Title, Priority: domain.Priority(r.Priority)}
}

// UpdateTodoRequest is the body of PATCH /api/v1/todos/:id.
// Absent fields are left unchanged.
type UpdateTodoRequest struct {
	Title     *string `json:"title"     validate:"omitempty,notempty,max=500"`
	Completed *bool   `json:"completed"`
	Priority  *int    `json:"priority"  validate:"omitempty,min=0,max=2"`
}

// ToDomain converts the request to a patch.
func (r UpdateTodoRequest) ToDomain() domain.TodoPatch {
	patch := domain.TodoPatch{Title: r.Title, Completed: r.Completed}

	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}

	return patch
}

// ReorderRequest is the body of POST /api/v1/todos/reorder.
type ReorderRequest struct {
	IDs []int64 `json:"ids" validate:"required"`
}

// TodoIDParam binds the :id path segment.
type TodoIDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// TodoListResponse is the body of GET /api/v1/todos.
type TodoListResponse struct {
	Items  []domain.Todo    `json:"items"`
	Stats  domain.TodoStats `json:"stats"`
	Status app.TodoStatus   `json:"status"`
}

// NewTodoListResponse wraps items, never encoding a null list.
func NewTodoListResponse(items []domain.Todo, status app.TodoStatus) TodoListResponse {
	if items == nil {
		items = []domain.Todo{}
	}

	return TodoListResponse{
		Items:  items,
		Stats:  domain.ComputeStats(items),
		Status: status,
	}
}
