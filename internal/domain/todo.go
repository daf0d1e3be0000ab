package domain

import (
	"strconv"
	"strings"
	"time"
)

// EntityTodo names todos in errors and change events.
const EntityTodo = "todo"

// Priority ranks a todo. Only the three declared values are valid.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMid
	PriorityHigh
)

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// String returns a human-readable name for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMid:
		return "mid"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Todo is one item of the todo demo list. Timestamps are RFC 3339 strings
// so records round-trip unchanged through the remote API and the mirror.
type Todo struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	UserID    *int64   `json:"user_id,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// IDString renders the id for errors and events.
func (t Todo) IDString() string {
	return FormatTodoID(t.ID)
}

// FormatTodoID renders a todo id as a decimal string.
func FormatTodoID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// TodoDraft is the input for creating a todo.
type TodoDraft struct {
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed,omitempty"`
}

// Normalize trims the title.
func (d TodoDraft) Normalize() TodoDraft {
	d.Title = strings.TrimSpace(d.Title)
	return d
}

// Validate checks the title and priority of a normalized draft.
func (d TodoDraft) Validate() error {
	if d.Title == "" {
		return NewValidationError("title", "title is required")
	}

	if !d.Priority.Valid() {
		return NewValidationError("priority", "priority must be 0, 1 or 2")
	}

	return nil
}

// TodoPatch lists the fields an update may change. Nil fields are left alone.
type TodoPatch struct {
	Title     *string   `json:"title,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
}

// Normalize trims the title if present.
func (p TodoPatch) Normalize() TodoPatch {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}

	return p
}

// Validate checks the fields that are present.
func (p TodoPatch) Validate() error {
	if p.Title == nil && p.Completed == nil && p.Priority == nil {
		return NewValidationError("", "update must change at least one field")
	}

	if p.Title != nil && *p.Title == "" {
		return NewValidationError("title", "title is required")
	}

	if p.Priority != nil && !p.Priority.Valid() {
		return NewValidationError("priority", "priority must be 0, 1 or 2")
	}

	return nil
}

// Apply writes the patch onto t and stamps updated_at.
func (p TodoPatch) Apply(t *Todo, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}

	if p.Completed != nil {
		t.Completed = *p.Completed
	}

	if p.Priority != nil {
		t.Priority = *p.Priority
	}

	t.UpdatedAt = FormatTimestamp(now)
}

// FormatTimestamp renders t the way the todo API does.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// TodoStats aggregates the session list.
type TodoStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ComputeStats counts completed and pending todos.
func ComputeStats(todos []Todo) TodoStats {
	stats := TodoStats{Total: len(todos)}

	for _, t := range todos {
		if t.Completed {
			stats.Completed++
		}
	}

	stats.Pending = stats.Total - stats.Completed

	return stats
}

// IndexTodo returns the position of id in todos, or -1.
func IndexTodo(todos []Todo, id int64) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}

	return -1
}

// PresentRemotely reports whether a local record already exists in remote.
// A record matches on id; when both sides carry created_at they must agree too,
// otherwise the local record is a different todo that reused the id.
func PresentRemotely(local Todo, remote []Todo) bool {
	for _, r := range remote {
		if r.ID != local.ID {
			continue
		}

		if local.CreatedAt != "" && r.CreatedAt != "" && local.CreatedAt != r.CreatedAt {
			continue
		}

		return true
	}

	return false
}
