package domain

import "fmt"

// Change actions published after a successful mutation.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionImported  = "imported"
	ActionReordered = "reordered"
	ActionSynced    = "synced"
)

// Change notifies listeners that a list was mutated and views should refresh.
type Change struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

// NewChange builds a change notification.
func NewChange(entity, action, id string) Change {
	return Change{Entity: entity, Action: action, ID: id}
}

// EventType returns "<entity>_<action>".
func (c Change) EventType() string {
	return fmt.Sprintf("%s_%s", c.Entity, c.Action)
}

// Payload returns the change itself.
func (c Change) Payload() any {
	return c
}
