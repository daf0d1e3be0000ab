// Package websocket pushes change notifications to connected pages so they
// can refresh their quote and todo views.
package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	ws "github.com/coder/websocket"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

// Message is what clients receive for every published event.
type Message struct {
	Type   string `json:"type"`
	Entity string `json:"entity,omitempty"`
	Action string `json:"action,omitempty"`
	ID     string `json:"id,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// NewMessage converts an event. Changes are flattened; other events carry
// their payload under data.
func NewMessage(event ports.Event) Message {
	if c, ok := event.Payload().(domain.Change); ok {
		return Message{Type: event.EventType(), Entity: c.Entity, Action: c.Action, ID: c.ID}
	}

	return Message{Type: event.EventType(), Data: event.Payload()}
}

// HubConfig contains the hub's optional collaborators.
type HubConfig struct {
	Logger *slog.Logger

	// OnClients is called with the client count whenever it changes.
	OnClients func(n int)
}

// Hub tracks connected clients and fans messages out to them.
// It implements ports.EventPublisher.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*Client]struct{}
	closed    bool
	logger    *slog.Logger
	onClients func(int)
}

// NewHub creates an empty hub.
func NewHub(cfg HubConfig) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	onClients := cfg.OnClients
	if onClients == nil {
		onClients = func(int) {}
	}

	return &Hub{
		clients:   make(map[*Client]struct{}),
		logger:    logger.With(slog.String("component", "websocket.Hub")),
		onClients: onClients,
	}
}

// Register adds a client. It returns false once the hub is closed.
func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return false
	}

	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.onClients(n)

	return true
}

// Unregister removes a client and closes its send channel. Repeated calls
// are no-ops.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()

	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}

	delete(h.clients, c)
	close(c.send)
	n := len(h.clients)
	h.mu.Unlock()

	h.onClients(n)
}

// Publish broadcasts event to every client. A client whose buffer is full
// misses the message rather than slowing the publisher down.
func (h *Hub) Publish(ctx context.Context, event ports.Event) error {
	data, err := json.Marshal(NewMessage(event))
	if err != nil {
		return fmt.Errorf("encoding %s message: %w", event.EventType(), err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			dropped++
		}
	}

	if dropped > 0 {
		h.logger.DebugContext(ctx, "slow clients skipped",
			slog.String("type", event.EventType()),
			slog.Int("dropped", dropped),
		)
	}

	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Close disconnects every client and rejects new ones. Hijacked websocket
// connections are not tracked by http.Server, so shutdown calls this.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true

	conns := make([]*ws.Conn, 0, len(h.clients))
	for c := range h.clients {
		if c.conn != nil {
			conns = append(conns, c.conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close(ws.StatusGoingAway, "server shutting down")
	}
}
