package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second

	// sendBuffer is how many messages a subscriber may lag behind before it is dropped.
	sendBuffer = 16
)

// ErrHubClosed is returned when a connection is added after Close.
var ErrHubClosed = errors.New("websocket hub closed")

// subscriber owns one connection. Only its writer goroutine writes to conn.
type subscriber struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// stop ends the writer goroutine. Callers must hold the hub lock and have
// removed the subscriber from the hub, so no Publish can send on the closed channel.
func (s *subscriber) stop() {
	s.closeOnce.Do(func() { close(s.send) })
}

// Hub keeps the open WebSocket connections of this process and broadcasts to them.
// Publish never waits on a client: each connection has its own buffered queue and writer.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]*subscriber
	closed bool
	logger *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[string]*subscriber),
		logger: logger,
	}
}

// Make sure we conform to the interfaces
var (
	_ ConnectionManager = (*Hub)(nil)
	_ Publisher         = (*Hub)(nil)
)

// AddConnection registers a connection under its ID and starts its writer.
func (h *Hub) AddConnection(ctx context.Context, connectionID string, conn *websocket.Conn) error {
	if conn == nil {
		return fmt.Errorf("connection %s is nil", connectionID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	if _, exists := h.subs[connectionID]; exists {
		return fmt.Errorf("connection %s already registered", connectionID)
	}

	sub := &subscriber{
		id:   connectionID,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.subs[connectionID] = sub
	go h.writePump(sub)

	return nil
}

// RemoveConnection forgets a connection. Removing an unknown ID is not an error.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[connectionID]; ok {
		delete(h.subs, connectionID)
		sub.stop()
	}
	return nil
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Publish queues a message for every connected client. A client whose queue is
// full is dropped rather than waited on.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for connectionID, sub := range h.subs {
		select {
		case sub.send <- payload:
		default:
			h.logger.Info("slow connection found, deleting", "connectionId", connectionID)
			delete(h.subs, connectionID)
			sub.stop()
			// Unblocks a writer stuck on a client that stopped reading.
			sub.conn.Close()
		}
	}

	return nil
}

// Close sends a close frame to every client and refuses new connections.
// It is meant to run when the HTTP server shuts down.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for connectionID, sub := range h.subs {
		delete(h.subs, connectionID)
		sub.stop()
	}
}

func (h *Hub) writePump(sub *subscriber) {
	defer sub.conn.Close()

	for payload := range sub.send {
		if err := sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			h.drop(sub, err)
			return
		}
		if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.drop(sub, err)
			return
		}
	}

	// Queue closed: the client was removed or the hub is shutting down.
	closeMsg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
	sub.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeTimeout))
}

func (h *Hub) drop(sub *subscriber, err error) {
	h.logger.Info("stale connection found, deleting", "connectionId", sub.id, "error", err)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[sub.id] == sub {
		delete(h.subs, sub.id)
	}
	sub.stop()
}
