package websockets

import (
	"log/slog"
	"net/http"

	"github.com/chris/coin-bank/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades clients onto the live reserve-update feed.
type Handler struct {
	connManager websockets.ConnectionManager
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		connManager: connManager,
		logger:      logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The feed is read-only, so any origin may subscribe.
				return true
			},
		},
	}
}

// ServeHTTP handles GET /ws.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	h.logger.Info("Client connected", "connectionId", connectionID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID, conn); err != nil {
		h.logger.Error("failed to save connection", "connectionId", connectionID, "error", err)
		return
	}

	defer func() {
		h.logger.Info("Client disconnected", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			h.logger.Error("failed to delete connection", "connectionId", connectionID, "error", err)
		}
	}()

	// Clients only listen; reading is how a disconnect is noticed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("unexpected close error", "connectionId", connectionID, "error", err)
			}
			break
		}
	}
}
