package monitor

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"
)

// WebSocketHandler upgrades instructor monitor connections and parks them
// on the hub until the client disconnects.
type WebSocketHandler struct {
	hub           *Hub
	allowedOrigin string
	isDev         bool
}

// NewWebSocketHandler creates a new monitor WebSocket handler.
func NewWebSocketHandler(hub *Hub, allowedOrigin string, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	examID := r.URL.Query().Get("examId")
	if examID == "" {
		http.Error(w, `{"error":"examId is required"}`, http.StatusBadRequest)
		return
	}

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept monitor WebSocket", "error", err, "exam_id", examID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "monitor ended"); closeErr != nil {
			slog.Debug("Failed to close monitor websocket", "error", closeErr, "exam_id", examID)
		}
	}()

	h.hub.Subscribe(examID, ws)
	defer h.hub.Unsubscribe(examID, ws)

	// The monitor stream is write-only; the read loop only exists to
	// notice the client going away.
	ctx := r.Context()
	for {
		if _, _, err := ws.Read(ctx); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if h.isDev || h.allowedOrigin == "" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || strings.HasPrefix(origin, h.allowedOrigin)
}
