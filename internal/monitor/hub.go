// Package monitor streams freshly upserted cheating log records to
// instructor dashboards over WebSocket, keyed by exam.
package monitor

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ashureev/examwatch/internal/domain"
	"github.com/coder/websocket"
)

const broadcastWriteTimeout = 5 * time.Second

// Hub manages active monitor subscriptions per exam.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*websocket.Conn]struct{}
}

// NewHub creates a new monitor hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Subscribe registers a connection for an exam's record stream.
func (h *Hub) Subscribe(examID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.subs[examID]; !exists {
		h.subs[examID] = make(map[*websocket.Conn]struct{})
	}
	h.subs[examID][conn] = struct{}{}
	slog.Info("Monitor subscribed", "exam_id", examID, "subscribers", len(h.subs[examID]))
}

// Unsubscribe removes a connection from an exam's record stream.
func (h *Hub) Unsubscribe(examID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.subs[examID]; ok {
		if _, exists := conns[conn]; exists {
			delete(conns, conn)
			if len(conns) == 0 {
				delete(h.subs, examID)
			}
			slog.Info("Monitor unsubscribed", "exam_id", examID)
		}
	}
}

// Broadcast sends one record to every subscriber of its exam. Subscribers
// that cannot be written to within the timeout are dropped rather than
// blocking the upsert path. Returns the number of successful deliveries.
func (h *Hub) Broadcast(record *domain.CheatingLog) int {
	payload, err := json.Marshal(record)
	if err != nil {
		slog.Error("Failed to encode monitor record", "error", err, "exam_id", record.ExamID)
		return 0
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subs[record.ExamID]))
	for conn := range h.subs[record.ExamID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), broadcastWriteTimeout)
		err := conn.Write(ctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			slog.Debug("Dropping slow monitor subscriber", "error", err, "exam_id", record.ExamID)
			_ = conn.Close(websocket.StatusPolicyViolation, "write timeout")
			h.Unsubscribe(record.ExamID, conn)
			continue
		}
		delivered++
	}
	return delivered
}

// CloseExam forcefully terminates all subscriptions for an exam.
func (h *Hub) CloseExam(examID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subs[examID]
	if !ok {
		return
	}
	for conn := range conns {
		_ = conn.Close(websocket.StatusNormalClosure, "monitor closed")
	}
	delete(h.subs, examID)
	slog.Info("Monitor subscriptions closed", "exam_id", examID)
}
