package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ashureev/examwatch/internal/domain"
	"github.com/coder/websocket"
)

func TestBroadcastWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	delivered := hub.Broadcast(&domain.CheatingLog{ExamID: "E1"})
	if delivered != 0 {
		t.Errorf("Expected 0 deliveries, got %d", delivered)
	}
}

// broadcastUntilDelivered retries the broadcast until the subscription set up
// by the server goroutine is visible.
func broadcastUntilDelivered(hub *Hub, record *domain.CheatingLog) int {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if n := hub.Broadcast(record); n > 0 {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
	return 0
}

func TestMonitorDeliversBroadcasts(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(NewWebSocketHandler(hub, "", true))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, server.URL+"/?examId=E1", nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	record := &domain.CheatingLog{ExamID: "E1", Username: "alice", NoFaceCount: 4}
	if n := broadcastUntilDelivered(hub, record); n != 1 {
		t.Fatalf("Expected delivery to one subscriber, got %d", n)
	}

	_, payload, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var got domain.CheatingLog
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("Failed to decode broadcast payload: %v", err)
	}
	if got.ExamID != "E1" || got.Username != "alice" || got.NoFaceCount != 4 {
		t.Errorf("Unexpected broadcast record: %+v", got)
	}
}

func TestBroadcastScopedToExam(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(NewWebSocketHandler(hub, "", true))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, server.URL+"/?examId=E1", nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if n := broadcastUntilDelivered(hub, &domain.CheatingLog{ExamID: "E1"}); n != 1 {
		t.Fatalf("Expected subscriber on E1, got %d deliveries", n)
	}

	if n := hub.Broadcast(&domain.CheatingLog{ExamID: "E2"}); n != 0 {
		t.Errorf("Expected no deliveries for a different exam, got %d", n)
	}
}

func TestCloseExamDropsSubscribers(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(NewWebSocketHandler(hub, "", true))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, server.URL+"/?examId=E1", nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if n := broadcastUntilDelivered(hub, &domain.CheatingLog{ExamID: "E1"}); n != 1 {
		t.Fatalf("Expected subscriber on E1, got %d deliveries", n)
	}
	if _, _, err := conn.Read(ctx); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	hub.CloseExam("E1")

	if n := hub.Broadcast(&domain.CheatingLog{ExamID: "E1"}); n != 0 {
		t.Errorf("Expected no deliveries after CloseExam, got %d", n)
	}
}

func TestWebSocketRequiresExamID(t *testing.T) {
	server := httptest.NewServer(NewWebSocketHandler(NewHub(), "", true))
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 without examId, got %d", resp.StatusCode)
	}
}

func TestWebSocketOriginCheck(t *testing.T) {
	server := httptest.NewServer(NewWebSocketHandler(NewHub(), "https://exam.example.com", false))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/?examId=E1", nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected 403 for a foreign origin, got %d", resp.StatusCode)
	}
}
