package detect

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSnapshotSourceNext(t *testing.T) {
	frame := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(frame)
	}))
	defer server.Close()

	source := NewSnapshotSource(server.URL)
	got, err := source.Next(context.Background())
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if !bytes.Equal(got, frame) {
		t.Errorf("Frame mismatch: got %x, want %x", got, frame)
	}
}

func TestSnapshotSourceRejectsEmptyFrame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	source := NewSnapshotSource(server.URL)
	if _, err := source.Next(context.Background()); err == nil {
		t.Fatal("Expected an error for an empty frame")
	}
}

func TestSnapshotSourceRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "camera offline", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewSnapshotSource(server.URL)
	if _, err := source.Next(context.Background()); err == nil {
		t.Fatal("Expected an error for a 503 response")
	}
}

func TestSnapshotSourceHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewSnapshotSource(server.URL)
	if _, err := source.Next(ctx); err == nil {
		t.Fatal("Expected an error for a cancelled context")
	}
}
