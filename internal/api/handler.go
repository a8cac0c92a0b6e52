// Package api provides HTTP handlers for the examwatch API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ashureev/examwatch/internal/metrics"
	"github.com/ashureev/examwatch/internal/monitor"
	"github.com/ashureev/examwatch/internal/store"
)

// Handler provides common handler utilities.
type Handler struct {
	repo    store.Repository
	hub     *monitor.Hub
	metrics *metrics.Metrics
}

// NewHandler creates a new Handler with common dependencies. hub and m may
// be nil; broadcasting and instrumentation are then skipped.
func NewHandler(repo store.Repository, hub *monitor.Hub, m *metrics.Metrics) *Handler {
	return &Handler{
		repo:    repo,
		hub:     hub,
		metrics: m,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
