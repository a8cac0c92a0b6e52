package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ashureev/examwatch/internal/config"
	"github.com/ashureev/examwatch/internal/domain"
	"github.com/ashureev/examwatch/internal/identity"
	"github.com/ashureev/examwatch/internal/store"
	"github.com/go-chi/chi/v5"
)

// maxSubmissionBytes bounds the cheating log request body. Aggregates are a
// handful of integers; anything bigger is malformed.
const maxSubmissionBytes = 64 << 10

// ProctorHandler handles cheating log endpoints.
type ProctorHandler struct {
	*Handler
}

// NewProctorHandler creates a new proctoring log handler.
func NewProctorHandler(base *Handler) *ProctorHandler {
	return &ProctorHandler{Handler: base}
}

// RegisterRoutes registers cheating log routes.
func (h *ProctorHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/cheatingLogs", h.SaveCheatingLog)
		r.Get("/cheatingLogs/{examId}", h.GetCheatingLogs)
	})
}

// SaveCheatingLog upserts a submitted aggregate keyed by (exam, identity).
// Identity fields missing from the body default from the authenticated
// request context, so a record is always pinned to the session's identity.
func (h *ProctorHandler) SaveCheatingLog(w http.ResponseWriter, r *http.Request) {
	var log domain.CheatingLog
	body := http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
	if err := json.NewDecoder(body).Decode(&log); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if log.Username == "" {
		log.Username = identity.UsernameFromContext(r.Context())
	}
	if log.Email == "" {
		log.Email = identity.EmailFromContext(r.Context())
	}

	if err := log.Validate(); err != nil {
		if h.metrics != nil {
			h.metrics.ValidationRejections.Inc()
		}
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	record, err := h.repo.UpsertCheatingLog(r.Context(), &log)
	if h.metrics != nil {
		h.metrics.UpsertDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if errors.Is(err, domain.ErrMissingExamID) || errors.Is(err, domain.ErrMissingIdentity) {
			if h.metrics != nil {
				h.metrics.LogUpserts.WithLabelValues("rejected").Inc()
			}
			Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Failed to upsert cheating log", "error", err, "exam_id", log.ExamID)
		if h.metrics != nil {
			h.metrics.LogUpserts.WithLabelValues("error").Inc()
		}
		Error(w, http.StatusInternalServerError, "failed to save cheating log")
		return
	}

	slog.Info("Cheating log saved",
		"exam_id", record.ExamID,
		"identity", record.IdentityKey(),
		"no_face", record.NoFaceCount,
		"multiple_face", record.MultipleFaceCount,
		"cell_phone", record.CellPhoneCount,
		"prohibited_object", record.ProhibitedObjectCount)

	if h.metrics != nil {
		h.metrics.LogUpserts.WithLabelValues("ok").Inc()
	}

	// Push the fresh record to live monitors off the request path.
	if h.hub != nil {
		broadcast := *record
		go func() {
			delivered := h.hub.Broadcast(&broadcast)
			if delivered > 0 && h.metrics != nil {
				h.metrics.MonitorBroadcasts.Add(float64(delivered))
			}
		}()
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    record,
	})
}

// GetCheatingLogs returns all records for an exam, most recently updated first.
func (h *ProctorHandler) GetCheatingLogs(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "examId")
	if examID == "" {
		Error(w, http.StatusBadRequest, domain.ErrMissingExamID.Error())
		return
	}

	logs, err := h.repo.ListCheatingLogs(r.Context(), examID)
	if err != nil {
		slog.Error("Failed to list cheating logs", "error", err, "exam_id", examID)
		Error(w, http.StatusInternalServerError, "failed to load cheating logs")
		return
	}
	if logs == nil {
		logs = []*domain.CheatingLog{}
	}

	JSON(w, http.StatusOK, logs)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	repo store.Repository
	cfg  *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(repo store.Repository, cfg *config.Config) *HealthHandler {
	return &HealthHandler{repo: repo, cfg: cfg}
}

// Health returns the health status of the API and its dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]interface{}{
		"status": "healthy",
		"checks": map[string]string{"api": "ok"},
	}
	statusCode := http.StatusOK

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("Health check failed", "error", err)
		status["status"] = "degraded"
		status["checks"].(map[string]string)["database"] = "unreachable"
		statusCode = http.StatusServiceUnavailable
	} else {
		status["checks"].(map[string]string)["database"] = "ok"
	}

	JSON(w, statusCode, status)
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/healthz", h.Health)
}
