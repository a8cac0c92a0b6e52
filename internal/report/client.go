// Package report submits session aggregates to the aggregation store and
// reads them back for review tooling.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ashureev/examwatch/internal/domain"
)

// ErrRejected is returned when the server rejects a submission as invalid
// (4xx). Retrying the same payload will not help.
var ErrRejected = errors.New("submission rejected")

// Client talks to the aggregation store's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetry sets the transient-failure retry budget. maxRetries counts total
// attempts; baseDelay is doubled after each failed attempt.
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a reporting client against the given server base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		maxRetries: 3,
		baseDelay:  500 * time.Millisecond,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// submitResponse mirrors the server's upsert envelope.
type submitResponse struct {
	Success bool               `json:"success"`
	Data    domain.CheatingLog `json:"data"`
	Error   string             `json:"error"`
}

// Submit upserts the aggregate on the server. Transient failures (network
// errors, 5xx) are retried with exponential backoff; validation failures
// return ErrRejected immediately. The passed log is never mutated, so the
// caller's aggregate remains valid for a later retry regardless of outcome.
func (c *Client) Submit(ctx context.Context, log domain.CheatingLog) error {
	body, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode cheating log: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay * time.Duration(1<<(attempt-1)) // exponential backoff
			c.logger.Debug("Retrying cheating log submission",
				"exam_id", log.ExamID,
				"attempt", attempt+1,
				"delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = c.submitOnce(ctx, body)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, ErrRejected) || ctx.Err() != nil {
			return lastErr
		}
	}

	return fmt.Errorf("submit cheating log after %d attempts: %w", c.maxRetries, lastErr)
}

func (c *Client) submitOnce(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users/cheatingLogs", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post cheating log: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var ack submitResponse
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			return fmt.Errorf("decode submit response: %w", err)
		}
		if !ack.Success {
			return fmt.Errorf("%w: %s", ErrRejected, ack.Error)
		}
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		msg := readErrorMessage(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, msg)
	default:
		return fmt.Errorf("post cheating log: unexpected status %d", resp.StatusCode)
	}
}

// Logs fetches all cheating log records for an exam.
func (c *Client) Logs(ctx context.Context, examID string) ([]domain.CheatingLog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/cheatingLogs/"+examID, nil)
	if err != nil {
		return nil, fmt.Errorf("build logs request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get cheating logs: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get cheating logs: unexpected status %d", resp.StatusCode)
	}

	var logs []domain.CheatingLog
	if err := json.NewDecoder(resp.Body).Decode(&logs); err != nil {
		return nil, fmt.Errorf("decode cheating logs: %w", err)
	}
	return logs, nil
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil || payload.Error == "" {
		return "unknown error"
	}
	return payload.Error
}
