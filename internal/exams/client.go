// Package exams is a thin client for the exam service collaborator. The
// proctoring pipeline only reads exam metadata; exam CRUD lives elsewhere.
package exams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ashureev/examwatch/internal/domain"
)

// Client reads exam metadata from the exam service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an exam service client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Exam fetches one exam by ID. The proctoring session uses its duration to
// bound the detection loop.
func (c *Client) Exam(ctx context.Context, examID string) (*domain.Exam, error) {
	var exam domain.Exam
	if err := c.getJSON(ctx, "/api/exams/"+examID, &exam); err != nil {
		return nil, fmt.Errorf("get exam %s: %w", examID, err)
	}
	if exam.ExamID == "" {
		exam.ExamID = examID
	}
	return &exam, nil
}

// Question fetches the coding question attached to an exam.
func (c *Client) Question(ctx context.Context, examID string) (*domain.Question, error) {
	var question domain.Question
	if err := c.getJSON(ctx, "/api/exams/"+examID+"/question", &question); err != nil {
		return nil, fmt.Errorf("get question for exam %s: %w", examID, err)
	}
	return &question, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
