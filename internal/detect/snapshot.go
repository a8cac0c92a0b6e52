package detect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxFrameBytes caps how much image data one snapshot may carry. Frames
// beyond this are corrupt or misconfigured, not real webcam captures.
const maxFrameBytes = 8 << 20

// SnapshotSource pulls frames from a webcam snapshot endpoint, one GET per
// inference tick.
type SnapshotSource struct {
	url    string
	client *http.Client
}

// NewSnapshotSource creates a frame source reading from the given snapshot URL.
func NewSnapshotSource(url string) *SnapshotSource {
	return &SnapshotSource{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Next fetches one frame. The returned bytes are owned by the caller.
func (s *SnapshotSource) Next(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build snapshot request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch snapshot: unexpected status %d", resp.StatusCode)
	}

	frame, err := io.ReadAll(io.LimitReader(resp.Body, maxFrameBytes))
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}
	if len(frame) == 0 {
		return nil, fmt.Errorf("read snapshot body: empty frame")
	}
	return frame, nil
}
