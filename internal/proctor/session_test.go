package proctor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ashureev/examwatch/internal/detect"
	"github.com/ashureev/examwatch/internal/domain"
	"github.com/benbjohnson/clock"
)

type sourceFunc func(ctx context.Context) ([]byte, error)

func (f sourceFunc) Next(ctx context.Context) ([]byte, error) { return f(ctx) }

type detectorFunc func(ctx context.Context, frame []byte) ([]detect.Detection, error)

func (f detectorFunc) Detect(ctx context.Context, frame []byte) ([]detect.Detection, error) {
	return f(ctx, frame)
}

type fakeReporter struct {
	mu   sync.Mutex
	subs []domain.CheatingLog
	err  error
}

func (r *fakeReporter) Submit(_ context.Context, log domain.CheatingLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.subs = append(r.subs, log)
	return nil
}

func (r *fakeReporter) submissions() []domain.CheatingLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.CheatingLog, len(r.subs))
	copy(out, r.subs)
	return out
}

func staticFrame(context.Context) ([]byte, error) {
	return []byte{0xff, 0xd8}, nil
}

// waitPass blocks until the detector has been handed a frame, then yields
// long enough for the rest of the pass to finish before the clock moves.
func waitPass(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		time.Sleep(10 * time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for an inference pass")
	}
}

func TestSessionContinuousNoFaceRespectsCooldown(t *testing.T) {
	mock := clock.NewMock()
	passes := make(chan struct{}, 32)

	// An empty frame every tick: the classifier reports noFace each time.
	detector := detectorFunc(func(context.Context, []byte) ([]detect.Detection, error) {
		passes <- struct{}{}
		return nil, nil
	})

	gate := NewGate(3*time.Second, mock)
	agg := NewAggregate("E1", "alice", "a@x.com")
	reporter := &fakeReporter{}

	session := NewSession(sourceFunc(staticFrame), detector, gate, agg, reporter, SessionConfig{
		TickInterval: time.Second,
		Clock:        mock,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	waitPass(t, passes) // immediate pass at t=0
	for i := 0; i < 9; i++ {
		mock.Add(time.Second)
		waitPass(t, passes)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Accepted at t=0, 3, 6 and 9; rejected in between.
	if got := agg.Count(domain.NoFace); got != 4 {
		t.Errorf("Expected 4 noFace events over 10s with a 3s cooldown, got %d", got)
	}

	subs := reporter.submissions()
	if len(subs) != 1 {
		t.Fatalf("Expected exactly one final submission, got %d", len(subs))
	}
	if subs[0].NoFaceCount != 4 {
		t.Errorf("Expected final snapshot noFaceCount 4, got %d", subs[0].NoFaceCount)
	}
	if subs[0].ExamID != "E1" || subs[0].Email != "a@x.com" {
		t.Errorf("Final snapshot identity mismatch: %+v", subs[0])
	}
}

func TestSessionDetectorErrorSkipsTick(t *testing.T) {
	mock := clock.NewMock()
	passes := make(chan struct{}, 32)

	calls := 0
	detector := detectorFunc(func(context.Context, []byte) ([]detect.Detection, error) {
		calls++
		defer func() { passes <- struct{}{} }()
		if calls == 2 {
			return nil, errors.New("inference backend unavailable")
		}
		return nil, nil
	})

	gate := NewGate(time.Second, mock)
	agg := NewAggregate("E1", "alice", "")

	session := NewSession(sourceFunc(staticFrame), detector, gate, agg, nil, SessionConfig{
		TickInterval: time.Second,
		Clock:        mock,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	waitPass(t, passes) // t=0: success
	mock.Add(time.Second)
	waitPass(t, passes) // t=1: detector fails, tick skipped
	mock.Add(time.Second)
	waitPass(t, passes) // t=2: success again

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := agg.Count(domain.NoFace); got != 2 {
		t.Errorf("Expected the failed tick to contribute nothing, got count %d", got)
	}
}

func TestSessionCancellationDuringDetectNotRecorded(t *testing.T) {
	detector := detectorFunc(func(ctx context.Context, _ []byte) ([]detect.Detection, error) {
		<-ctx.Done()
		return nil, nil
	})

	gate := NewGate(time.Second, clock.NewMock())
	agg := NewAggregate("E1", "alice", "")

	session := NewSession(sourceFunc(staticFrame), detector, gate, agg, nil, SessionConfig{
		TickInterval: time.Second,
		Clock:        clock.NewMock(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := agg.Count(domain.NoFace); got != 0 {
		t.Errorf("Expected a pass straddling cancellation to record nothing, got %d", got)
	}
}

func TestSessionFinalFlushFailureKeepsAggregate(t *testing.T) {
	mock := clock.NewMock()
	passes := make(chan struct{}, 32)

	detector := detectorFunc(func(context.Context, []byte) ([]detect.Detection, error) {
		passes <- struct{}{}
		return []detect.Detection{
			{Label: "person", Confidence: 0.95},
			{Label: "cell phone", Confidence: 0.88},
		}, nil
	})

	gate := NewGate(3*time.Second, mock)
	agg := NewAggregate("E1", "alice", "a@x.com")
	reporter := &fakeReporter{err: errors.New("connection refused")}

	session := NewSession(sourceFunc(staticFrame), detector, gate, agg, reporter, SessionConfig{
		TickInterval: time.Second,
		Clock:        mock,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	waitPass(t, passes)
	cancel()

	err := <-done
	if err == nil {
		t.Fatal("Expected the final submission failure to be returned")
	}
	if !strings.Contains(err.Error(), "submit final proctoring log") {
		t.Errorf("Unexpected error: %v", err)
	}

	// The counts survive a failed flush so the caller can retry.
	if got := session.Aggregate().Count(domain.CellPhone); got != 1 {
		t.Errorf("Expected cellPhone count 1 after failed flush, got %d", got)
	}
}

func TestSessionPeriodicFlush(t *testing.T) {
	mock := clock.NewMock()
	passes := make(chan struct{}, 32)

	detector := detectorFunc(func(context.Context, []byte) ([]detect.Detection, error) {
		passes <- struct{}{}
		return nil, nil
	})

	gate := NewGate(time.Second, mock)
	agg := NewAggregate("E1", "alice", "a@x.com")
	reporter := &fakeReporter{}

	session := NewSession(sourceFunc(staticFrame), detector, gate, agg, reporter, SessionConfig{
		TickInterval:  time.Second,
		FlushInterval: 2 * time.Second,
		Clock:         mock,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	waitPass(t, passes) // t=0
	time.Sleep(50 * time.Millisecond) // let the flush loop arm its ticker
	mock.Add(time.Second)
	waitPass(t, passes) // t=1
	mock.Add(time.Second)
	waitPass(t, passes) // t=2, flush interval elapsed

	deadline := time.Now().Add(2 * time.Second)
	for len(reporter.submissions()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	subs := reporter.submissions()
	if len(subs) == 0 {
		t.Fatal("Expected a periodic flush submission")
	}
	if subs[0].NoFaceCount < 2 {
		t.Errorf("Expected the periodic snapshot to carry at least 2 noFace events, got %d", subs[0].NoFaceCount)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := len(reporter.submissions()); got < 2 {
		t.Errorf("Expected the final flush on top of periodic ones, got %d submissions", got)
	}
}
