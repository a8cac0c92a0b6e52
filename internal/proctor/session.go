package proctor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ashureev/examwatch/internal/detect"
	"github.com/ashureev/examwatch/internal/domain"
	"github.com/benbjohnson/clock"
)

// DefaultTickInterval is how often the session runs one inference pass.
const DefaultTickInterval = time.Second

// Reporter submits a session aggregate to the aggregation store.
type Reporter interface {
	Submit(ctx context.Context, log domain.CheatingLog) error
}

// EventFunc is invoked for every gate-accepted violation event with the
// category and the new aggregate count for it.
type EventFunc func(cat domain.Category, count int)

// SessionConfig configures a proctoring session.
type SessionConfig struct {
	// TickInterval is the inference cadence. Defaults to DefaultTickInterval.
	TickInterval time.Duration
	// FlushInterval controls periodic submission of the running aggregate.
	// Zero disables periodic flushing; the final flush on stop still happens.
	FlushInterval time.Duration
	// Clock defaults to the wall clock. Tests inject a mock.
	Clock clock.Clock
	// OnEvent, if set, is called for each accepted event.
	OnEvent EventFunc
	Logger  *slog.Logger
}

// Session owns one exam attempt's proctoring pipeline: it drives the
// capture → detect → classify → gate → aggregate chain on a fixed tick and
// periodically hands aggregate snapshots to the reporter.
//
// The tick loop is single-threaded: one tick runs to completion before the
// next is taken. The underlying ticker buffers at most one pending tick, so
// a slow detector call delays ticks instead of queueing them unboundedly.
type Session struct {
	source   detect.FrameSource
	detector detect.Detector
	gate     *Gate
	agg      *Aggregate
	reporter Reporter

	tickInterval  time.Duration
	flushInterval time.Duration
	clock         clock.Clock
	onEvent       EventFunc
	logger        *slog.Logger
}

// NewSession wires a session together. The gate is reset so no cooldown
// state leaks between attempts.
func NewSession(source detect.FrameSource, detector detect.Detector, gate *Gate, agg *Aggregate, reporter Reporter, cfg SessionConfig) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	gate.Reset()
	return &Session{
		source:        source,
		detector:      detector,
		gate:          gate,
		agg:           agg,
		reporter:      reporter,
		tickInterval:  cfg.TickInterval,
		flushInterval: cfg.FlushInterval,
		clock:         cfg.Clock,
		onEvent:       cfg.OnEvent,
		logger:        cfg.Logger,
	}
}

// Aggregate returns the session's live aggregate. After Run returns, the
// caller may snapshot it again for a retry if the final submission failed.
func (s *Session) Aggregate() *Aggregate {
	return s.agg
}

// Run drives the inference loop until ctx is cancelled, then submits a final
// snapshot. It returns the final submission error, if any; the aggregate
// stays intact either way so the caller can retry. No tick fires after
// cancellation.
func (s *Session) Run(ctx context.Context) error {
	ticker := s.clock.Ticker(s.tickInterval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	if s.flushInterval > 0 && s.reporter != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.flushLoop(ctx)
		}()
	}

	s.logger.Info("Proctoring session started", "tick", s.tickInterval, "flush", s.flushInterval)

	// First pass immediately so a violation present at start is recorded at t≈0.
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			err := s.finalFlush()
			s.logger.Info("Proctoring session stopped", "reason", ctx.Err())
			return err
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one synchronous inference pass. Capture or detector failures
// skip the pass; the session continues without that tick's signal.
func (s *Session) tick(ctx context.Context) {
	frame, err := s.source.Next(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("Frame capture failed, skipping tick", "error", err)
		}
		return
	}

	dets, err := s.detector.Detect(ctx, frame)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("Detector failed, skipping tick", "error", err)
		}
		return
	}

	// A detect call that straddled cancellation must not touch the aggregate.
	if ctx.Err() != nil {
		return
	}

	for _, cat := range detect.Classify(dets) {
		if !s.gate.Accept(cat) {
			continue
		}
		s.agg.Record(cat)
		count := s.agg.Count(cat)
		s.logger.Info("Violation recorded", "category", cat, "count", count)
		if s.onEvent != nil {
			s.onEvent(cat, count)
		}
	}
}

// flushLoop periodically submits the running aggregate. Failures are logged
// and the next interval tries again with the then-current counts.
func (s *Session) flushLoop(ctx context.Context) {
	ticker := s.clock.Ticker(s.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := s.agg.Snapshot()
			if err := s.reporter.Submit(ctx, snap); err != nil {
				if ctx.Err() == nil {
					s.logger.Warn("Periodic flush failed, counts retained", "error", err)
				}
			}
		}
	}
}

// finalFlush submits the session's last snapshot on a fresh context; the
// run context is already cancelled by the time it is called.
func (s *Session) finalFlush() error {
	if s.reporter == nil {
		return nil
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.reporter.Submit(flushCtx, s.agg.Snapshot()); err != nil {
		return fmt.Errorf("submit final proctoring log: %w", err)
	}
	return nil
}
