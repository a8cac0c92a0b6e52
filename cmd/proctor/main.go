// Examwatch - client-side proctoring agent
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashureev/examwatch/internal/config"
	"github.com/ashureev/examwatch/internal/detect"
	"github.com/ashureev/examwatch/internal/domain"
	"github.com/ashureev/examwatch/internal/exams"
	"github.com/ashureev/examwatch/internal/proctor"
	"github.com/ashureev/examwatch/internal/report"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	examID := cfg.Proctor.ExamID
	if examID == "" {
		slog.Error("EXAM_ID is required")
		os.Exit(1)
	}

	// Identity is injected by the authenticating wrapper that launches the
	// agent; the agent itself does not implement login.
	username := os.Getenv("STUDENT_NAME")
	email := os.Getenv("STUDENT_EMAIL")
	if username == "" && email == "" {
		slog.Error("STUDENT_NAME or STUDENT_EMAIL is required")
		os.Exit(1)
	}

	slog.Info("Starting proctoring agent",
		"exam_id", examID,
		"detector", cfg.Proctor.DetectorAddr,
		"server", cfg.Proctor.ServerURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bound the session by the exam duration when the exam service is
	// reachable; otherwise run until interrupted.
	if cfg.Proctor.ExamServiceURL != "" {
		examClient := exams.NewClient(cfg.Proctor.ExamServiceURL)
		exam, err := examClient.Exam(ctx, examID)
		if err != nil {
			slog.Warn("Failed to load exam metadata, running unbounded", "error", err)
		} else {
			slog.Info("Exam loaded", "name", exam.Name, "duration_min", exam.Duration)
			if question, err := examClient.Question(ctx, examID); err == nil {
				slog.Info("Exam question", "id", question.ID, "prompt", question.Prompt)
			}
			if d := exam.SessionDuration(); d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}
		}
	}

	detector, err := detect.NewGRPCDetector(cfg.Proctor.DetectorAddr, logger)
	if err != nil {
		slog.Error("Detector unavailable, proctoring cannot start", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := detector.Close(); closeErr != nil {
			slog.Warn("Failed to close detector", "error", closeErr)
		}
	}()

	source := detect.NewSnapshotSource(cfg.Proctor.SnapshotURL)
	reporter := report.NewClient(cfg.Proctor.ServerURL, report.WithLogger(logger))
	gate := proctor.NewGate(cfg.Proctor.Cooldown, nil)
	agg := proctor.NewAggregate(examID, username, email)

	session := proctor.NewSession(source, detector, gate, agg, reporter, proctor.SessionConfig{
		TickInterval:  cfg.Proctor.TickInterval,
		FlushInterval: cfg.Proctor.FlushInterval,
		Logger:        logger,
		OnEvent: func(cat domain.Category, count int) {
			slog.Warn("Suspicious activity recorded", "category", cat, "count", count)
		},
	})

	err = session.Run(ctx)

	final := session.Aggregate().Snapshot()
	slog.Info("Session finished",
		"no_face", final.NoFaceCount,
		"multiple_face", final.MultipleFaceCount,
		"cell_phone", final.CellPhoneCount,
		"prohibited_object", final.ProhibitedObjectCount)

	// A failed final submission never blocks the exam; the student is told
	// their monitoring data may be incomplete and the agent exits cleanly.
	if err != nil {
		slog.Warn("Proctoring log submission failed; monitoring data may be incomplete", "error", err)
	}
}
