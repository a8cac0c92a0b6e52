// Examwatch - proctoring log aggregation server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashureev/examwatch/internal/api"
	"github.com/ashureev/examwatch/internal/config"
	"github.com/ashureev/examwatch/internal/identity"
	"github.com/ashureev/examwatch/internal/metrics"
	"github.com/ashureev/examwatch/internal/middleware"
	"github.com/ashureev/examwatch/internal/monitor"
	"github.com/ashureev/examwatch/internal/store"
	"github.com/ashureev/examwatch/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
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

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	m := metrics.New()
	hub := monitor.NewHub()

	// Initialize handlers.
	baseHandler := api.NewHandler(repo, hub, m)
	proctorHandler := api.NewProctorHandler(baseHandler)
	healthHandler := api.NewHealthHandler(repo, cfg)
	wsHandler := monitor.NewWebSocketHandler(hub, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware())

	// Public routes.
	healthHandler.RegisterHealth(r)
	r.Handle("/metrics", m.Handler())

	// Cheating log routes.
	proctorHandler.RegisterRoutes(r)

	// WebSocket endpoint for the live instructor monitor.
	r.Get("/ws/monitor", wsHandler.ServeHTTP)

	// Serve the embedded monitor page.
	r.Handle("/*", web.MonitorHandler())

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // monitor sockets stay open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
