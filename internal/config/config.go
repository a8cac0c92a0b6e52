// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration. Server and agent binaries
// read the sections relevant to them.
type Config struct {
	// Server.
	Port        string
	FrontendURL string
	DBPath      string

	// Proctoring agent.
	Proctor ProctorConfig
}

// ProctorConfig controls the client-side proctoring agent.
type ProctorConfig struct {
	ServerURL      string
	DetectorAddr   string
	SnapshotURL    string
	ExamServiceURL string
	ExamID         string
	Cooldown       time.Duration
	TickInterval   time.Duration
	FlushInterval  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", "./data/examwatch.db"),
		Proctor: ProctorConfig{
			ServerURL:      getEnv("SERVER_URL", "http://localhost:8080"),
			DetectorAddr:   getEnv("DETECTOR_ADDR", "localhost:50061"),
			SnapshotURL:    getEnv("SNAPSHOT_URL", "http://localhost:8081/snapshot"),
			ExamServiceURL: getEnv("EXAM_SERVICE_URL", ""),
			ExamID:         getEnv("EXAM_ID", ""),
			Cooldown:       getEnvDuration("PROCTOR_COOLDOWN", 3*time.Second),
			TickInterval:   getEnvDuration("PROCTOR_TICK", time.Second),
			FlushInterval:  getEnvDuration("FLUSH_INTERVAL", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Proctor.Cooldown <= 0 {
		return fmt.Errorf("PROCTOR_COOLDOWN must be > 0")
	}
	if c.Proctor.TickInterval <= 0 {
		return fmt.Errorf("PROCTOR_TICK must be > 0")
	}
	if c.Proctor.FlushInterval < 0 {
		return fmt.Errorf("FLUSH_INTERVAL cannot be negative")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Bare numbers are taken as seconds.
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
