// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/ashureev/examwatch/internal/domain"
)

// Repository defines the interface for persisting cheating log aggregates.
type Repository interface {
	// UpsertCheatingLog creates or overwrites the record keyed by
	// (exam, identity). Repeated submissions for the same key update one
	// record; counts are replaced wholesale, never summed.
	UpsertCheatingLog(ctx context.Context, log *domain.CheatingLog) (*domain.CheatingLog, error)

	// ListCheatingLogs returns all records for an exam, most recently
	// updated first.
	ListCheatingLogs(ctx context.Context, examID string) ([]*domain.CheatingLog, error)

	// Ping verifies database connectivity and returns an error if the database is unreachable.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
