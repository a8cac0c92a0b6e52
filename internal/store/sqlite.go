package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ashureev/examwatch/internal/domain"
	"github.com/ashureev/examwatch/internal/shared"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS cheating_logs (
		exam_id TEXT NOT NULL,
		identity_key TEXT NOT NULL,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		no_face_count INTEGER NOT NULL DEFAULT 0,
		multiple_face_count INTEGER NOT NULL DEFAULT 0,
		cell_phone_count INTEGER NOT NULL DEFAULT 0,
		prohibited_object_count INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (exam_id, identity_key)
	);
	CREATE INDEX IF NOT EXISTS idx_cheating_logs_exam_updated ON cheating_logs(exam_id, updated_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// UpsertCheatingLog creates or overwrites the record for the log's
// (exam, identity) key. The whole row is written atomically, so two
// near-simultaneous submissions never interleave at counter granularity:
// the later upsert wins wholesale.
func (s *SQLiteStore) UpsertCheatingLog(ctx context.Context, log *domain.CheatingLog) (*domain.CheatingLog, error) {
	if err := log.Validate(); err != nil {
		return nil, err
	}

	query := `
	INSERT INTO cheating_logs (
		exam_id, identity_key, username, email,
		no_face_count, multiple_face_count, cell_phone_count, prohibited_object_count,
		created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(exam_id, identity_key) DO UPDATE SET
		username = excluded.username,
		email = excluded.email,
		no_face_count = excluded.no_face_count,
		multiple_face_count = excluded.multiple_face_count,
		cell_phone_count = excluded.cell_phone_count,
		prohibited_object_count = excluded.prohibited_object_count,
		updated_at = excluded.updated_at`

	now := time.Now()
	err := shared.WithSQLiteRetry(ctx, 3, 100*time.Millisecond, func() error {
		_, execErr := s.db.ExecContext(ctx, query,
			log.ExamID, log.IdentityKey(), log.Username, log.Email,
			log.NoFaceCount, log.MultipleFaceCount, log.CellPhoneCount, log.ProhibitedObjectCount,
			now.Unix(), now.Unix(),
		)
		return execErr
	})
	if err != nil {
		return nil, fmt.Errorf("upsert cheating log: %w", err)
	}

	return s.getCheatingLog(ctx, log.ExamID, log.IdentityKey())
}

func (s *SQLiteStore) getCheatingLog(ctx context.Context, examID, identityKey string) (*domain.CheatingLog, error) {
	query := `
		SELECT exam_id, username, email,
		       no_face_count, multiple_face_count, cell_phone_count, prohibited_object_count,
		       created_at, updated_at
		FROM cheating_logs WHERE exam_id = ? AND identity_key = ?`

	row := s.db.QueryRowContext(ctx, query, examID, identityKey)
	log, err := scanCheatingLog(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan cheating log row: %w", err)
	}
	return log, nil
}

// ListCheatingLogs retrieves all records for an exam, most recently updated
// first so fresh submissions surface at the top of the instructor view.
func (s *SQLiteStore) ListCheatingLogs(ctx context.Context, examID string) ([]*domain.CheatingLog, error) {
	if examID == "" {
		return nil, domain.ErrMissingExamID
	}

	query := `
		SELECT exam_id, username, email,
		       no_face_count, multiple_face_count, cell_phone_count, prohibited_object_count,
		       created_at, updated_at
		FROM cheating_logs WHERE exam_id = ?
		ORDER BY updated_at DESC, identity_key ASC`

	rows, err := s.db.QueryContext(ctx, query, examID)
	if err != nil {
		return nil, fmt.Errorf("query cheating logs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close cheating log rows", "error", closeErr)
		}
	}()

	var logs []*domain.CheatingLog
	for rows.Next() {
		log, err := scanCheatingLog(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan cheating log row: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cheating logs: %w", err)
	}

	return logs, nil
}

func scanCheatingLog(scan func(dest ...interface{}) error) (*domain.CheatingLog, error) {
	var log domain.CheatingLog
	var createdAt, updatedAt int64

	err := scan(
		&log.ExamID, &log.Username, &log.Email,
		&log.NoFaceCount, &log.MultipleFaceCount, &log.CellPhoneCount, &log.ProhibitedObjectCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	log.CreatedAt = time.Unix(createdAt, 0)
	log.UpdatedAt = time.Unix(updatedAt, 0)
	return &log, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
