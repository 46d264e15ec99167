package scanstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"starshelf/internal/config"
)

// Run kinds recorded in the history.
const (
	KindDuplicateScan = "duplicate-scan"
	KindSortMaster    = "sort-master"
)

// Run is one recorded batch execution.
type Run struct {
	ID         string
	Kind       string
	StartedAt  time.Time
	FinishedAt time.Time
	// Moved and Skipped are routing counters; Groups and Files are
	// duplicate-scan counters. The unused pair stays zero.
	Moved      int
	Skipped    int
	Groups     int
	Files      int
	OutputPath string
}

// Store manages run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// Open initializes or connects to the history database under the state
// directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureStateDir(); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StateDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS scan_runs (
    id          TEXT PRIMARY KEY,
    kind        TEXT NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    moved       INTEGER NOT NULL DEFAULT 0,
    skipped     INTEGER NOT NULL DEFAULT 0,
    group_count INTEGER NOT NULL DEFAULT 0,
    file_count  INTEGER NOT NULL DEFAULT 0,
    output_path TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_scan_runs_started ON scan_runs(started_at DESC);
`
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, schema)
		return err
	})
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one run. A missing id is assigned.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Kind == "" {
		return errors.New("run kind is required")
	}
	const insert = `
INSERT INTO scan_runs (id, kind, started_at, finished_at, moved, skipped, group_count, file_count, output_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, insert,
			run.ID,
			run.Kind,
			run.StartedAt.UTC().Format(time.RFC3339Nano),
			run.FinishedAt.UTC().Format(time.RFC3339Nano),
			run.Moved,
			run.Skipped,
			run.Groups,
			run.Files,
			run.OutputPath,
		)
		return err
	})
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
SELECT id, kind, started_at, finished_at, moved, skipped, group_count, file_count, output_path
FROM scan_runs
ORDER BY started_at DESC, id
`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var runs []Run
	err := retryOnBusy(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		runs = runs[:0]
		for rows.Next() {
			var run Run
			var startedAt, finishedAt string
			if err := rows.Scan(
				&run.ID,
				&run.Kind,
				&startedAt,
				&finishedAt,
				&run.Moved,
				&run.Skipped,
				&run.Groups,
				&run.Files,
				&run.OutputPath,
			); err != nil {
				return err
			}
			run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
			run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedAt)
			runs = append(runs, run)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
