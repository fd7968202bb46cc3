// Package jobstore keeps an append-only audit log of extraction runs in a
// local SQLite file. It is write-only from the pipeline's point of view:
// rows are never read back to short-circuit an extraction, so identical
// inputs still re-invoke the model.
package jobstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/docfields/constants"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS extract_jobs (
	id          TEXT PRIMARY KEY,
	doc_type    TEXT NOT NULL,
	source      TEXT NOT NULL,
	status      TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	elapsed_ms  INTEGER NOT NULL,
	field_count INTEGER NOT NULL,
	result_json TEXT
);
CREATE INDEX IF NOT EXISTS idx_extract_jobs_started_at ON extract_jobs(started_at);
`

type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// JobRecord is one finished extraction run.
type JobRecord struct {
	ID         string
	DocType    string
	Source     string
	Status     constants.JobStatus
	StartedAt  time.Time
	Elapsed    time.Duration
	FieldCount int
	ResultJSON []byte
}

func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init audit db: %w", err)
	}
	logger.Info("jobstore.open", "path", path)
	return &Store{db: db, log: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a finished run. Failures are the caller's to log; the
// extraction result has already been produced and must not be lost to an
// audit write error.
func (s *Store) Append(ctx context.Context, rec JobRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO extract_jobs
		   (id, doc_type, source, status, started_at, elapsed_ms, field_count, result_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.DocType,
		rec.Source,
		string(rec.Status),
		// RFC3339 in UTC keeps lexicographic ordering consistent with time.
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.Elapsed.Milliseconds(),
		rec.FieldCount,
		string(rec.ResultJSON),
	)
	if err != nil {
		return fmt.Errorf("append job: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]JobRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doc_type, source, status, started_at, elapsed_ms, field_count, result_json
		   FROM extract_jobs
		  ORDER BY started_at DESC
		  LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.log.Warn("jobstore.rows_close_error", "error", err)
		}
	}()

	var out []JobRecord
	for rows.Next() {
		var (
			rec       JobRecord
			status    string
			startedAt string
			elapsedMS int64
			result    sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.DocType, &rec.Source, &status, &startedAt, &elapsedMS, &rec.FieldCount, &result); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		rec.Status = constants.JobStatus(status)
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			rec.StartedAt = ts
		}
		rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if result.Valid {
			rec.ResultJSON = []byte(result.String)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return out, nil
}
