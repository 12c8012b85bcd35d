package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS markers (
	buffer     TEXT PRIMARY KEY,
	marker     TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLiteStore is a MarkerStore backed by a SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
	now func() time.Time
}

// Ensure SQLiteStore implements MarkerStore
var _ MarkerStore = (*SQLiteStore)(nil)

func openSQLite(path string, busyTimeout time.Duration, log zerolog.Logger) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if busyTimeout > 0 {
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize state schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("state database opened")
	return &SQLiteStore{db: db, log: log, now: time.Now}, nil
}

// GetMarker returns the stored marker for a buffer name.
func (s *SQLiteStore) GetMarker(ctx context.Context, buffer string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, ErrDisabled
	}

	var marker string
	err := s.db.QueryRowContext(ctx, `SELECT marker FROM markers WHERE buffer = ?`, buffer).Scan(&marker)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return marker, true, nil
}

// PutMarker stores the marker for a buffer name, replacing any previous one.
func (s *SQLiteStore) PutMarker(ctx context.Context, buffer, marker string) error {
	if s == nil || s.db == nil {
		return ErrDisabled
	}
	if buffer == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO markers(buffer, marker, updated_at) VALUES(?,?,?)
		 ON CONFLICT(buffer) DO UPDATE SET marker=excluded.marker, updated_at=excluded.updated_at`,
		buffer, marker, s.now().Unix(),
	)
	return err
}

// Prune removes markers not updated since before.
func (s *SQLiteStore) Prune(ctx context.Context, before time.Time) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrDisabled
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM markers WHERE updated_at < ?`, before.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
