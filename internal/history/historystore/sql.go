package historystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"contractreview/internal/history"
)

// sortableTime is RFC 3339 with a fixed-width fraction so the stored
// strings sort chronologically. RFC3339Nano trims trailing zeros and
// does not.
const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

// SQLStore persists records as JSON documents, one row per record. The same
// statements work on Postgres and SQLite (both accept $1 placeholders).
type SQLStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

// NewPostgres opens a Postgres-backed store.
func NewPostgres(dsn string) (*SQLStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

// NewSQLite opens a SQLite-backed store at the given file path.
func NewSQLite(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

// NewFromEnv picks the backend from the environment: HISTORY_PG_DSN wins,
// then HISTORY_SQLITE_PATH, otherwise the JSON file at path.
func NewFromEnv(path string) history.Store {
	if dsn := strings.TrimSpace(os.Getenv("HISTORY_PG_DSN")); dsn != "" {
		if s, err := NewPostgres(dsn); err == nil {
			return s
		}
	}
	if p := strings.TrimSpace(os.Getenv("HISTORY_SQLITE_PATH")); p != "" {
		if s, err := NewSQLite(p); err == nil {
			return s
		}
	}
	return NewFile(path)
}

func (s *SQLStore) Close() error { return s.db.Close() }

func (s *SQLStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS contract_history (
  id TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`)
	})
	return s.schemaErr
}

func (s *SQLStore) Load(ctx context.Context) ([]history.Record, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM contract_history ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []history.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var record history.Record
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Save rewrites the full set in one transaction. The record list is small
// (one row per reviewed contract), so replace-all beats diffing.
func (s *SQLStore) Save(ctx context.Context, records []history.Record) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contract_history`); err != nil {
		return err
	}
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO contract_history (id, payload, updated_at) VALUES ($1, $2, $3)`,
			record.ID.String(), string(payload), record.UpdatedAt.UTC().Format(sortableTime))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
