package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"marbl-hq/marlin/pkg/config"
)

// Schema is the SQLite schema for the run history database.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	schema      TEXT NOT NULL,
	file        TEXT NOT NULL,
	consistent  INTEGER NOT NULL,
	violations  INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_schema ON runs(schema);
`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if necessary) the run history database
// at the path given in cfg.
func NewSQLiteStore(cfg *config.HistoryConfig, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "history.sqlite")

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	s := &SQLiteStore{db: db, logger: logger}

	if err := s.initialize(cfg); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("run history store initialized",
		"path", cfg.Path,
		"wal_mode", cfg.WALMode,
	)

	return s, nil
}

// initialize enables WAL mode if configured and creates the schema.
func (s *SQLiteStore) initialize(cfg *config.HistoryConfig) error {
	if cfg.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return NewStorageError("sqlite", "enable_wal", err)
		}
	}

	if cfg.BusyTimeout > 0 {
		stmt := fmt.Sprintf("PRAGMA busy_timeout=%d;", cfg.BusyTimeout.Milliseconds())
		if _, err := s.db.Exec(stmt); err != nil {
			return NewStorageError("sqlite", "set_busy_timeout", err)
		}
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return NewStorageError("sqlite", "create_schema", err)
	}

	return nil
}

// Record stores one run.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	const insert = `INSERT INTO runs (id, schema, file, consistent, violations, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	consistent := 0
	if run.Consistent {
		consistent = 1
	}

	_, err := s.db.ExecContext(ctx, insert,
		run.ID, run.Schema, run.File, consistent, run.Violations, run.CreatedAt)
	if err != nil {
		return NewStorageError("sqlite", "record", err)
	}

	return nil
}

// List returns runs matching the query, newest first.
func (s *SQLiteStore) List(ctx context.Context, query *Query) ([]*Run, error) {
	if query == nil {
		query = &Query{}
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("SELECT id, schema, file, consistent, violations, created_at FROM runs")

	var conds []string
	if query.Schema != "" {
		conds = append(conds, "schema = ?")
		args = append(args, query.Schema)
	}
	if query.File != "" {
		conds = append(conds, "file = ?")
		args = append(args, query.File)
	}
	if query.Since != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, *query.Since)
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	sb.WriteString(" ORDER BY created_at DESC")
	if query.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, query.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run        Run
			consistent int
			createdAt  time.Time
		)
		if err := rows.Scan(&run.ID, &run.Schema, &run.File, &consistent, &run.Violations, &createdAt); err != nil {
			return nil, NewStorageError("sqlite", "scan", err)
		}
		run.Consistent = consistent != 0
		run.CreatedAt = createdAt
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}

	return runs, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return NewStorageError("sqlite", "close", err)
	}
	return nil
}
