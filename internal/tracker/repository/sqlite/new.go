package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"pacekeeper/internal/tracker/repository"
	"pacekeeper/pkg/log"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

const schema = `
	CREATE TABLE IF NOT EXISTS kv_values (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the database at dsn and makes sure the schema exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// one writer at a time keeps SQLite from returning SQLITE_BUSY
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return db, nil
}

// New creates a SQLite-backed Repository for the tracker domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("tracker/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tracker/repository/sqlite.%s", method)
}
