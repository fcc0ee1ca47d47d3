package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	// sqlite3 driver registration.
	_ "github.com/mattn/go-sqlite3"
)

// Repository represents a data repository that interacts with the database
// and provides logging capabilities. It holds a reference to the database
// and a logger instance for logging operations.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewRepository opens (or creates) the sqlite file at storagePath and
// makes sure the schema exists.
func NewRepository(ctx context.Context, log *slog.Logger, storagePath string) (*Repository, error) {
	// Open (or create if it doesn't exist) the database file.
	dtb, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", storagePath))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Check if the connection is actually established.
	if err = dtb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("unable to establish connection to database: %w", err)
	}

	if err = initSchema(ctx, dtb); err != nil {
		return nil, fmt.Errorf("DB schema initialization error: %w", err)
	}

	return &Repository{db: dtb, log: log}, nil
}

// NewForTest wraps an already opened database, used with sqlmock.
func NewForTest(dtb *sql.DB) *Repository {
	return &Repository{db: dtb, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// initSchema creates the necessary tables if they don't already exist.
func initSchema(ctx context.Context, dtb *sql.DB) error {
	const migrationQuery = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY NOT NULL,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY NOT NULL,
		platform TEXT NOT NULL,
		summary TEXT NOT NULL,
		total TEXT NOT NULL,
		placed_at INTEGER NOT NULL,
		status TEXT NOT NULL
	);
	`
	_, err := dtb.ExecContext(ctx, migrationQuery)
	if err != nil {
		return fmt.Errorf("failed to execute migration query: %w", err)
	}

	return nil
}

// Close closes the connection to the database.
func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		r.log.Error("failed to close the database", "op", "repository.sqlite.Close", "error", err)
		return fmt.Errorf("failed to close the database: %w", err)
	}

	return nil
}

// DB is a getter for database handler.
func (r *Repository) DB() *sql.DB {
	return r.db
}
