package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial shape: core tables without the GST/tax columns, no bills.
// 2 - GST and payment columns on transaction_table, status on cheques,
//     bills and bill_items tables.
const currentSchemaVersion = 2

// Store provides durable storage for the ledger tables.
// All repository reads and writes go through it; nothing else touches the
// database file.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Option configures a Store during Open.
type Option func(*Store)

// WithLogger sets the logger used for open and migration diagnostics.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open creates or opens the ledger database at the given path and brings
// it to the current schema version.
//
// This function is idempotent - safe to call multiple times against the
// same file. A migration failure aborts the open; the database file is
// left as it was for a later attempt.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StoreError{Code: CodeStorageUnavailable, Op: "open", Err: err}
	}

	// Verify the file is actually usable (sql.Open is lazy).
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Code: CodeStorageUnavailable, Op: "open", Err: err}
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY between the repository's writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &StoreError{Code: CodeStorageUnavailable, Op: "pragma", Err: err}
	}

	s.db = db
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	s.log.Debug().Str("path", path).Int("version", currentSchemaVersion).Msg("store open")
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Version reads the persisted schema version.
func (s *Store) Version(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return v, nil
}

// Execute runs a data-manipulation or schema statement.
// Used only by the migration engine and the repository layer.
func (s *Store) Execute(ctx context.Context, stmt string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, stmt, args...)
}

// Query runs a statement returning rows. Callers close the rows.
func (s *Store) Query(ctx context.Context, stmt string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, stmt, args...)
}

// QueryRow runs a statement expected to return at most one row.
func (s *Store) QueryRow(ctx context.Context, stmt string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, stmt, args...)
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
