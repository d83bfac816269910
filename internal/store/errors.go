package store

import (
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// Code categorizes store failures.
type Code string

const (
	// CodeStorageUnavailable means the database file cannot be opened or
	// reached. Fatal to the whole session.
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"

	// CodeMigrationFailure means a schema upgrade step failed. Fatal: the
	// store must not be used until a later Open succeeds.
	CodeMigrationFailure Code = "MIGRATION_FAILURE"

	// CodeConstraintViolation means a write violated a declared column
	// constraint. Recoverable: the operation had no effect.
	CodeConstraintViolation Code = "CONSTRAINT_VIOLATION"
)

// StoreError is a store failure with enough structure to diagnose
// offline: which operation, against which table and column.
type StoreError struct {
	Code   Code
	Op     string
	Table  string
	Column string
	Err    error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	switch {
	case e.Table != "" && e.Column != "":
		return fmt.Sprintf("%s: %s (table=%s, column=%s): %v", e.Code, e.Op, e.Table, e.Column, e.Err)
	case e.Table != "":
		return fmt.Sprintf("%s: %s (table=%s): %v", e.Code, e.Op, e.Table, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
	}
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStorageUnavailable reports whether err is a fatal open failure.
func IsStorageUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeStorageUnavailable
}

// IsMigrationFailure reports whether err is a failed schema upgrade.
func IsMigrationFailure(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeMigrationFailure
}

// IsConstraintViolation reports whether err is a rejected write.
func IsConstraintViolation(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeConstraintViolation
}

// WriteError classifies a write failure at the repository boundary.
// SQLite constraint rejections (NOT NULL, CHECK, UNIQUE) become typed
// CONSTRAINT_VIOLATION errors the caller can recover from; anything else
// is wrapped as-is.
func WriteError(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		return &StoreError{Code: CodeConstraintViolation, Op: op, Table: table, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
