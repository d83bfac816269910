package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// migration is one schema version transition. Steps are additive and
// internally idempotent: each one introspects the live catalog and only
// creates what is missing, so applying a step to an already-upgraded
// database is a no-op.
type migration struct {
	to    int
	apply func(ctx context.Context, s *Store) error
}

var migrations = []migration{
	{to: 2, apply: migrateToV2},
}

// migrate brings the database from whatever version it is at up to
// currentSchemaVersion. Any statement failure aborts the whole migration;
// there is no internal retry and no destructive fallback.
func (s *Store) migrate(ctx context.Context) error {
	version, err := s.Version(ctx)
	if err != nil {
		return &StoreError{Code: CodeMigrationFailure, Op: "read version", Err: err}
	}
	if version >= currentSchemaVersion {
		return nil
	}

	s.log.Info().Int("from", version).Int("to", currentSchemaVersion).Msg("migrating schema")

	// Missing tables first: CREATE TABLE IF NOT EXISTS lays down the full
	// target column set for any table the file does not have yet. Column
	// backfill below only ever applies to tables that predate a column.
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return &StoreError{Code: CodeMigrationFailure, Op: "create tables", Err: err}
	}

	for _, m := range migrations {
		if version >= m.to {
			continue
		}
		if err := m.apply(ctx, s); err != nil {
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return &StoreError{Code: CodeMigrationFailure, Op: "set version", Err: err}
	}
	return nil
}

// v2Columns lists every column the version 2 schema expects, with the
// definition used when backfilling it onto an older table. Defaults are
// non-breaking: pre-existing rows simply pick up the default.
var v2Columns = []struct {
	table, column, def string
}{
	{"wallet", "amount", "amount REAL NOT NULL DEFAULT 0.0"},

	{"cheques", "partyName", "partyName TEXT NOT NULL DEFAULT ''"},
	{"cheques", "number", "number TEXT NOT NULL DEFAULT ''"},
	{"cheques", "date", "date TEXT NOT NULL DEFAULT ''"},
	{"cheques", "amount", "amount REAL NOT NULL DEFAULT 0.0"},
	{"cheques", "status", "status TEXT NOT NULL DEFAULT 'Pending'"},

	{"inventory", "name", "name TEXT NOT NULL DEFAULT ''"},
	{"inventory", "quantity", "quantity INTEGER NOT NULL DEFAULT 0"},
	{"inventory", "buyPrice", "buyPrice REAL NOT NULL DEFAULT 0.0"},
	{"inventory", "sellPrice", "sellPrice REAL NOT NULL DEFAULT 0.0"},
	{"inventory", "barcode", "barcode TEXT NOT NULL DEFAULT ''"},

	{"transaction_table", "type", "type TEXT NOT NULL DEFAULT ''"},
	{"transaction_table", "partyName", "partyName TEXT NOT NULL DEFAULT ''"},
	{"transaction_table", "billNo", "billNo TEXT NOT NULL DEFAULT ''"},
	{"transaction_table", "amount", "amount REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "isCredit", "isCredit INTEGER NOT NULL DEFAULT 0"},
	{"transaction_table", "date", "date INTEGER NOT NULL DEFAULT 0"},
	{"transaction_table", "itemName", "itemName TEXT NOT NULL DEFAULT ''"},
	{"transaction_table", "gstRate", "gstRate REAL NOT NULL DEFAULT 18.0"},
	{"transaction_table", "gstAmount", "gstAmount REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "cgst", "cgst REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "sgst", "sgst REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "igst", "igst REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "totalWithTax", "totalWithTax REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "discount", "discount REAL NOT NULL DEFAULT 0.0"},
	{"transaction_table", "paymentMethod", "paymentMethod TEXT NOT NULL DEFAULT 'Cash'"},
	{"transaction_table", "bankAccountId", "bankAccountId INTEGER"},
	{"transaction_table", "invoiceNumber", "invoiceNumber TEXT"},
	{"transaction_table", "notes", "notes TEXT NOT NULL DEFAULT ''"},

	{"customers", "name", "name TEXT NOT NULL DEFAULT ''"},
	{"customers", "totalDue", "totalDue REAL NOT NULL DEFAULT 0.0"},

	{"bank_accounts", "name", "name TEXT NOT NULL DEFAULT ''"},
	{"bank_accounts", "accountNumber", "accountNumber TEXT NOT NULL DEFAULT ''"},
	{"bank_accounts", "bankName", "bankName TEXT NOT NULL DEFAULT ''"},
	{"bank_accounts", "balance", "balance REAL NOT NULL DEFAULT 0.0"},
	{"bank_accounts", "ifscCode", "ifscCode TEXT NOT NULL DEFAULT ''"},

	{"general_ledger", "date", "date INTEGER NOT NULL DEFAULT 0"},
	{"general_ledger", "description", "description TEXT NOT NULL DEFAULT ''"},
	{"general_ledger", "accountType", "accountType TEXT NOT NULL DEFAULT ''"},
	{"general_ledger", "accountName", "accountName TEXT NOT NULL DEFAULT ''"},
	{"general_ledger", "debit", "debit REAL NOT NULL DEFAULT 0.0"},
	{"general_ledger", "credit", "credit REAL NOT NULL DEFAULT 0.0"},
	{"general_ledger", "balance", "balance REAL NOT NULL DEFAULT 0.0"},
	{"general_ledger", "transactionId", "transactionId TEXT"},
}

// migrateToV2 backfills the version 2 column set onto tables created by
// version 1 files. Tables new in version 2 (bills, bill_items) were
// already created with their full shape by the schema pass.
func migrateToV2(ctx context.Context, s *Store) error {
	for _, c := range v2Columns {
		if err := s.addColumnIfMissing(ctx, c.table, c.column, c.def); err != nil {
			return err
		}
	}
	return nil
}

// hasTable reports whether a table exists in the catalog.
func (s *Store) hasTable(ctx context.Context, table string) (bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// hasColumn reports whether a column exists on a table.
//
// A catalog entry that cannot be read is treated as "column absent": the
// caller then attempts the add, and a duplicate-column rejection from
// SQLite is tolerated there. This keeps a malformed catalog from taking
// the whole migration down.
func (s *Store) hasColumn(ctx context.Context, table, column string) bool {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

// addColumnIfMissing adds a column to an existing table. A missing table
// gates the add entirely: the column will come into existence with the
// table itself on a later schema pass.
func (s *Store) addColumnIfMissing(ctx context.Context, table, column, def string) error {
	ok, err := s.hasTable(ctx, table)
	if err != nil {
		return &StoreError{Code: CodeMigrationFailure, Op: "introspect table", Table: table, Err: err}
	}
	if !ok {
		return nil
	}
	if s.hasColumn(ctx, table, column) {
		return nil
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, def))
	if err != nil {
		if isDuplicateColumn(err) {
			// Introspection missed an existing column; the add degraded
			// to a no-op as intended.
			return nil
		}
		return &StoreError{Code: CodeMigrationFailure, Op: "add column", Table: table, Column: column, Err: err}
	}

	s.log.Info().Str("table", table).Str("column", column).Msg("migration: added column")
	return nil
}

func isDuplicateColumn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
