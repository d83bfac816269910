package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// makeV1Database lays down a version 1 file by hand: core tables without
// the columns version 2 added, no bills tables.
func makeV1Database(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "v1.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open raw database: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE wallet (id TEXT PRIMARY KEY NOT NULL)`,
		`CREATE TABLE cheques (
			id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
			partyName TEXT NOT NULL DEFAULT '',
			number TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			amount REAL NOT NULL DEFAULT 0.0
		)`,
		`CREATE TABLE transaction_table (
			id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			partyName TEXT NOT NULL DEFAULT '',
			billNo TEXT NOT NULL DEFAULT '',
			amount REAL NOT NULL DEFAULT 0.0,
			isCredit INTEGER NOT NULL DEFAULT 0,
			date INTEGER NOT NULL DEFAULT 0
		)`,
		`INSERT INTO cheques (partyName, number, date, amount)
			VALUES ('Sharma Traders', 'CHQ-001', '2026-09-02', 450.0)`,
		`INSERT INTO transaction_table (type, partyName, billNo, amount, isCredit, date)
			VALUES ('Sale', 'Sharma Traders', 'B-1', 100.0, 0, 1756684800000)`,
		`PRAGMA user_version = 1`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("prepare v1 database: %v", err)
		}
	}
	return path
}

func TestMigrate_V1ChequeGainsStatusDefault(t *testing.T) {
	path := makeV1Database(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var (
		party, number, date, status string
		amount                      float64
	)
	err = s.db.QueryRow(
		"SELECT partyName, number, date, amount, status FROM cheques WHERE id = 1",
	).Scan(&party, &number, &date, &amount, &status)
	if err != nil {
		t.Fatalf("query migrated cheque: %v", err)
	}

	if status != "Pending" {
		t.Errorf("status = %q, want declared default %q", status, "Pending")
	}
	// Pre-existing values must be untouched.
	if party != "Sharma Traders" || number != "CHQ-001" || date != "2026-09-02" || amount != 450.0 {
		t.Errorf("pre-existing fields changed: %q %q %q %v", party, number, date, amount)
	}
}

func TestMigrate_V1TransactionGainsGSTColumns(t *testing.T) {
	path := makeV1Database(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var gstRate, gstAmount float64
	var paymentMethod string
	err = s.db.QueryRow(
		"SELECT gstRate, gstAmount, paymentMethod FROM transaction_table WHERE id = 1",
	).Scan(&gstRate, &gstAmount, &paymentMethod)
	if err != nil {
		t.Fatalf("query migrated transaction: %v", err)
	}

	if gstRate != 18.0 {
		t.Errorf("gstRate = %v, want default 18.0", gstRate)
	}
	if gstAmount != 0.0 {
		t.Errorf("gstAmount = %v, want default 0.0", gstAmount)
	}
	if paymentMethod != "Cash" {
		t.Errorf("paymentMethod = %q, want default %q", paymentMethod, "Cash")
	}
}

func TestMigrate_V1GainsBillTables(t *testing.T) {
	path := makeV1Database(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	for _, table := range []string{"bills", "bill_items"} {
		ok, err := s.hasTable(context.Background(), table)
		if err != nil {
			t.Fatalf("hasTable(%q): %v", table, err)
		}
		if !ok {
			t.Errorf("table %q missing after migration", table)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	path := makeV1Database(t)

	// First migration.
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	cols1 := tableColumns(t, s1, "cheques")
	s1.Close()

	// Second run must be a no-op: same column set, no errors.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()
	cols2 := tableColumns(t, s2, "cheques")

	if len(cols1) != len(cols2) {
		t.Fatalf("column count changed across runs: %d != %d", len(cols1), len(cols2))
	}
	for i := range cols1 {
		if cols1[i] != cols2[i] {
			t.Errorf("column %d changed: %q != %q", i, cols1[i], cols2[i])
		}
	}

	seen := map[string]bool{}
	for _, c := range cols2 {
		if seen[c] {
			t.Errorf("duplicate column %q after repeated migration", c)
		}
		seen[c] = true
	}
}

func TestMigrate_SetsTargetVersion(t *testing.T) {
	path := makeV1Database(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	v, err := s.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if v != currentSchemaVersion {
		t.Errorf("Version() = %d, want %d", v, currentSchemaVersion)
	}
}

func TestAddColumnIfMissing_MissingTableIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Table existence gates column addition.
	err = s.addColumnIfMissing(context.Background(), "no_such_table", "x", "x TEXT NOT NULL DEFAULT ''")
	if err != nil {
		t.Errorf("add against missing table should be a no-op, got %v", err)
	}
}

func TestAddColumnIfMissing_ExistingColumnIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	before := len(tableColumns(t, s, "cheques"))

	if err := s.addColumnIfMissing(ctx, "cheques", "status", "status TEXT NOT NULL DEFAULT 'Pending'"); err != nil {
		t.Fatalf("addColumnIfMissing: %v", err)
	}

	if after := len(tableColumns(t, s, "cheques")); after != before {
		t.Errorf("column count changed: %d -> %d", before, after)
	}
}

func tableColumns(t *testing.T, s *Store, table string) []string {
	t.Helper()
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		t.Fatalf("table_info(%q): %v", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan column name: %v", err)
		}
		cols = append(cols, name)
	}
	return cols
}
