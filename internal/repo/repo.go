package repo

import (
	"database/sql"
	"time"

	"github.com/munimji/ledger/internal/store"
)

// Table names, shared by the write paths and the watch registrations.
const (
	tableWallet        = "wallet"
	tableCheques       = "cheques"
	tableInventory     = "inventory"
	tableTransactions  = "transaction_table"
	tableCustomers     = "customers"
	tableBankAccounts  = "bank_accounts"
	tableGeneralLedger = "general_ledger"
	tableBills         = "bills"
	tableBillItems     = "bill_items"
)

// Repo provides typed CRUD and live queries over the store.
// Construct one per store handle and pass it down; it holds no state
// beyond the watch registry.
type Repo struct {
	st *store.Store
	n  *notifier
}

// New wraps an opened store.
func New(st *store.Store) *Repo {
	return &Repo{st: st, n: newNotifier()}
}

// Store exposes the underlying store for collaborators that need raw
// access (none of the shipped ones do; tests use it).
func (r *Repo) Store() *store.Store {
	return r.st
}

// millis converts a time to the persisted epoch-milliseconds form.
func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// fromMillis converts a persisted date back to a time.
func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
