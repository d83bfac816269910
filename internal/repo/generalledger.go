package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// InsertLedgerEntry stores a general-ledger posting line and fills in its
// assigned id. The store does not check that debits balance credits
// across a posting; that discipline belongs to the caller.
func (r *Repo) InsertLedgerEntry(ctx context.Context, e *ledger.GeneralLedger) error {
	res, err := r.st.Execute(ctx,
		`INSERT INTO general_ledger
		 (date, description, accountType, accountName, debit, credit, balance, transactionId)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		millis(e.Date), e.Description, e.AccountType, e.AccountName,
		e.Debit, e.Credit, e.Balance, nullString(e.TransactionID),
	)
	if err != nil {
		return store.WriteError("insert ledger entry", tableGeneralLedger, err)
	}
	e.ID, _ = res.LastInsertId()
	r.n.publish(tableGeneralLedger)
	return nil
}

// LedgerEntries returns all posting lines, newest first.
func (r *Repo) LedgerEntries(ctx context.Context) ([]ledger.GeneralLedger, error) {
	rows, err := r.st.Query(ctx,
		`SELECT id, date, description, accountType, accountName, debit, credit, balance, transactionId
		 FROM general_ledger ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query general ledger: %w", err)
	}
	defer rows.Close()

	var entries []ledger.GeneralLedger
	for rows.Next() {
		var (
			e      ledger.GeneralLedger
			dateMS int64
			txnID  sql.NullString
		)
		err := rows.Scan(&e.ID, &dateMS, &e.Description, &e.AccountType, &e.AccountName,
			&e.Debit, &e.Credit, &e.Balance, &txnID)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Date = fromMillis(dateMS)
		e.TransactionID = stringPtr(txnID)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate general ledger: %w", err)
	}
	if entries == nil {
		entries = []ledger.GeneralLedger{}
	}
	return entries, nil
}

// WatchLedgerEntries emits all posting lines after every insert.
func (r *Repo) WatchLedgerEntries(ctx context.Context) *Subscription[[]ledger.GeneralLedger] {
	return watch(ctx, r, tableGeneralLedger, r.LedgerEntries)
}
