package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// InsertTransaction stores a new transaction and fills in its assigned id.
// The GST identities (GSTAmount = CGST+SGST+IGST, TotalWithTax =
// Amount-Discount+GSTAmount) are the caller's responsibility; they are
// stored as given.
func (r *Repo) InsertTransaction(ctx context.Context, t *ledger.Transaction) error {
	res, err := r.st.Execute(ctx,
		`INSERT INTO transaction_table
		 (type, partyName, billNo, amount, isCredit, date, itemName,
		  gstRate, gstAmount, cgst, sgst, igst, totalWithTax, discount,
		  paymentMethod, bankAccountId, invoiceNumber, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Type, t.PartyName, t.BillNo, t.Amount, t.IsCredit, millis(t.Date), t.ItemName,
		t.GSTRate, t.GSTAmount, t.CGST, t.SGST, t.IGST, t.TotalWithTax, t.Discount,
		t.PaymentMethod, nullInt(t.BankAccountID), nullString(t.InvoiceNumber), t.Notes,
	)
	if err != nil {
		return store.WriteError("insert transaction", tableTransactions, err)
	}
	t.ID, _ = res.LastInsertId()
	r.n.publish(tableTransactions)
	return nil
}

// Transactions returns all transactions, newest first.
func (r *Repo) Transactions(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := r.st.Query(ctx,
		`SELECT id, type, partyName, billNo, amount, isCredit, date, itemName,
		        gstRate, gstAmount, cgst, sgst, igst, totalWithTax, discount,
		        paymentMethod, bankAccountId, invoiceNumber, notes
		 FROM transaction_table ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txns []ledger.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	if txns == nil {
		txns = []ledger.Transaction{}
	}
	return txns, nil
}

// WatchTransactions emits the full transaction list after every insert.
func (r *Repo) WatchTransactions(ctx context.Context) *Subscription[[]ledger.Transaction] {
	return watch(ctx, r, tableTransactions, r.Transactions)
}

func scanTransaction(rows *sql.Rows) (ledger.Transaction, error) {
	var (
		t       ledger.Transaction
		dateMS  int64
		bankID  sql.NullInt64
		invoice sql.NullString
	)
	err := rows.Scan(
		&t.ID, &t.Type, &t.PartyName, &t.BillNo, &t.Amount, &t.IsCredit, &dateMS, &t.ItemName,
		&t.GSTRate, &t.GSTAmount, &t.CGST, &t.SGST, &t.IGST, &t.TotalWithTax, &t.Discount,
		&t.PaymentMethod, &bankID, &invoice, &t.Notes,
	)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	t.Date = fromMillis(dateMS)
	t.BankAccountID = intPtr(bankID)
	t.InvoiceNumber = stringPtr(invoice)
	return t, nil
}
