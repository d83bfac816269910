package repo

import (
	"context"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// InsertCheque stores a new cheque and fills in its assigned id.
// An empty status defaults to Pending.
func (r *Repo) InsertCheque(ctx context.Context, c *ledger.Cheque) error {
	if c.Status == "" {
		c.Status = ledger.ChequePending
	}
	res, err := r.st.Execute(ctx,
		`INSERT INTO cheques (partyName, number, date, amount, status)
		 VALUES (?, ?, ?, ?, ?)`,
		c.PartyName, c.Number, c.Date, c.Amount, c.Status,
	)
	if err != nil {
		return store.WriteError("insert cheque", tableCheques, err)
	}
	c.ID, _ = res.LastInsertId()
	r.n.publish(tableCheques)
	return nil
}

// UpdateCheque rewrites a cheque by id.
func (r *Repo) UpdateCheque(ctx context.Context, c ledger.Cheque) error {
	_, err := r.st.Execute(ctx,
		`UPDATE cheques SET partyName = ?, number = ?, date = ?, amount = ?, status = ?
		 WHERE id = ?`,
		c.PartyName, c.Number, c.Date, c.Amount, c.Status, c.ID,
	)
	if err != nil {
		return store.WriteError("update cheque", tableCheques, err)
	}
	r.n.publish(tableCheques)
	return nil
}

// DeleteCheque removes a cheque by id.
func (r *Repo) DeleteCheque(ctx context.Context, id int64) error {
	_, err := r.st.Execute(ctx, "DELETE FROM cheques WHERE id = ?", id)
	if err != nil {
		return store.WriteError("delete cheque", tableCheques, err)
	}
	r.n.publish(tableCheques)
	return nil
}

// Cheques returns all cheques, newest first.
func (r *Repo) Cheques(ctx context.Context) ([]ledger.Cheque, error) {
	return r.queryCheques(ctx, "SELECT id, partyName, number, date, amount, status FROM cheques ORDER BY id DESC")
}

// PendingCheques returns cheques still awaiting clearance, optionally
// restricted to one due date (the stored display string). The reminder
// collaborator reads these to decide when to alert.
func (r *Repo) PendingCheques(ctx context.Context, dueOn string) ([]ledger.Cheque, error) {
	if dueOn == "" {
		return r.queryCheques(ctx,
			"SELECT id, partyName, number, date, amount, status FROM cheques WHERE status = ? ORDER BY id DESC",
			ledger.ChequePending)
	}
	return r.queryCheques(ctx,
		"SELECT id, partyName, number, date, amount, status FROM cheques WHERE status = ? AND date = ? ORDER BY id DESC",
		ledger.ChequePending, dueOn)
}

// WatchCheques emits the full cheque list after every cheque write.
func (r *Repo) WatchCheques(ctx context.Context) *Subscription[[]ledger.Cheque] {
	return watch(ctx, r, tableCheques, r.Cheques)
}

func (r *Repo) queryCheques(ctx context.Context, stmt string, args ...any) ([]ledger.Cheque, error) {
	rows, err := r.st.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query cheques: %w", err)
	}
	defer rows.Close()

	var cheques []ledger.Cheque
	for rows.Next() {
		var c ledger.Cheque
		if err := rows.Scan(&c.ID, &c.PartyName, &c.Number, &c.Date, &c.Amount, &c.Status); err != nil {
			return nil, fmt.Errorf("scan cheque: %w", err)
		}
		cheques = append(cheques, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cheques: %w", err)
	}
	if cheques == nil {
		cheques = []ledger.Cheque{}
	}
	return cheques, nil
}
