package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// Wallet returns the cash-in-hand row, or nil if it has never been set.
func (r *Repo) Wallet(ctx context.Context) (*ledger.Wallet, error) {
	var w ledger.Wallet
	err := r.st.QueryRow(ctx,
		"SELECT id, amount FROM wallet LIMIT 1",
	).Scan(&w.ID, &w.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query wallet: %w", err)
	}
	return &w, nil
}

// PutWallet creates or replaces the wallet row. The singleton id keeps
// the table at exactly one row.
func (r *Repo) PutWallet(ctx context.Context, w ledger.Wallet) error {
	if w.ID == "" {
		w.ID = ledger.WalletID
	}
	_, err := r.st.Execute(ctx,
		"INSERT OR REPLACE INTO wallet (id, amount) VALUES (?, ?)",
		w.ID, w.Amount,
	)
	if err != nil {
		return store.WriteError("put wallet", tableWallet, err)
	}
	r.n.publish(tableWallet)
	return nil
}

// WatchWallet emits the wallet after every change to it.
func (r *Repo) WatchWallet(ctx context.Context) *Subscription[*ledger.Wallet] {
	return watch(ctx, r, tableWallet, r.Wallet)
}
