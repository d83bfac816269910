package repo

import (
	"context"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// InsertBankAccount stores a new bank account and fills in its assigned id.
func (r *Repo) InsertBankAccount(ctx context.Context, a *ledger.BankAccount) error {
	res, err := r.st.Execute(ctx,
		`INSERT INTO bank_accounts (name, accountNumber, bankName, balance, ifscCode)
		 VALUES (?, ?, ?, ?, ?)`,
		a.Name, a.AccountNumber, a.BankName, a.Balance, a.IFSCCode,
	)
	if err != nil {
		return store.WriteError("insert bank account", tableBankAccounts, err)
	}
	a.ID, _ = res.LastInsertId()
	r.n.publish(tableBankAccounts)
	return nil
}

// UpdateBankAccount rewrites a bank account by id.
func (r *Repo) UpdateBankAccount(ctx context.Context, a ledger.BankAccount) error {
	_, err := r.st.Execute(ctx,
		`UPDATE bank_accounts SET name = ?, accountNumber = ?, bankName = ?, balance = ?, ifscCode = ?
		 WHERE id = ?`,
		a.Name, a.AccountNumber, a.BankName, a.Balance, a.IFSCCode, a.ID,
	)
	if err != nil {
		return store.WriteError("update bank account", tableBankAccounts, err)
	}
	r.n.publish(tableBankAccounts)
	return nil
}

// DeleteBankAccount removes a bank account by id.
func (r *Repo) DeleteBankAccount(ctx context.Context, id int64) error {
	_, err := r.st.Execute(ctx, "DELETE FROM bank_accounts WHERE id = ?", id)
	if err != nil {
		return store.WriteError("delete bank account", tableBankAccounts, err)
	}
	r.n.publish(tableBankAccounts)
	return nil
}

// BankAccounts returns all bank accounts, newest first.
func (r *Repo) BankAccounts(ctx context.Context) ([]ledger.BankAccount, error) {
	rows, err := r.st.Query(ctx,
		"SELECT id, name, accountNumber, bankName, balance, ifscCode FROM bank_accounts ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("query bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.BankAccount
	for rows.Next() {
		var a ledger.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.AccountNumber, &a.BankName, &a.Balance, &a.IFSCCode); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank accounts: %w", err)
	}
	if accounts == nil {
		accounts = []ledger.BankAccount{}
	}
	return accounts, nil
}

// WatchBankAccounts emits the full account list after every account write.
func (r *Repo) WatchBankAccounts(ctx context.Context) *Subscription[[]ledger.BankAccount] {
	return watch(ctx, r, tableBankAccounts, r.BankAccounts)
}
