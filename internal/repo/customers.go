package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// InsertCustomer stores a new customer and fills in its assigned id.
// Name uniqueness is a convention, not a constraint.
func (r *Repo) InsertCustomer(ctx context.Context, c *ledger.Customer) error {
	res, err := r.st.Execute(ctx,
		"INSERT INTO customers (name, totalDue) VALUES (?, ?)",
		c.Name, c.TotalDue,
	)
	if err != nil {
		return store.WriteError("insert customer", tableCustomers, err)
	}
	c.ID, _ = res.LastInsertId()
	r.n.publish(tableCustomers)
	return nil
}

// UpdateCustomer rewrites a customer by id. TotalDue is caller-maintained:
// nothing here recomputes it from transactions.
func (r *Repo) UpdateCustomer(ctx context.Context, c ledger.Customer) error {
	_, err := r.st.Execute(ctx,
		"UPDATE customers SET name = ?, totalDue = ? WHERE id = ?",
		c.Name, c.TotalDue, c.ID,
	)
	if err != nil {
		return store.WriteError("update customer", tableCustomers, err)
	}
	r.n.publish(tableCustomers)
	return nil
}

// Customers returns all customers, newest first.
func (r *Repo) Customers(ctx context.Context) ([]ledger.Customer, error) {
	rows, err := r.st.Query(ctx, "SELECT id, name, totalDue FROM customers ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []ledger.Customer
	for rows.Next() {
		var c ledger.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalDue); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	if customers == nil {
		customers = []ledger.Customer{}
	}
	return customers, nil
}

// CustomerByID returns one customer, or nil when absent.
func (r *Repo) CustomerByID(ctx context.Context, id int64) (*ledger.Customer, error) {
	var c ledger.Customer
	err := r.st.QueryRow(ctx,
		"SELECT id, name, totalDue FROM customers WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.TotalDue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query customer by id: %w", err)
	}
	return &c, nil
}

// CustomerByName returns the first customer with the given name, or nil.
func (r *Repo) CustomerByName(ctx context.Context, name string) (*ledger.Customer, error) {
	var c ledger.Customer
	err := r.st.QueryRow(ctx,
		"SELECT id, name, totalDue FROM customers WHERE name = ? LIMIT 1", name,
	).Scan(&c.ID, &c.Name, &c.TotalDue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query customer by name: %w", err)
	}
	return &c, nil
}

// WatchCustomers emits the full customer list after every customer write.
func (r *Repo) WatchCustomers(ctx context.Context) *Subscription[[]ledger.Customer] {
	return watch(ctx, r, tableCustomers, r.Customers)
}
