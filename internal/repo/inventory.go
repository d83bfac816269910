package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// InsertItem stores a new inventory item and fills in its assigned id.
func (r *Repo) InsertItem(ctx context.Context, it *ledger.InventoryItem) error {
	res, err := r.st.Execute(ctx,
		`INSERT INTO inventory (name, quantity, buyPrice, sellPrice, barcode)
		 VALUES (?, ?, ?, ?, ?)`,
		it.Name, it.Quantity, it.BuyPrice, it.SellPrice, it.Barcode,
	)
	if err != nil {
		return store.WriteError("insert item", tableInventory, err)
	}
	it.ID, _ = res.LastInsertId()
	r.n.publish(tableInventory)
	return nil
}

// UpdateItem rewrites an item by id. Quantity updates go through here:
// the stored quantity is the sole stock-level source of truth.
func (r *Repo) UpdateItem(ctx context.Context, it ledger.InventoryItem) error {
	_, err := r.st.Execute(ctx,
		`UPDATE inventory SET name = ?, quantity = ?, buyPrice = ?, sellPrice = ?, barcode = ?
		 WHERE id = ?`,
		it.Name, it.Quantity, it.BuyPrice, it.SellPrice, it.Barcode, it.ID,
	)
	if err != nil {
		return store.WriteError("update item", tableInventory, err)
	}
	r.n.publish(tableInventory)
	return nil
}

// DeleteItem removes an item by id.
func (r *Repo) DeleteItem(ctx context.Context, id int64) error {
	_, err := r.st.Execute(ctx, "DELETE FROM inventory WHERE id = ?", id)
	if err != nil {
		return store.WriteError("delete item", tableInventory, err)
	}
	r.n.publish(tableInventory)
	return nil
}

// Items returns all inventory items, newest first.
func (r *Repo) Items(ctx context.Context) ([]ledger.InventoryItem, error) {
	rows, err := r.st.Query(ctx,
		"SELECT id, name, quantity, buyPrice, sellPrice, barcode FROM inventory ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var items []ledger.InventoryItem
	for rows.Next() {
		var it ledger.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.BuyPrice, &it.SellPrice, &it.Barcode); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	if items == nil {
		items = []ledger.InventoryItem{}
	}
	return items, nil
}

// ItemByBarcode returns the first item carrying the barcode, or nil.
// Barcodes are not unique; scanner flows take the first match.
func (r *Repo) ItemByBarcode(ctx context.Context, barcode string) (*ledger.InventoryItem, error) {
	var it ledger.InventoryItem
	err := r.st.QueryRow(ctx,
		"SELECT id, name, quantity, buyPrice, sellPrice, barcode FROM inventory WHERE barcode = ? LIMIT 1",
		barcode,
	).Scan(&it.ID, &it.Name, &it.Quantity, &it.BuyPrice, &it.SellPrice, &it.Barcode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item by barcode: %w", err)
	}
	return &it, nil
}

// WatchItems emits the full inventory after every inventory write.
func (r *Repo) WatchItems(ctx context.Context) *Subscription[[]ledger.InventoryItem] {
	return watch(ctx, r, tableInventory, r.Items)
}
