package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/store"
)

// NewBillNumber produces a practically-unique human-readable bill number,
// e.g. "SALE-1C9A7F3B". Used when the caller does not supply one.
func NewBillNumber(billType string) string {
	tag := strings.ToUpper(uuid.NewString()[:8])
	if billType == "" {
		return "BILL-" + tag
	}
	return billType + "-" + tag
}

// InsertBill stores a bill header and returns the assigned id
// synchronously so the caller can attach items to it. A blank bill
// number is generated. Inserting the items afterwards is a separate,
// non-atomic step: a crash in between leaves a bill with no items, which
// consumers must tolerate.
func (r *Repo) InsertBill(ctx context.Context, b *ledger.Bill) (int64, error) {
	if b.BillNumber == "" {
		b.BillNumber = NewBillNumber(b.Type)
	}
	if b.Status == "" {
		b.Status = ledger.BillCompleted
	}
	if b.PaymentMode == "" {
		b.PaymentMode = ledger.PaymentCash
	}
	res, err := r.st.Execute(ctx,
		`INSERT INTO bills
		 (billNumber, type, customerId, vendorName, date, totalAmount,
		  taxPercentage, taxAmount, paymentMode, notes, billImageUrl, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.BillNumber, b.Type, b.CustomerID, b.VendorName, millis(b.Date), b.TotalAmount,
		b.TaxPercentage, b.TaxAmount, b.PaymentMode, b.Notes, b.BillImageURL, b.Status,
	)
	if err != nil {
		return 0, store.WriteError("insert bill", tableBills, err)
	}
	b.ID, _ = res.LastInsertId()
	r.n.publish(tableBills)
	return b.ID, nil
}

// UpdateBill rewrites a bill header by id.
func (r *Repo) UpdateBill(ctx context.Context, b ledger.Bill) error {
	_, err := r.st.Execute(ctx,
		`UPDATE bills SET billNumber = ?, type = ?, customerId = ?, vendorName = ?, date = ?,
		 totalAmount = ?, taxPercentage = ?, taxAmount = ?, paymentMode = ?, notes = ?,
		 billImageUrl = ?, status = ? WHERE id = ?`,
		b.BillNumber, b.Type, b.CustomerID, b.VendorName, millis(b.Date),
		b.TotalAmount, b.TaxPercentage, b.TaxAmount, b.PaymentMode, b.Notes,
		b.BillImageURL, b.Status, b.ID,
	)
	if err != nil {
		return store.WriteError("update bill", tableBills, err)
	}
	r.n.publish(tableBills)
	return nil
}

// DeleteBill removes a bill header by id. Its items are NOT cascaded;
// callers that want them gone delete them explicitly.
func (r *Repo) DeleteBill(ctx context.Context, id int64) error {
	_, err := r.st.Execute(ctx, "DELETE FROM bills WHERE id = ?", id)
	if err != nil {
		return store.WriteError("delete bill", tableBills, err)
	}
	r.n.publish(tableBills)
	return nil
}

// BillByID returns one bill header, or nil when absent.
func (r *Repo) BillByID(ctx context.Context, id int64) (*ledger.Bill, error) {
	bills, err := r.queryBills(ctx, billSelect+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, nil
	}
	return &bills[0], nil
}

// Bills returns all bills, most recent date first.
func (r *Repo) Bills(ctx context.Context) ([]ledger.Bill, error) {
	return r.queryBills(ctx, billSelect+" ORDER BY date DESC")
}

// BillsByType returns bills of one type (SALE or PURCHASE), most recent
// date first.
func (r *Repo) BillsByType(ctx context.Context, billType string) ([]ledger.Bill, error) {
	return r.queryBills(ctx, billSelect+" WHERE type = ? ORDER BY date DESC", billType)
}

// WatchBills emits the full bill list after every bill write.
func (r *Repo) WatchBills(ctx context.Context) *Subscription[[]ledger.Bill] {
	return watch(ctx, r, tableBills, r.Bills)
}

// WatchBillsByType emits the bills of one type after every bill write.
func (r *Repo) WatchBillsByType(ctx context.Context, billType string) *Subscription[[]ledger.Bill] {
	return watch(ctx, r, tableBills, func(ctx context.Context) ([]ledger.Bill, error) {
		return r.BillsByType(ctx, billType)
	})
}

const billSelect = `SELECT id, billNumber, type, customerId, vendorName, date, totalAmount,
	taxPercentage, taxAmount, paymentMode, notes, billImageUrl, status FROM bills`

func (r *Repo) queryBills(ctx context.Context, stmt string, args ...any) ([]ledger.Bill, error) {
	rows, err := r.st.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	defer rows.Close()

	var bills []ledger.Bill
	for rows.Next() {
		var (
			b      ledger.Bill
			dateMS int64
		)
		err := rows.Scan(&b.ID, &b.BillNumber, &b.Type, &b.CustomerID, &b.VendorName, &dateMS,
			&b.TotalAmount, &b.TaxPercentage, &b.TaxAmount, &b.PaymentMode, &b.Notes,
			&b.BillImageURL, &b.Status)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		b.Date = fromMillis(dateMS)
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}
	if bills == nil {
		bills = []ledger.Bill{}
	}
	return bills, nil
}

// InsertBillItem stores one bill line and fills in its assigned id.
func (r *Repo) InsertBillItem(ctx context.Context, it *ledger.BillItem) error {
	res, err := r.st.Execute(ctx,
		`INSERT INTO bill_items (billId, itemId, itemName, barcode, quantity, unitPrice, itemTotal)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.BillID, it.ItemID, it.ItemName, it.Barcode, it.Quantity, it.UnitPrice, it.ItemTotal,
	)
	if err != nil {
		return store.WriteError("insert bill item", tableBillItems, err)
	}
	it.ID, _ = res.LastInsertId()
	r.n.publish(tableBillItems)
	return nil
}

// InsertBillItems stores bill lines one statement at a time. NOT atomic:
// on failure the earlier lines stay written and the error reports how
// many made it, so the caller can retry the remainder.
func (r *Repo) InsertBillItems(ctx context.Context, items []ledger.BillItem) error {
	for i := range items {
		if err := r.InsertBillItem(ctx, &items[i]); err != nil {
			return fmt.Errorf("after %d of %d items: %w", i, len(items), err)
		}
	}
	return nil
}

// UpdateBillItem rewrites a bill line by id.
func (r *Repo) UpdateBillItem(ctx context.Context, it ledger.BillItem) error {
	_, err := r.st.Execute(ctx,
		`UPDATE bill_items SET billId = ?, itemId = ?, itemName = ?, barcode = ?,
		 quantity = ?, unitPrice = ?, itemTotal = ? WHERE id = ?`,
		it.BillID, it.ItemID, it.ItemName, it.Barcode, it.Quantity, it.UnitPrice, it.ItemTotal, it.ID,
	)
	if err != nil {
		return store.WriteError("update bill item", tableBillItems, err)
	}
	r.n.publish(tableBillItems)
	return nil
}

// DeleteBillItem removes a bill line by id.
func (r *Repo) DeleteBillItem(ctx context.Context, id int64) error {
	_, err := r.st.Execute(ctx, "DELETE FROM bill_items WHERE id = ?", id)
	if err != nil {
		return store.WriteError("delete bill item", tableBillItems, err)
	}
	r.n.publish(tableBillItems)
	return nil
}

// BillItems returns the lines of one bill.
func (r *Repo) BillItems(ctx context.Context, billID int64) ([]ledger.BillItem, error) {
	rows, err := r.st.Query(ctx,
		`SELECT id, billId, itemId, itemName, barcode, quantity, unitPrice, itemTotal
		 FROM bill_items WHERE billId = ?`, billID)
	if err != nil {
		return nil, fmt.Errorf("query bill items: %w", err)
	}
	defer rows.Close()

	var items []ledger.BillItem
	for rows.Next() {
		var it ledger.BillItem
		err := rows.Scan(&it.ID, &it.BillID, &it.ItemID, &it.ItemName, &it.Barcode,
			&it.Quantity, &it.UnitPrice, &it.ItemTotal)
		if err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill items: %w", err)
	}
	if items == nil {
		items = []ledger.BillItem{}
	}
	return items, nil
}

// WatchBillItems emits the lines of one bill after every bill-item write.
func (r *Repo) WatchBillItems(ctx context.Context, billID int64) *Subscription[[]ledger.BillItem] {
	return watch(ctx, r, tableBillItems, func(ctx context.Context) ([]ledger.BillItem, error) {
		return r.BillItems(ctx, billID)
	})
}
