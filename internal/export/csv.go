package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/repo"
)

var inventoryHeader = []string{"name", "quantity", "buyPrice", "sellPrice", "barcode"}

var transactionHeader = []string{
	"type", "partyName", "billNo", "amount", "isCredit", "date", "itemName",
	"gstRate", "gstAmount", "cgst", "sgst", "igst", "totalWithTax",
	"discount", "paymentMethod", "notes",
}

const csvDateLayout = "2006-01-02"

// WriteInventoryCSV writes items as CSV with a header row.
func WriteInventoryCSV(w io.Writer, items []ledger.InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, it := range items {
		rec := []string{
			it.Name,
			strconv.FormatInt(it.Quantity, 10),
			it.BuyPrice.String(),
			it.SellPrice.String(),
			it.Barcode,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write item %q: %w", it.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadInventoryCSV inserts every data row of r into the repository.
// It returns the number of rows inserted; on a bad row it stops and
// reports the 1-based row number.
func ReadInventoryCSV(ctx context.Context, rp *repo.Repo, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(inventoryHeader)
	if _, err := cr.Read(); err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	inserted := 0
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return inserted, nil
		}
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", row, err)
		}
		it, err := parseInventoryRecord(rec)
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", row, err)
		}
		if err := rp.InsertItem(ctx, &it); err != nil {
			return inserted, fmt.Errorf("row %d: %w", row, err)
		}
		inserted++
	}
}

func parseInventoryRecord(rec []string) (ledger.InventoryItem, error) {
	var it ledger.InventoryItem
	qty, err := strconv.ParseInt(rec[1], 10, 64)
	if err != nil {
		return it, fmt.Errorf("quantity %q: %w", rec[1], err)
	}
	buy, err := decimal.NewFromString(rec[2])
	if err != nil {
		return it, fmt.Errorf("buyPrice %q: %w", rec[2], err)
	}
	sell, err := decimal.NewFromString(rec[3])
	if err != nil {
		return it, fmt.Errorf("sellPrice %q: %w", rec[3], err)
	}
	it = ledger.InventoryItem{
		Name:      rec[0],
		Quantity:  qty,
		BuyPrice:  buy,
		SellPrice: sell,
		Barcode:   rec[4],
	}
	return it, nil
}

// WriteTransactionsCSV writes txns as CSV with a header row. Dates are
// rendered as calendar days; sub-day precision is not preserved.
func WriteTransactionsCSV(w io.Writer, txns []ledger.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range txns {
		rec := []string{
			t.Type,
			t.PartyName,
			t.BillNo,
			t.Amount.String(),
			strconv.FormatBool(t.IsCredit),
			t.Date.Format(csvDateLayout),
			t.ItemName,
			t.GSTRate.String(),
			t.GSTAmount.String(),
			t.CGST.String(),
			t.SGST.String(),
			t.IGST.String(),
			t.TotalWithTax.String(),
			t.Discount.String(),
			t.PaymentMethod,
			t.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write transaction %q: %w", t.BillNo, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTransactionsCSV inserts every data row of r into the repository.
func ReadTransactionsCSV(ctx context.Context, rp *repo.Repo, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(transactionHeader)
	if _, err := cr.Read(); err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	inserted := 0
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return inserted, nil
		}
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", row, err)
		}
		t, err := parseTransactionRecord(rec)
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", row, err)
		}
		if err := rp.InsertTransaction(ctx, &t); err != nil {
			return inserted, fmt.Errorf("row %d: %w", row, err)
		}
		inserted++
	}
}

func parseTransactionRecord(rec []string) (ledger.Transaction, error) {
	var t ledger.Transaction

	isCredit, err := strconv.ParseBool(rec[4])
	if err != nil {
		return t, fmt.Errorf("isCredit %q: %w", rec[4], err)
	}
	date, err := time.Parse(csvDateLayout, rec[5])
	if err != nil {
		return t, fmt.Errorf("date %q: %w", rec[5], err)
	}

	amounts := make([]decimal.Decimal, 8)
	for i, idx := range []int{3, 7, 8, 9, 10, 11, 12, 13} {
		d, err := decimal.NewFromString(rec[idx])
		if err != nil {
			return t, fmt.Errorf("%s %q: %w", transactionHeader[idx], rec[idx], err)
		}
		amounts[i] = d
	}

	t = ledger.Transaction{
		Type:          rec[0],
		PartyName:     rec[1],
		BillNo:        rec[2],
		Amount:        amounts[0],
		IsCredit:      isCredit,
		Date:          date,
		ItemName:      rec[6],
		GSTRate:       amounts[1],
		GSTAmount:     amounts[2],
		CGST:          amounts[3],
		SGST:          amounts[4],
		IGST:          amounts[5],
		TotalWithTax:  amounts[6],
		Discount:      amounts[7],
		PaymentMethod: rec[14],
		Notes:         rec[15],
	}
	return t, nil
}
