package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/munimji/ledger/internal/ledger"
)

// GSTTotals sums the GST components across the sale transactions of a
// set. When each row satisfies its own identity (gstAmount =
// cgst+sgst+igst), GSTAmount here equals CGST+SGST+IGST. Rows are
// reported as stored: nothing recomputes or corrects an individual
// record.
type GSTTotals struct {
	GSTAmount decimal.Decimal
	CGST      decimal.Decimal
	SGST      decimal.Decimal
	IGST      decimal.Decimal
}

// SaleGSTTotals tallies GST collected on sales.
func SaleGSTTotals(txns []ledger.Transaction) GSTTotals {
	var t GSTTotals
	for _, txn := range txns {
		if txn.Type != ledger.TxnSale {
			continue
		}
		t.GSTAmount = t.GSTAmount.Add(txn.GSTAmount)
		t.CGST = t.CGST.Add(txn.CGST)
		t.SGST = t.SGST.Add(txn.SGST)
		t.IGST = t.IGST.Add(txn.IGST)
	}
	return t
}

// GSTReport is the collected-versus-paid position for a period.
type GSTReport struct {
	Collected decimal.Decimal // GST on sales
	Paid      decimal.Decimal // GST on purchases
	Payable   decimal.Decimal // Collected - Paid
}

// GSTSummary computes the GST position across all given transactions.
func GSTSummary(txns []ledger.Transaction) GSTReport {
	var r GSTReport
	for _, txn := range txns {
		switch txn.Type {
		case ledger.TxnSale:
			r.Collected = r.Collected.Add(txn.GSTAmount)
		case ledger.TxnPurchase:
			r.Paid = r.Paid.Add(txn.GSTAmount)
		}
	}
	r.Payable = r.Collected.Sub(r.Paid)
	return r
}

// GSTSummaryBetween computes the GST position for transactions dated in
// [from, to). A zero bound leaves that side open.
func GSTSummaryBetween(txns []ledger.Transaction, from, to time.Time) GSTReport {
	var inPeriod []ledger.Transaction
	for _, txn := range txns {
		if !from.IsZero() && txn.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !txn.Date.Before(to) {
			continue
		}
		inPeriod = append(inPeriod, txn)
	}
	return GSTSummary(inPeriod)
}
