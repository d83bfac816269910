package report

import (
	"fmt"
	"strings"

	"github.com/munimji/ledger/internal/ledger"
)

var border = strings.Repeat("=", lineWidth)

// RenderReceipt renders one bill with its lines as a printable receipt.
// party is the display name of the counterparty (customer on sales,
// vendor on purchases); pass "" to omit the line.
func RenderReceipt(bill ledger.Bill, items []ledger.BillItem, party string) string {
	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(center("MUNIM LEDGER") + "\n")
	b.WriteString(border + "\n")
	b.WriteString(row("Bill No", bill.BillNumber))
	if !bill.Date.IsZero() {
		b.WriteString(row("Date", bill.Date.Format("02 Jan 2006")))
	}
	if party != "" {
		b.WriteString(row("Party", party))
	}
	b.WriteString(rule + "\n")
	for _, it := range items {
		b.WriteString(it.ItemName + "\n")
		qty := fmt.Sprintf("  %s x %s", it.Quantity.String(), Rupees(it.UnitPrice))
		b.WriteString(row(qty, Rupees(it.ItemTotal)))
	}
	b.WriteString(rule + "\n")
	b.WriteString(row("Subtotal", Rupees(bill.TotalAmount)))
	if !bill.TaxAmount.IsZero() {
		b.WriteString(row(fmt.Sprintf("Tax @ %s%%", bill.TaxPercentage.String()), Rupees(bill.TaxAmount)))
	}
	b.WriteString(row("Total", Rupees(bill.TotalAmount.Add(bill.TaxAmount))))
	b.WriteString(row("Payment Mode", bill.PaymentMode))
	b.WriteString(border + "\n")
	return b.String()
}

func center(s string) string {
	pad := (lineWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
