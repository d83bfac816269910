package report

import (
	"fmt"
	"strings"

	"github.com/munimji/ledger/internal/finance"
)

const lineWidth = 40

var rule = strings.Repeat("-", lineWidth)

// row lays out a label/value pair on one line. Labels are padded to a
// fixed column so amounts line up down the page.
func row(label, value string) string {
	return fmt.Sprintf("%-24s%s\n", label, value)
}

// RenderProfitLoss renders a profit and loss statement.
func RenderProfitLoss(pl finance.ProfitLoss) string {
	var b strings.Builder
	b.WriteString("Profit & Loss Statement\n")
	b.WriteString(rule + "\n")
	b.WriteString(row("Total Sales", Rupees(pl.Sales)))
	b.WriteString(row("Total Purchases", Rupees(pl.Purchases)))
	b.WriteString(row("Total Expenses", Rupees(pl.Expenses)))
	b.WriteString(rule + "\n")
	b.WriteString(row("Net Profit/Loss", Rupees(pl.Profit)))
	return b.String()
}

// RenderGST renders the collected-versus-paid GST position.
func RenderGST(rep finance.GSTReport) string {
	var b strings.Builder
	b.WriteString("GST Report\n")
	b.WriteString(rule + "\n")
	b.WriteString(row("GST Collected on Sales", Rupees(rep.Collected)))
	b.WriteString(row("GST Paid on Purchases", Rupees(rep.Paid)))
	b.WriteString(rule + "\n")
	b.WriteString(row("GST Payable", Rupees(rep.Payable)))
	return b.String()
}

// RenderValuation renders the stock position.
func RenderValuation(v finance.Valuation) string {
	var b strings.Builder
	b.WriteString("Stock Valuation\n")
	b.WriteString(rule + "\n")
	b.WriteString(row("Sell Value", Rupees(v.SellValue)))
	b.WriteString(row("Cost Value", Rupees(v.CostValue)))
	b.WriteString(rule + "\n")
	b.WriteString(row("Potential Profit", Rupees(v.PotentialProfit)))
	return b.String()
}

// RenderRisk renders the cheque risk meter.
func RenderRisk(risk finance.ChequeRisk) string {
	status := "SAFE"
	if risk.AtRisk {
		status = "AT RISK"
	}
	var b strings.Builder
	b.WriteString("Risk Meter\n")
	b.WriteString(rule + "\n")
	b.WriteString(row("Pending Cheques", Rupees(risk.PendingTotal)))
	b.WriteString(row("Cash In Hand", Rupees(risk.CashInHand)))
	b.WriteString(row("Status", status))
	return b.String()
}
