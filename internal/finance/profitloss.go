package finance

import (
	"github.com/shopspring/decimal"

	"github.com/munimji/ledger/internal/ledger"
)

// ProfitLoss is a simple profit and loss statement over a transaction
// set, each side summing the tax-inclusive total.
type ProfitLoss struct {
	Sales     decimal.Decimal
	Purchases decimal.Decimal
	Expenses  decimal.Decimal
	Profit    decimal.Decimal // Sales - Purchases - Expenses
}

// ComputeProfitLoss tallies sales, purchases and expenses.
func ComputeProfitLoss(txns []ledger.Transaction) ProfitLoss {
	var pl ProfitLoss
	for _, txn := range txns {
		switch txn.Type {
		case ledger.TxnSale:
			pl.Sales = pl.Sales.Add(txn.TotalWithTax)
		case ledger.TxnPurchase:
			pl.Purchases = pl.Purchases.Add(txn.TotalWithTax)
		case ledger.TxnExpense:
			pl.Expenses = pl.Expenses.Add(txn.TotalWithTax)
		}
	}
	pl.Profit = pl.Sales.Sub(pl.Purchases).Sub(pl.Expenses)
	return pl
}

// BalanceSheet is an approximate position: assets are inventory at sell
// price, liabilities are credit purchases outstanding. Cash and bank
// balances are deliberately omitted, so this is NOT a full balance
// sheet - callers must not present it as one.
type BalanceSheet struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal // Assets - Liabilities
}

// ApproxBalanceSheet values inventory at sell price and counts credit
// transactions as liabilities.
func ApproxBalanceSheet(items []ledger.InventoryItem, txns []ledger.Transaction) BalanceSheet {
	var bs BalanceSheet
	for _, it := range items {
		bs.Assets = bs.Assets.Add(it.SellPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	for _, txn := range txns {
		if txn.IsCredit {
			bs.Liabilities = bs.Liabilities.Add(txn.TotalWithTax)
		}
	}
	bs.NetWorth = bs.Assets.Sub(bs.Liabilities)
	return bs
}
