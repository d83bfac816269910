package finance

import (
	"github.com/shopspring/decimal"

	"github.com/munimji/ledger/internal/ledger"
)

// Valuation is the stock position at both price points.
type Valuation struct {
	SellValue       decimal.Decimal // Σ quantity × sellPrice
	CostValue       decimal.Decimal // Σ quantity × buyPrice
	PotentialProfit decimal.Decimal // SellValue - CostValue
}

// ValueInventory computes the stock valuation. Non-negative quantities
// and prices always give non-negative values.
func ValueInventory(items []ledger.InventoryItem) Valuation {
	var v Valuation
	for _, it := range items {
		qty := decimal.NewFromInt(it.Quantity)
		v.SellValue = v.SellValue.Add(it.SellPrice.Mul(qty))
		v.CostValue = v.CostValue.Add(it.BuyPrice.Mul(qty))
	}
	v.PotentialProfit = v.SellValue.Sub(v.CostValue)
	return v
}

// CustomerOutstanding totals the running dues across customers. The
// individual TotalDue figures are caller-maintained caches; this only
// sums what is stored.
func CustomerOutstanding(customers []ledger.Customer) decimal.Decimal {
	var total decimal.Decimal
	for _, c := range customers {
		total = total.Add(c.TotalDue)
	}
	return total
}
