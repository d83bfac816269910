package finance

import (
	"github.com/shopspring/decimal"

	"github.com/munimji/ledger/internal/ledger"
)

// SalesSummary aggregates sale bills.
type SalesSummary struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal // 0 when Count is 0
}

// SummarizeSales totals the SALE bills of a set. The average over zero
// sales is defined as 0.
func SummarizeSales(bills []ledger.Bill) SalesSummary {
	var s SalesSummary
	for _, b := range bills {
		if b.Type != ledger.BillSale {
			continue
		}
		s.Total = s.Total.Add(b.TotalAmount)
		s.Count++
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// SummarizePurchases totals the PURCHASE bills of a set.
func SummarizePurchases(bills []ledger.Bill) SalesSummary {
	var s SalesSummary
	for _, b := range bills {
		if b.Type != ledger.BillPurchase {
			continue
		}
		s.Total = s.Total.Add(b.TotalAmount)
		s.Count++
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}
