package finance

import (
	"github.com/shopspring/decimal"

	"github.com/munimji/ledger/internal/ledger"
)

// ChequeRisk is the liquidity exposure from pending cheques: the risk
// that cheques are presented before enough cash is on hand.
type ChequeRisk struct {
	PendingTotal decimal.Decimal
	CashInHand   decimal.Decimal
	AtRisk       bool
}

// AssessChequeRisk totals pending cheques - optionally only those due on
// one date (the stored display string) - against cash in hand. Derived
// fresh on every call, never cached. AtRisk is strict: a pending total
// exactly equal to cash in hand is safe.
func AssessChequeRisk(cheques []ledger.Cheque, cashInHand decimal.Decimal, dueOn string) ChequeRisk {
	var total decimal.Decimal
	for _, c := range cheques {
		if c.Status != ledger.ChequePending {
			continue
		}
		if dueOn != "" && c.Date != dueOn {
			continue
		}
		total = total.Add(c.Amount)
	}
	return ChequeRisk{
		PendingTotal: total,
		CashInHand:   cashInHand,
		AtRisk:       total.GreaterThan(cashInHand),
	}
}
