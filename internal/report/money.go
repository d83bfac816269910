package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// indian localizes number formatting to en-IN: lakh/crore digit
// grouping, so 123456.78 renders as 1,23,456.78.
var indian = message.NewPrinter(language.MustParse("en-IN"))

// Rupees renders an amount as ₹ with Indian digit grouping and two
// decimal places.
func Rupees(a decimal.Decimal) string {
	f, _ := a.Float64()
	return indian.Sprintf("₹%.2f", f)
}
