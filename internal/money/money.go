// Package money renders peso amounts for people.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Symbol = "₱"

var printer = message.NewPrinter(language.English)

// Format renders d with thousands separators and two decimals, e.g. ₱1,234.50.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return Symbol + printer.Sprintf("%.2f", f)
}

func FormatFloat(v float64) string {
	return Format(decimal.NewFromFloat(v))
}
