package reports

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount as an en-US currency string with two
// decimal places and digit grouping, e.g. "$1,234.50".
//
// Aggregation itself always works on decimals, this is only for the
// display fields in API responses.
func FormatUSD(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return usd.Sprintf("%s%.2f", currency.Symbol(currency.USD), f)
}
