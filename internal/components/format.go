package components

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	upper   = cases.Upper(language.English)
)

// Grouped formats an amount with thousands separators and two decimals: 3,293,125.00.
func Grouped(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}

// USD formats an amount as dollars with two decimals: $1,250.00.
func USD(amount float64) string {
	if amount < 0 {
		return "-$" + Grouped(-amount)
	}
	return "$" + Grouped(amount)
}

// Dollars formats a whole dollar cap: $2,000.
func Dollars(amount int) string {
	return "$" + printer.Sprintf("%d", amount)
}

// Currency formats an amount prefixed by an ISO code: VND 3,293,125.00.
func Currency(code string, amount float64) string {
	return strings.ToUpper(code) + " " + Grouped(amount)
}

// Token formats a token quantity with its symbol: 200.00 USDT.
func Token(amount float64, symbol string) string {
	return printer.Sprintf("%.2f", amount) + " " + symbol
}

// Upper renders section captions the way the design spells them.
func Upper(s string) string {
	return upper.String(s)
}

// Limits renders a tier cap pair: $200/tx · $500/day.
func Limits(perTx, perDay int) string {
	return Dollars(perTx) + "/tx · " + Dollars(perDay) + "/day"
}
