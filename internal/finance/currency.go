package finance

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// symbols maps the currencies the UI shows with a dedicated sign; anything
// else falls back to "CODE " prefix formatting.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CHF": "CHF ",
	"AUD": "A$",
	"CAD": "C$",
}

// Formatter renders zero-decimal display amounts in a project currency:
// round half away from zero, locale digit grouping, currency sign prefix.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter for the given ISO 4217 code using
// American English digit grouping.
func NewFormatter(currencyCode string) Formatter {
	symbol, ok := symbols[currencyCode]
	if !ok {
		symbol = currencyCode + " "
	}
	return Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Format renders an amount as a zero-decimal currency string, e.g.
// 1234.5 -> "$1,235". Formatting the same value twice yields the same
// string.
func (f Formatter) Format(amount float64) string {
	// math.Round rounds half away from zero, matching the locale
	// formatter's rounding of .5 display amounts.
	n := int64(math.Round(amount))
	if n < 0 {
		return f.printer.Sprintf("-%s%d", f.symbol, -n)
	}
	return f.printer.Sprintf("%s%d", f.symbol, n)
}
