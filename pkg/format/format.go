// Package format implements the display contract for numeric fields of the
// aggregated view: monetary amounts as "$" plus a thousands-grouped floored
// integer, percentages with exactly two fractional digits and a trailing
// "%", prices with exactly four fractional digits and no grouping.
//
// Sorting parses the same strings back, so the parse helpers are the exact
// inverses of the formatters.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders d as "$1,234,567". The fractional part is floored, not
// rounded.
func Money(d decimal.Decimal) string {
	return printer.Sprintf("$%d", d.Floor().IntPart())
}

// Percent renders d as "1.23%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// Price renders d with exactly four fractional digits, e.g. "84.1200".
func Price(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// ParseMoney reads a Money-formatted string back into a number.
func ParseMoney(s string) (float64, error) {
	s = strings.ReplaceAll(s, "$", "")
	return ParseNumber(s)
}

// ParsePercent reads a Percent-formatted string back into a number.
func ParsePercent(s string) (float64, error) {
	return ParseNumber(strings.TrimSuffix(s, "%"))
}

// ParseNumber reads a possibly thousands-grouped decimal string.
func ParseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
