// Package currencyutils normalizes currency-formatted amounts into the
// fixed two-decimal balance text used in the output file.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ZeroBalance is the balance written for empty or unparsable amounts.
const ZeroBalance = "0.00"

var symbolReplacer = strings.NewReplacer("$", "", "£", "", "€", "", ",", "")

// CleanAmount strips the currency symbols $, £ and € together with
// thousands-separator commas, and trims surrounding whitespace.
func CleanAmount(raw string) string {
	return strings.TrimSpace(symbolReplacer.Replace(raw))
}

// NormalizeBalance converts a raw amount cell to a fixed two-decimal
// string. Empty cells, the literal "nan" and anything that fails to
// parse all yield ZeroBalance; this function never reports an error.
func NormalizeBalance(raw string) string {
	cleaned := CleanAmount(raw)
	if cleaned == "" || strings.EqualFold(cleaned, "nan") {
		return ZeroBalance
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return ZeroBalance
	}
	return amount.StringFixed(2)
}

// ParseBalance parses an already-normalized balance string.
func ParseBalance(balance string) (decimal.Decimal, error) {
	return decimal.NewFromString(balance)
}

// IsNegative reports whether an already-normalized balance string parses
// to a strictly negative amount. Unparsable balances count as
// non-negative.
func IsNegative(balance string) bool {
	amount, err := ParseBalance(balance)
	if err != nil {
		return false
	}
	return amount.LessThan(decimal.Zero)
}
