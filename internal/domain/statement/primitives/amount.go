// Package primitives holds the locale-aware numeric and date parsing
// helpers shared by every dialect canonicalizer. All parsers here are
// option-style: they report failure with a false second return and never
// panic or error on malformed input.
package primitives

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/apexledger/statement-engine/pkg/money"
)

// currencyNoise lists tokens stripped from amount text before the numeric
// parse: naira symbols, ISO codes, separators and exotic whitespace.
var currencyNoise = strings.NewReplacer(
	"₦", "",
	"NGN", "",
	"N ", "",
	",", "",
	" ", "", // non-breaking space
	" ", "",
)

// ParseAmount converts statement amount text to integer kobo. It strips
// currency symbols and thousands separators, honors leading minus signs
// and accountant parentheses, and rounds to the nearest kobo. Text that
// fails to parse, or parses to exactly zero, reports no amount at all:
// a zero-amount row is not a transaction.
func ParseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}

	s = strings.TrimSpace(currencyNoise.Replace(s))
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsZero() {
		return 0, false
	}

	kobo := money.KoboFromDecimal(d)
	if kobo == 0 {
		return 0, false
	}
	if negative {
		kobo = -kobo
	}
	return kobo, true
}
