package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money renders an amount rounded to cents with thousands separators,
// e.g. "$1,234.50" or "-$80.00".
func Money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// amount renders a table cell, leaving zero amounts blank.
func amount(d decimal.Decimal) string {
	if d.Round(2).IsZero() {
		return ""
	}
	return Money(d)
}
