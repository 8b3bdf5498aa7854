// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount in the given ISO currency with the
// currency's fraction digits, thousands grouping and symbol template.
// e.g., 1750 USD -> "$1,750.00", -250 USD -> "-$250.00"
func FormatCurrency(amount decimal.Decimal, code string) string {
	// money.New never returns a nil currency, unknown codes included
	f := money.New(0, code).Currency().Formatter()

	whole, frac, _ := strings.Cut(amount.Abs().StringFixed(int32(f.Fraction)), ".")
	if f.Thousand != "" {
		whole = groupDigits(whole, f.Thousand)
	}
	num := whole
	if frac != "" {
		num += f.Decimal + frac
	}

	s := strings.Replace(f.Template, "1", num, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if amount.Round(int32(f.Fraction)).IsNegative() {
		return "-" + s
	}
	return s
}

// groupDigits inserts sep between every three digits of an unsigned integer string.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatRate formats a percentage without trailing zeros.
// e.g., 35 -> "35%", 12.50 -> "12.5%"
func FormatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// FormatMonths formats a month count with the right plural.
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return strconv.Itoa(n) + " months"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + groupDigits(strconv.FormatUint(uint64(-n), 10), ",")
	}
	return groupDigits(strconv.FormatInt(n, 10), ",")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
