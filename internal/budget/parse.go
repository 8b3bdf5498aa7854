package budget

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the scale of parsed numbers so "1e2000000000" cannot
// expand into a gigabyte-long digit string when formatted.
const maxExponent = 64

// parseDecimal reads the leading number of raw, ignoring surrounding
// whitespace, so "12.5", "12.5kg" and "1e3" all parse while "abc" does not.
func parseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	n := numberPrefix(s)
	if n == 0 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s[:n])
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// numberPrefix returns the length of the longest prefix of s of the form
// [+-]digits[.digits][e[+-]digits], or 0 when s does not start with a number.
func numberPrefix(s string) int {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
			digits++
		}
		if digits > 0 {
			end = frac
		}
	}
	if digits == 0 {
		return 0
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	return end
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseLeadingInt reads the optionally signed integer prefix of raw, so
// "12.5" and "12 months" both give 12.
func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
