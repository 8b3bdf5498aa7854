package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount string
		code   string
		want   string
	}{
		{"0", "USD", "$0.00"},
		{"1750", "USD", "$1,750.00"},
		{"3250.5", "USD", "$3,250.50"},
		{"1234567.891", "USD", "$1,234,567.89"},
		{"-250", "USD", "-$250.00"},
		{"-0.001", "USD", "$0.00"},
		{"0.5", "JPY", "¥1"},
		{"1e30", "USD", "$1,000,000,000,000,000,000,000,000,000,000.00"},
		{"-92233720368547758.08", "USD", "-$92,233,720,368,547,758.08"},
		{"1234.5", "EUR", "€1,234.50"},
	}
	for _, tc := range cases {
		got := FormatCurrency(decimal.RequireFromString(tc.amount), tc.code)
		if got != tc.want {
			t.Errorf("FormatCurrency(%s, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(decimal.RequireFromString("35")); got != "35%" {
		t.Errorf("FormatRate(35) = %q, want 35%%", got)
	}
	if got := FormatRate(decimal.RequireFromString("12.50")); got != "12.5%" {
		t.Errorf("FormatRate(12.50) = %q, want 12.5%%", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(1); got != "1 month" {
		t.Errorf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(12); got != "12 months" {
		t.Errorf("FormatMonths(12) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
