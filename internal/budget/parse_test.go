package budget

import "testing"

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 7 ", 7, true},
		{"+3", 3, true},
		{"-2", -2, true},
		{"12.5", 12, true},
		{"4x", 4, true},
		{"", 0, false},
		{"x4", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseLeadingInt(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{" 12.34 ", "12.34", true},
		{"12abc", "12", true},
		{"1,000", "1", true},
		{"-3.5kg", "-3.5", true},
		{".5", "0.5", true},
		{"7.", "7", true},
		{"1e3", "1000", true},
		{"2e", "2", true},
		{"1e30", "1000000000000000000000000000000", true},
		{"", "0", false},
		{"  ", "0", false},
		{"abc", "0", false},
		{"NaN", "0", false},
		{".", "0", false},
		{"-", "0", false},
		{"1e2000000000", "0", false},
		{"1e-65", "0", false},
	}
	for _, tc := range cases {
		got, ok := parseDecimal(tc.in)
		if ok != tc.ok || got.String() != tc.want {
			t.Errorf("parseDecimal(%q) = %s, %v; want %s, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
