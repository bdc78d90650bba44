package fondos

import (
	"strings"
	"testing"
)

func TestParseCents(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Money
	}{
		{name: "zero with empty integer part", input: "$.00", want: 0},
		{name: "grouped thousands", input: "$1,231.74", want: 123174},
		{name: "grouped hundreds of thousands", input: "$211,231.74", want: 21123174},
		{name: "grouped millions", input: "$1,211,231.74", want: 121123174},
		{name: "small amount", input: "$0.07", want: 7},
		{name: "ungrouped", input: "$1234.56", want: 123456},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCents(tc.input)
			if err != nil {
				t.Fatalf("ParseCents(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseCents(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseCents_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantMsg string // each defect gets named specifically
	}{
		{name: "missing dollar", input: "1,231.74", wantMsg: "does not start with '$'"},
		{name: "empty value", input: "$", wantMsg: "no value"},
		{name: "leading grouping comma", input: "$,211,231.74", wantMsg: "grouping comma"},
		{name: "wrong group width", input: "$1,2,1,231.74", wantMsg: "width"},
		{name: "too many leading digits", input: "$1234,231.74", wantMsg: "before the first grouping comma"},
		{name: "one decimal digit", input: "$1,211,231.7", wantMsg: "2 decimal digits"},
		{name: "three decimal digits", input: "$1,231.745", wantMsg: "2 decimal digits"},
		{name: "no decimal point", input: "$1,231", wantMsg: "no decimal point"},
		{name: "non-digit", input: "$1,23a.74", wantMsg: "non-digit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCents(tc.input)
			if err == nil {
				t.Fatalf("ParseCents(%q) expected an error", tc.input)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("ParseCents(%q) error %q does not name the defect %q", tc.input, err, tc.wantMsg)
			}
		})
	}
}

// TestMoneyRoundTrip checks that ParseCents is a left inverse of the
// canonical formatter.
func TestMoneyRoundTrip(t *testing.T) {
	for _, cents := range []Money{0, 7, 99, 100, 123456, 21123174, 121123174, 999999999999} {
		formatted := cents.String()
		got, err := ParseCents(formatted)
		if err != nil {
			t.Fatalf("ParseCents(%q) unexpected error: %v", formatted, err)
		}
		if got != cents {
			t.Errorf("round trip of %d through %q = %d", cents, formatted, got)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := Money(123456).String(); got != "$1,234.56" {
		t.Errorf("Money(123456).String() = %q, want %q", got, "$1,234.56")
	}
	if got := Money(0).String(); got != "$0.00" {
		t.Errorf("Money(0).String() = %q, want %q", got, "$0.00")
	}
	if got := Money(-5000).SignedString(); got != "-$50.00" {
		t.Errorf("Money(-5000).SignedString() = %q, want %q", got, "-$50.00")
	}
	if got := Money(5000).SignedString(); got != "+$50.00" {
		t.Errorf("Money(5000).SignedString() = %q, want %q", got, "+$50.00")
	}
	if got := Money(0).SignedString(); got != "-" {
		t.Errorf("Money(0).SignedString() = %q, want %q", got, "-")
	}
}
