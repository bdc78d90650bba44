package fondos

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Money is an exact amount of the bank's currency, counted in cents.
// It is never represented as floating point in storage.
type Money int64

// centsFormatter renders cents in the portal's shape: "$1,234.56".
var centsFormatter = money.NewFormatter(2, ".", ",", "$", "$1")

// Cents returns the raw count of cents.
func (m Money) Cents() int64 { return int64(m) }

// String formats the amount the way the portal displays it.
func (m Money) String() string { return centsFormatter.Format(int64(m)) }

// SignedString returns the string representation of the amount with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m == 0 {
		return "-"
	}
	if m > 0 {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Add(n Money) Money { return m + n }
func (m Money) Sub(n Money) Money { return m - n }
func (m Money) Neg() Money        { return -m }
func (m Money) IsZero() bool      { return m == 0 }
func (m Money) IsPositive() bool  { return m > 0 }
func (m Money) IsNegative() bool  { return m < 0 }

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// ParseCents parses a currency cell from the portal. The value must start
// with '$', may group its integer digits with commas every 3 digits, and must
// end with a '.' followed by exactly 2 decimal digits. It returns the exact
// count of cents: "$1,234.56" parses to 123456.
func ParseCents(s string) (Money, error) {
	if !strings.HasPrefix(s, "$") {
		return 0, fmt.Errorf("currency %q does not start with '$'", s)
	}
	body := s[1:]
	if body == "" {
		return 0, fmt.Errorf("currency %q has no value after '$'", s)
	}
	intPart, decPart, found := strings.Cut(body, ".")
	if !found {
		return 0, fmt.Errorf("currency %q has no decimal point", s)
	}
	if len(decPart) != 2 {
		return 0, fmt.Errorf("currency %q wants exactly 2 decimal digits, got %d", s, len(decPart))
	}
	// Validate the grouped integer part. An empty integer part is legal: the
	// portal prints "$.00" for zero.
	groups := strings.Split(intPart, ",")
	for i, g := range groups {
		switch {
		case len(groups) == 1:
			// Ungrouped, any width.
		case i == 0:
			if g == "" {
				return 0, fmt.Errorf("currency %q starts with a grouping comma", s)
			}
			if len(g) > 3 {
				return 0, fmt.Errorf("currency %q has %d digits before the first grouping comma, want at most 3", s, len(g))
			}
		default:
			if len(g) != 3 {
				return 0, fmt.Errorf("currency %q has a digit group of width %d, want 3", s, len(g))
			}
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("currency %q contains non-digit %q", s, string(r))
			}
		}
	}
	var cents int64
	for _, g := range groups {
		for _, r := range g {
			cents = cents*10 + int64(r-'0')
		}
	}
	for _, r := range decPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("currency %q contains non-digit %q in decimals", s, string(r))
		}
		cents = cents*10 + int64(r-'0')
	}
	return Money(cents), nil
}
