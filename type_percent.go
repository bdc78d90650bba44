package fondos

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Percent is a published return figure. The bank reports periods it has no
// data for as "NA"; that state is carried as NaN and must be treated as
// unknown, never as zero.
type Percent float64

// NA returns the "not published" percent value.
func NA() Percent { return Percent(math.NaN()) }

// IsNA reports whether the value is the bank's "NA".
func (p Percent) IsNA() bool { return math.IsNaN(float64(p)) }

func (p Percent) String() string {
	if p.IsNA() {
		return "NA"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.IsNA() {
		return "NA"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Equal compares two percents with some precision. NA equals NA.
func (p Percent) Equal(q Percent) bool {
	if p.IsNA() || q.IsNA() {
		return p.IsNA() && q.IsNA()
	}
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// ParsePercent parses a percentage cell from the portal: an optional leading
// '-', digits with optional thousands commas and an optional decimal point,
// terminated by a space or '%'. Anything after the terminator is ignored, so
// the portal's suffix variants "%", "%EA" and "% EA" all parse alike. The
// literal token "NA" parses to the not-published value.
func ParsePercent(s string) (Percent, error) {
	if s == "NA" {
		return NA(), nil
	}
	end := strings.IndexAny(s, " %")
	if end < 0 {
		return 0, fmt.Errorf("percent %q has no '%%' or space terminator", s)
	}
	num := s[:end]
	if num == "" {
		return 0, fmt.Errorf("percent %q has no digits before the terminator", s)
	}
	digits := 0
	dots := 0
	for i, r := range num {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-':
			if i != 0 {
				return 0, fmt.Errorf("percent %q has a '-' not in leading position", s)
			}
		case r == '.':
			dots++
			if dots > 1 {
				return 0, fmt.Errorf("percent %q has more than one decimal point", s)
			}
		case r == ',':
			// thousands separator, validated no further than the charset
		default:
			return 0, fmt.Errorf("percent %q contains invalid character %q", s, string(r))
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("percent %q has no digits", s)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("percent %q: %w", s, err)
	}
	return Percent(v), nil
}
