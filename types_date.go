package fondos

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// dmyStray lists characters the bank sometimes leaks into date cells.
const dmyStray = "$, "

// ParseDMY parses a date in the bank's d/m/y format. The year may have 2 or 4
// digits; 2-digit years are expanded as 20xx. A loosely spaced "d / m / y"
// variant is accepted, and stray currency characters are stripped first.
func ParseDMY(str string) (Date, error) {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(dmyStray, r) {
			return -1
		}
		return r
	}, str)
	parts := strings.Split(clean, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q want format d/m/y", str)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in date %q want format d/m/y", str)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in date %q want format d/m/y", str)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in date %q want format d/m/y", str)
	}
	switch len(parts[2]) {
	case 2:
		year += 2000 // the portal never publishes pre-2000 dates
	case 4:
	default:
		return Date{}, fmt.Errorf("invalid year in date %q want 2 or 4 digits", str)
	}
	d := NewDate(year, time.Month(month), day)
	// NewDate normalizes out-of-range components (month 13 becomes January of
	// the next year); reject dates that do not round-trip.
	if d.y != year || d.m != time.Month(month) || d.d != day {
		return Date{}, fmt.Errorf("invalid date %q: no such calendar day", str)
	}
	return d, nil
}

// MustParseDMY is like ParseDMY but panics on error.
func MustParseDMY(str string) Date {
	d, err := ParseDMY(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalBinary encodes the date for the binary snapshot.
func (d Date) MarshalBinary() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalBinary decodes a date from the binary snapshot.
func (d *Date) UnmarshalBinary(data []byte) error {
	on, err := time.Parse(DateFormat, string(data))
	if err != nil {
		return fmt.Errorf("invalid date %q in snapshot: %w", string(data), err)
	}
	*d = NewDate(on.Date())
	return nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
var _ encoding.BinaryMarshaler = (*Date)(nil)
var _ encoding.BinaryUnmarshaler = (*Date)(nil)
