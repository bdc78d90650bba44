package fondos

import (
	"fmt"
	"sort"
	"strings"
)

// Balance is the portal's reported account value of a fund on a given date.
// At most one per (fund, date); the portal's own published value is
// authoritative, so later observations overwrite earlier ones.
type Balance struct {
	Date    Date
	Balance Money
}

// Action is a signed cash flow: positive for a contribution, negative for a
// withdrawal or an outgoing transfer. Actions are not unique per (fund, date):
// a fund may legitimately receive two equal contributions on one day, so a
// series holds a multiset of them.
type Action struct {
	Date   Date
	Change Money
}

// FundValue is the portal's published total fund value and unit value on a
// given date. At most one per (fund, date).
type FundValue struct {
	Date      Date
	FundValue Money
	UnitValue Money
}

// Returns aggregates the return-on-equity percentages the portal publishes
// for a fund, merged from the two sub-tables of the returns page. A period
// the bank did not publish stays NA.
type Returns struct {
	PrevYear      Percent // next-to-last calendar year
	LastYear      Percent
	YearToDate    Percent
	Day           Percent
	DayAnnualized Percent
	Month         Percent
	Trimester     Percent
	Semester      Percent
	Year          Percent
	TwoYears      Percent
	Total         Percent
}

// NewReturns returns a Returns with every period unpublished.
func NewReturns() Returns {
	return Returns{
		PrevYear:      NA(),
		LastYear:      NA(),
		YearToDate:    NA(),
		Day:           NA(),
		DayAnnualized: NA(),
		Month:         NA(),
		Trimester:     NA(),
		Semester:      NA(),
		Year:          NA(),
		TwoYears:      NA(),
		Total:         NA(),
	}
}

// merge overwrites every period that o publishes, leaving the rest untouched.
func (r *Returns) merge(o Returns) {
	dst := []*Percent{&r.PrevYear, &r.LastYear, &r.YearToDate, &r.Day, &r.DayAnnualized, &r.Month, &r.Trimester, &r.Semester, &r.Year, &r.TwoYears, &r.Total}
	src := []Percent{o.PrevYear, o.LastYear, o.YearToDate, o.Day, o.DayAnnualized, o.Month, o.Trimester, o.Semester, o.Year, o.TwoYears, o.Total}
	for i, s := range src {
		if !s.IsNA() {
			*dst[i] = s
		}
	}
}

// Series is the full time series of one fund: balances and fund values sorted
// by date, actions as a date-sorted multiset, and the merged published
// returns. Name keeps the portal's spelling as first seen; the identifying
// key is its normalized form.
type Series struct {
	Name       string
	Balances   []Balance
	Actions    []Action
	FundValues []FundValue
	Returns    Returns
}

// Normalize maps a fund name to its identifying key: two rows whose trimmed,
// lowercased text match refer to the same fund.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseName parses a fund-name cell: trimmed, and never empty.
func ParseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", fmt.Errorf("empty fund name")
	}
	return name, nil
}

func newSeries(name string) *Series {
	return &Series{Name: name, Returns: NewReturns()}
}

// Key returns the fund's identifying key.
func (s *Series) Key() string { return Normalize(s.Name) }

// LastBalance returns the most recent balance record, if any.
func (s *Series) LastBalance() (Balance, bool) {
	if len(s.Balances) == 0 {
		return Balance{}, false
	}
	return s.Balances[len(s.Balances)-1], true
}

// CountActions returns the stored multiplicity of the (date, change) signature.
func (s *Series) CountActions(date Date, change Money) int {
	n := 0
	for _, a := range s.Actions {
		if a.Date == date && a.Change == change {
			n++
		}
	}
	return n
}

// firstBalanceOnOrAfter returns the index of the first balance dated on or
// after the given date, or false when the fund has none.
func (s *Series) firstBalanceOnOrAfter(d Date) (int, bool) {
	for i, b := range s.Balances {
		if !b.Date.Before(d) {
			return i, true
		}
	}
	return 0, false
}

// firstFundValueOnOrAfter returns the index of the first fund value dated on
// or after the given date, or false when the fund has none.
func (s *Series) firstFundValueOnOrAfter(d Date) (int, bool) {
	for i, fv := range s.FundValues {
		if !fv.Date.Before(d) {
			return i, true
		}
	}
	return 0, false
}

// sortAll restores the by-date ordering after an ingestion pass. Sorts are
// stable so that same-day records keep their observed order.
func (s *Series) sortAll() {
	sort.SliceStable(s.Balances, func(i, j int) bool { return s.Balances[i].Date.Before(s.Balances[j].Date) })
	sort.SliceStable(s.Actions, func(i, j int) bool { return s.Actions[i].Date.Before(s.Actions[j].Date) })
	sort.SliceStable(s.FundValues, func(i, j int) bool { return s.FundValues[i].Date.Before(s.FundValues[j].Date) })
}
